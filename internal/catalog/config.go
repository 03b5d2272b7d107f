package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// rawCatalog mirrors the JSON document shape. Session maps are keyed by role
// name and decoded through mapstructure so the file can stay loosely typed.
type rawCatalog struct {
	Week     []int       `mapstructure:"week"`
	Teachers []int       `mapstructure:"teachers"`
	Groups   int         `mapstructure:"groups"`
	Courses  []rawCourse `mapstructure:"courses"`
}

type rawCourse struct {
	Name     string                `mapstructure:"name"`
	Sessions map[string]rawSession `mapstructure:"sessions"`
}

type rawSession struct {
	Teachers []int `mapstructure:"teachers"`
	Groups   []int `mapstructure:"groups"`
}

// FromJSON loads and validates a catalog from a JSON file.
func FromJSON(filePath string) (Catalog, error) {
	var catalog Catalog

	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return catalog, err
	}

	var rawDocument map[string]any
	if err = json.Unmarshal(fileContent, &rawDocument); err != nil {
		return catalog, fmt.Errorf("parse catalog %s: %w", filePath, err)
	}

	var raw rawCatalog
	if err = mapstructure.Decode(rawDocument, &raw); err != nil {
		return catalog, fmt.Errorf("decode catalog %s: %w", filePath, err)
	}

	if catalog, err = fromRaw(raw); err != nil {
		return catalog, fmt.Errorf("catalog %s: %w", filePath, err)
	}
	return catalog, nil
}

func fromRaw(raw rawCatalog) (Catalog, error) {
	catalog := Catalog{
		Week:     raw.Week,
		Teachers: lo.Map(raw.Teachers, func(id int, _ int) TeacherID { return TeacherID(id) }),
		Groups:   raw.Groups,
		Courses:  make([]Course, 0, len(raw.Courses)),
	}

	for _, rawCourse := range raw.Courses {
		course := Course{
			Name:     rawCourse.Name,
			Sessions: make(map[Role]SessionSpec, len(rawCourse.Sessions)),
		}
		for roleName, rawSession := range rawCourse.Sessions {
			role, err := ParseRole(roleName)
			if err != nil {
				return catalog, fmt.Errorf("course %q: %w", rawCourse.Name, err)
			}
			course.Sessions[role] = SessionSpec{
				Teachers: lo.Map(rawSession.Teachers, func(id int, _ int) TeacherID { return TeacherID(id) }),
				Groups:   lo.Map(rawSession.Groups, func(id int, _ int) GroupID { return GroupID(id) }),
			}
		}
		catalog.Courses = append(catalog.Courses, course)
	}

	return catalog, catalog.Validate()
}
