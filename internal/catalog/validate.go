package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the catalog for structural problems: an empty or oversized
// week, an empty roster, duplicate course names, sessions referencing
// teachers or groups that do not exist. Solvers reject an invalid catalog at
// construction, so every error here is reported before any search starts.
func (c Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("catalog shape: %w", err)
	}

	duplicates := lo.FindDuplicatesBy(c.Courses, func(course Course) string { return course.Name })
	if len(duplicates) > 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateCourse, duplicates[0].Name)
	}

	for _, course := range c.Courses {
		if len(course.Sessions) == 0 {
			return fmt.Errorf("%w: %q", ErrNoSessions, course.Name)
		}
		for _, role := range AllRoles {
			spec, ok := course.Sessions[role]
			if !ok {
				continue
			}
			if err := c.validateSession(course, role, spec); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c Catalog) validateSession(course Course, role Role, spec SessionSpec) error {
	if len(spec.Teachers) == 0 {
		return fmt.Errorf("%w: %q %s", ErrNoTeachers, course.Name, role)
	}
	if role != RoleTP && len(spec.Teachers) > 1 {
		return fmt.Errorf("%w: %q %s has %d", ErrAmbiguousTeacher, course.Name, role, len(spec.Teachers))
	}
	for _, teacher := range spec.Teachers {
		if !c.HasTeacher(teacher) {
			return fmt.Errorf("%w: %q %s teacher %d", ErrUnknownTeacher, course.Name, role, teacher)
		}
	}
	for _, group := range spec.Groups {
		if group < 1 || int(group) > c.Groups {
			return fmt.Errorf("%w: %q %s group %d", ErrUnknownGroup, course.Name, role, group)
		}
	}
	return nil
}
