package schedule

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
	"github.com/kbelhadj/timetable-csp/internal/csp"
)

// Parse rebuilds an assignment from its grouped wire form so a stored
// timetable can be verified against the catalog it was solved for. Lecture
// entries scattered across the groups fold back into the single variable
// that produced them.
func Parse(cat catalog.Catalog, grouped Grouped) (*csp.Assignment, error) {
	entries := make(map[csp.Variable][]csp.Candidate)
	groups := cat.GroupIDs()

	for groupKey, courses := range grouped {
		group, err := strconv.Atoi(groupKey)
		if err != nil {
			return nil, fmt.Errorf("schedule group %q: %w", groupKey, err)
		}

		for course, courseEntries := range courses {
			for _, entry := range courseEntries {
				role, err := catalog.ParseRole(entry.Role)
				if err != nil {
					return nil, fmt.Errorf("course %q: %w", course, err)
				}

				variable := csp.Variable{Course: course, Role: role, Group: catalog.GroupID(group)}
				if role == catalog.RoleLecture {
					variable.Group = groups[0] // Lectures live on a single variable
				}

				entries[variable] = append(entries[variable], csp.Candidate{
					Slot:    catalog.Slot{Day: entry.Day, Period: entry.Period},
					Teacher: catalog.TeacherID(entry.Teacher),
					Group:   catalog.GroupID(group),
				})
			}
		}
	}

	//** Map iteration scattered lecture entries; settle them by group
	for variable := range entries {
		slices.SortFunc(entries[variable], func(a, b csp.Candidate) int {
			return int(a.Group) - int(b.Group)
		})
	}

	return csp.AssignmentOf(entries), nil
}
