// Package schedule converts solved assignments to and from their wire and
// human-readable forms. The wire form groups entries by student group, then
// by course, which is how clients consume a timetable: one group asks for
// its own week.
package schedule

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kbelhadj/timetable-csp/internal/csp"
)

// Entry is one scheduled session as a client sees it.
type Entry struct {
	Role    string `json:"role"`
	Day     int    `json:"day"`
	Period  int    `json:"period"`
	Teacher int    `json:"teacher"`
}

// Grouped maps group id (as a string, for JSON) to course name to the
// course's entries for that group, sorted by day then period.
type Grouped map[string]map[string][]Entry

// Serialize flattens an assignment into its grouped wire form. A lecture
// contributes one entry to every group; td and tp sessions contribute one
// entry to their own group.
func Serialize(a *csp.Assignment) Grouped {
	grouped := make(Grouped)

	for _, variable := range a.Variables() {
		for _, entry := range a.Entries(variable) {
			groupKey := strconv.Itoa(int(entry.Group))
			if grouped[groupKey] == nil {
				grouped[groupKey] = make(map[string][]Entry)
			}
			grouped[groupKey][variable.Course] = append(grouped[groupKey][variable.Course], Entry{
				Role:    variable.Role.String(),
				Day:     entry.Slot.Day,
				Period:  entry.Slot.Period,
				Teacher: int(entry.Teacher),
			})
		}
	}

	//** Order every entry list by day, then period, then role
	for _, courses := range grouped {
		for course := range courses {
			slices.SortFunc(courses[course], func(a, b Entry) int {
				if a.Day != b.Day {
					return a.Day - b.Day
				}
				if a.Period != b.Period {
					return a.Period - b.Period
				}
				return strings.Compare(a.Role, b.Role)
			})
		}
	}

	return grouped
}
