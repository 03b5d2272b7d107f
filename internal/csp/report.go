package csp

import (
	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// workdayTarget is the soft cap on the number of distinct days a teacher
// works. Exceeding it never fails a solve; the report flags it.
const workdayTarget = 2

// WorkloadReport summarizes the soft side of a timetable: how the week is
// spread over teachers and groups. Hard constraints are Verify's business;
// everything here is informational.
type WorkloadReport struct {
	Teachers []TeacherWorkload `json:"teachers"`
	Groups   []GroupWorkload   `json:"groups"`
}

// TeacherWorkload lists the days a teacher works, whether that stays within
// the workday target, and the longest consecutive run over the week.
type TeacherWorkload struct {
	Teacher    catalog.TeacherID `json:"teacher"`
	Days       []int             `json:"days"`
	WithinCap  bool              `json:"within_cap"`
	LongestRun int               `json:"longest_run"`
}

// GroupWorkload counts a group's sessions and its longest consecutive run
// over the week.
type GroupWorkload struct {
	Group      catalog.GroupID `json:"group"`
	Sessions   int             `json:"sessions"`
	LongestRun int             `json:"longest_run"`
}

// Report builds the workload report of an assignment. Every roster teacher
// and every group appears, idle ones included, in catalog order.
func (s *Solver) Report(a *Assignment) WorkloadReport {
	report := WorkloadReport{
		Teachers: make([]TeacherWorkload, 0, len(s.problem.cat.Teachers)),
		Groups:   make([]GroupWorkload, 0, len(s.problem.groups)),
	}

	for _, teacher := range s.problem.cat.Teachers {
		days := workdays(a, teacher)
		report.Teachers = append(report.Teachers, TeacherWorkload{
			Teacher:    teacher,
			Days:       days,
			WithinCap:  len(days) <= workdayTarget,
			LongestRun: longestDailyRun(a, func(entry Candidate) bool { return entry.Teacher == teacher }),
		})
	}

	for _, group := range s.problem.groups {
		report.Groups = append(report.Groups, GroupWorkload{
			Group: group,
			Sessions: lo.SumBy(a.Variables(), func(v Variable) int {
				return lo.CountBy(a.Entries(v), func(entry Candidate) bool { return entry.Group == group })
			}),
			LongestRun: longestDailyRun(a, func(entry Candidate) bool { return entry.Group == group }),
		})
	}

	return report
}

// longestDailyRun returns the longest consecutive run, over any day of the
// week, among the entries selected by the predicate.
func longestDailyRun(a *Assignment, match func(Candidate) bool) int {
	byDay := make(map[int]map[int]struct{})
	for _, variable := range a.order {
		for _, entry := range a.entries[variable] {
			if !match(entry) {
				continue
			}
			if byDay[entry.Slot.Day] == nil {
				byDay[entry.Slot.Day] = make(map[int]struct{})
			}
			byDay[entry.Slot.Day][entry.Slot.Period] = struct{}{}
		}
	}

	longest := 0
	for _, periods := range byDay {
		longest = max(longest, longestRun(periods))
	}
	return longest
}
