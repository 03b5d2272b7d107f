package schedule

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
	"github.com/kbelhadj/timetable-csp/internal/csp"
)

var separator = strings.Repeat("-", 80)

// Print renders the grouped timetable as one week per group. Every period
// of the week is listed; free periods read Empty.
func Print(w io.Writer, grouped Grouped, cat catalog.Catalog) {
	for _, group := range cat.GroupIDs() {
		fmt.Fprintf(w, "\n===== TIMETABLE FOR GROUP %d =====\n", group)
		fmt.Fprintln(w, separator)

		courses := grouped[strconv.Itoa(int(group))]
		for day := 1; day <= cat.Days(); day++ {
			fmt.Fprintf(w, "Day %d:\n", day)
			for period := 1; period <= cat.Periods(day); period++ {
				fmt.Fprintf(w, "  Period %d: %s\n", period, periodLine(courses, day, period))
			}
			fmt.Fprintln(w, separator)
		}
	}
}

func periodLine(courses map[string][]Entry, day, period int) string {
	var sessions []string
	for course, entries := range courses {
		for _, entry := range entries {
			if entry.Day == day && entry.Period == period {
				sessions = append(sessions, fmt.Sprintf("%s (%s) - teacher %d", course, entry.Role, entry.Teacher))
			}
		}
	}
	if len(sessions) == 0 {
		return "Empty"
	}
	slices.Sort(sessions) // Map iteration order leaks in otherwise
	return strings.Join(sessions, ", ")
}

// PrintReport renders the workload report: the soft teacher-workday verdict
// followed by the per-group load summary.
func PrintReport(w io.Writer, report csp.WorkloadReport) {
	fmt.Fprintln(w, "\nTeacher Workday Evaluation (Soft Constraint):")
	for _, teacher := range report.Teachers {
		verdict := "Satisfied"
		if !teacher.WithinCap {
			verdict = "Not Satisfied"
		}
		fmt.Fprintf(w, "  teacher %d: %d workdays (%s), longest run %d\n",
			teacher.Teacher, len(teacher.Days), verdict, teacher.LongestRun)
	}

	overall := "All Satisfied"
	if lo.SomeBy(report.Teachers, func(t csp.TeacherWorkload) bool { return !t.WithinCap }) {
		overall = "Some Not Satisfied"
	}
	fmt.Fprintf(w, "Soft Constraint Overall: %s\n", overall)

	fmt.Fprintln(w, "\nGroup Load:")
	for _, group := range report.Groups {
		fmt.Fprintf(w, "  group %d: %d sessions, longest run %d\n",
			group.Group, group.Sessions, group.LongestRun)
	}
}
