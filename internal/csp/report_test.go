package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

func TestReportTeacherWorkdays(t *testing.T) {
	//**Arrange: teacher 1 works three days, teacher 2 one, the rest none
	p := oracleProblem(t)
	solver := &Solver{problem: p}

	a := newAssignment(4)
	a.commit(Variable{Course: "main", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(1, 1, 1, 1)})
	a.commit(Variable{Course: "main", Role: catalog.RoleTD, Group: 2}, []Candidate{candidate(2, 1, 1, 2)})
	a.commit(Variable{Course: "main", Role: catalog.RoleLecture, Group: 1}, []Candidate{
		candidate(1, 3, 1, 1), candidate(1, 3, 1, 2), candidate(1, 3, 1, 3), candidate(1, 3, 1, 4),
	})
	a.commit(Variable{Course: "aux", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(2, 3, 2, 1)})

	//**Act
	report := solver.Report(a)

	//**Assert: roster order, idle teachers included
	assert.Equal(t, 5, len(report.Teachers))

	teacher1 := report.Teachers[0]
	assert.Equal(t, catalog.TeacherID(1), teacher1.Teacher)
	assert.Equal(t, []int{1, 2}, teacher1.Days)
	assert.True(t, teacher1.WithinCap)

	teacher2 := report.Teachers[1]
	assert.Equal(t, []int{2}, teacher2.Days)
	assert.True(t, teacher2.WithinCap)

	idle := report.Teachers[4]
	assert.Empty(t, idle.Days)
	assert.True(t, idle.WithinCap)
}

func TestReportFlagsWorkdayOverflow(t *testing.T) {
	//**Arrange: a three-day week where teacher 1 appears on every day
	solver, err := New(catalog.Catalog{
		Week:     []int{2, 2, 2},
		Teachers: []catalog.TeacherID{1},
		Groups:   3,
		Courses: []catalog.Course{
			{
				Name: "main",
				Sessions: map[catalog.Role]catalog.SessionSpec{
					catalog.RoleTD: {Teachers: []catalog.TeacherID{1}},
				},
			},
		},
	}, Options{})
	assert.Nil(t, err)

	a := newAssignment(3)
	a.commit(Variable{Course: "main", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(1, 1, 1, 1)})
	a.commit(Variable{Course: "main", Role: catalog.RoleTD, Group: 2}, []Candidate{candidate(2, 1, 1, 2)})
	a.commit(Variable{Course: "main", Role: catalog.RoleTD, Group: 3}, []Candidate{candidate(3, 1, 1, 3)})

	//**Act
	report := solver.Report(a)

	//**Assert
	assert.Equal(t, []int{1, 2, 3}, report.Teachers[0].Days)
	assert.False(t, report.Teachers[0].WithinCap)
}

func TestReportRunsAndSessions(t *testing.T) {
	//**Arrange: group 1 sits periods 1..3 on day 1 and one session on day 2
	p := oracleProblem(t)
	solver := &Solver{problem: p}

	a := newAssignment(4)
	a.commit(Variable{Course: "aux", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(1, 1, 2, 1)})
	a.commit(Variable{Course: "lab", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(1, 2, 3, 1)})
	a.commit(Variable{Course: "sem", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(1, 3, 4, 1)})
	a.commit(Variable{Course: "main", Role: catalog.RoleTD, Group: 1}, []Candidate{candidate(2, 1, 1, 1)})

	//**Act
	report := solver.Report(a)

	//**Assert
	group1 := report.Groups[0]
	assert.Equal(t, catalog.GroupID(1), group1.Group)
	assert.Equal(t, 4, group1.Sessions)
	assert.Equal(t, 3, group1.LongestRun)

	group2 := report.Groups[1]
	assert.Equal(t, 0, group2.Sessions)
	assert.Equal(t, 0, group2.LongestRun)
}
