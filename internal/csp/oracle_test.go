package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// oracleProblem backs the oracle tests: two days of five periods, five
// teachers, four groups. "main" has a lecture and a td bound to teacher 1;
// the other courses carry one td each so several sessions can pile onto one
// group or one teacher.
func oracleProblem(t *testing.T) *problem {
	t.Helper()
	td := func(teacher catalog.TeacherID) map[catalog.Role]catalog.SessionSpec {
		return map[catalog.Role]catalog.SessionSpec{
			catalog.RoleTD: {Teachers: []catalog.TeacherID{teacher}},
		}
	}
	p, err := newProblem(catalog.Catalog{
		Week:     []int{5, 5},
		Teachers: []catalog.TeacherID{1, 2, 3, 4, 5},
		Groups:   4,
		Courses: []catalog.Course{
			{
				Name: "main",
				Sessions: map[catalog.Role]catalog.SessionSpec{
					catalog.RoleLecture: {Teachers: []catalog.TeacherID{1}},
					catalog.RoleTD:      {Teachers: []catalog.TeacherID{1}},
				},
			},
			{Name: "aux", Sessions: td(2)},
			{Name: "lab", Sessions: td(3)},
			{Name: "sem", Sessions: td(4)},
		},
	})
	assert.Nil(t, err)
	return p
}

func TestOracleTeacherEligibility(t *testing.T) {
	//**Arrange
	p := oracleProblem(t)
	o := oracle{p: p}
	td := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}
	empty := newAssignment(0)

	//**Act and assert
	assert.True(t, o.admissible(td, candidate(1, 1, 1, 1), empty))
	assert.False(t, o.admissible(td, candidate(1, 1, 2, 1), empty), "teacher 2 does not give main's td")
}

func TestOracleGroupCorrectness(t *testing.T) {
	//**Arrange
	p := oracleProblem(t)
	o := oracle{p: p}
	td := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}
	lecture := Variable{Course: "main", Role: catalog.RoleLecture, Group: 1}
	empty := newAssignment(0)

	//**Act and assert: a td candidate must carry its own group; lecture
	// entries are expanded per group before the check, so any group passes
	assert.False(t, o.admissible(td, candidate(1, 1, 1, 2), empty))
	assert.True(t, o.admissible(lecture, candidate(1, 1, 1, 3), empty))
}

func TestOracleSlotCollisions(t *testing.T) {
	//**Arrange: teacher 2 holds (day 1, period 1) for group 2
	p := oracleProblem(t)
	o := oracle{p: p}
	a := newAssignment(2)
	a.commit(Variable{Course: "aux", Role: catalog.RoleTD, Group: 2}, []Candidate{candidate(1, 1, 2, 2)})

	t.Run("Same teacher same slot", func(t *testing.T) {
		td := Variable{Course: "aux", Role: catalog.RoleTD, Group: 3}
		assert.False(t, o.admissible(td, candidate(1, 1, 2, 3), a))
	})

	t.Run("Same group same slot", func(t *testing.T) {
		td := Variable{Course: "main", Role: catalog.RoleTD, Group: 2}
		assert.False(t, o.admissible(td, candidate(1, 1, 1, 2), a))
	})

	t.Run("Free slot", func(t *testing.T) {
		td := Variable{Course: "main", Role: catalog.RoleTD, Group: 2}
		assert.True(t, o.admissible(td, candidate(1, 2, 1, 2), a))
	})
}

func TestOracleTeacherRunCap(t *testing.T) {
	//**Arrange: teacher 1 gives main's td to groups 2..4 on day 1, periods
	// 1..3, a saturated run on the teacher side only
	p := oracleProblem(t)
	o := oracle{p: p}
	a := newAssignment(4)
	for period := 1; period <= 3; period++ {
		group := catalog.GroupID(period + 1)
		a.commit(
			Variable{Course: "main", Role: catalog.RoleTD, Group: group},
			[]Candidate{candidate(1, period, 1, group)},
		)
	}
	td := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}

	t.Run("Fourth consecutive period is rejected", func(t *testing.T) {
		assert.False(t, o.admissible(td, candidate(1, 4, 1, 1), a))
	})

	t.Run("A gap resets the run", func(t *testing.T) {
		assert.True(t, o.admissible(td, candidate(1, 5, 1, 1), a))
	})

	t.Run("Another day is unaffected", func(t *testing.T) {
		assert.True(t, o.admissible(td, candidate(2, 1, 1, 1), a))
	})

	t.Run("Lectures are exempt", func(t *testing.T) {
		lecture := Variable{Course: "main", Role: catalog.RoleLecture, Group: 1}
		assert.True(t, o.admissible(lecture, candidate(1, 4, 1, 1), a))
	})
}

func TestOracleGroupRunCap(t *testing.T) {
	//**Arrange: group 1 sits three different courses on day 1, periods
	// 1..3, each under its own teacher
	p := oracleProblem(t)
	o := oracle{p: p}
	a := newAssignment(4)
	for period, course := range map[int]string{1: "aux", 2: "lab", 3: "sem"} {
		a.commit(
			Variable{Course: course, Role: catalog.RoleTD, Group: 1},
			[]Candidate{candidate(1, period, catalog.TeacherID(period+1), 1)},
		)
	}

	//**Act and assert: the group cap holds for lectures too
	td := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}
	lecture := Variable{Course: "main", Role: catalog.RoleLecture, Group: 1}
	assert.False(t, o.admissible(td, candidate(1, 4, 1, 1), a))
	assert.False(t, o.admissible(lecture, candidate(1, 4, 1, 1), a))
	assert.True(t, o.admissible(td, candidate(2, 1, 1, 1), a))
}

func TestOracleIsPure(t *testing.T) {
	//**Arrange
	p := oracleProblem(t)
	o := oracle{p: p}
	a := newAssignment(2)
	committed := Variable{Course: "aux", Role: catalog.RoleTD, Group: 2}
	a.commit(committed, []Candidate{candidate(1, 1, 2, 2)})
	td := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}

	//**Act: verdicts of both polarities
	o.admissible(td, candidate(1, 1, 2, 1), a)
	o.admissible(td, candidate(1, 2, 1, 1), a)

	//**Assert: the assignment is untouched
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []Candidate{candidate(1, 1, 2, 2)}, a.Entries(committed))
	assert.False(t, a.Assigned(td))
}
