package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

func candidate(day, period int, teacher catalog.TeacherID, group catalog.GroupID) Candidate {
	return Candidate{
		Slot:    catalog.Slot{Day: day, Period: period},
		Teacher: teacher,
		Group:   group,
	}
}

func TestReviseDropsUnsupportedValues(t *testing.T) {
	//**Arrange: V0 holds one value colliding with V1's only value on the
	// teacher, and one value on a free slot
	domains := [][]Candidate{
		{candidate(1, 1, 1, 1), candidate(1, 2, 1, 1)},
		{candidate(1, 1, 1, 2)},
	}

	//**Act
	dropped := revise(domains, arc{from: 0, to: 1, kind: teacherSlotConflict})

	//**Assert
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []Candidate{candidate(1, 2, 1, 1)}, domains[0])
}

func TestReviseKeepsSupportedValues(t *testing.T) {
	//**Arrange: distinct slots support everything
	domains := [][]Candidate{
		{candidate(1, 1, 1, 1)},
		{candidate(1, 2, 1, 2), candidate(2, 1, 1, 2)},
	}

	//**Act
	dropped := revise(domains, arc{from: 0, to: 1, kind: teacherSlotConflict})

	//**Assert
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 1, len(domains[0]))
}

func TestRunAC3DetectsUnsatisfiable(t *testing.T) {
	//**Arrange: two variables fighting over the same single (slot, teacher)
	domains := [][]Candidate{
		{candidate(1, 1, 1, 1)},
		{candidate(1, 1, 1, 2)},
	}

	//**Act
	pruned, consistent := runAC3(domains)

	//**Assert
	assert.False(t, consistent)
	assert.Equal(t, 1, pruned)
}

func TestRunAC3PropagatesThroughNeighbours(t *testing.T) {
	//**Arrange: no single arc empties a domain here, only the chain does.
	// V1 prunes V0's second value on the group constraint, after which V0
	// and V2 cannot both keep their last values on the teacher constraint
	domains := [][]Candidate{
		{candidate(1, 1, 1, 1), candidate(1, 2, 1, 1)},
		{candidate(1, 2, 2, 1)},
		{candidate(1, 1, 1, 2)},
	}

	//**Act
	_, consistent := runAC3(domains)

	//**Assert: the prunes cascade until a domain empties
	assert.False(t, consistent)
}

func TestRunAC3IsIdempotent(t *testing.T) {
	//**Arrange
	p, err := newProblem(twoCoursesCatalog())
	assert.Nil(t, err)
	domains := p.cloneDomains()

	firstPruned, consistent := runAC3(domains)
	assert.True(t, consistent)

	//**Act
	secondPruned, consistent := runAC3(domains)

	//**Assert: a second pass over consistent domains prunes nothing
	assert.True(t, consistent)
	assert.Equal(t, 0, secondPruned)
	assert.GreaterOrEqual(t, firstPruned, 0)
}

func TestRunAC3LeavesSatisfiableDomainsUsable(t *testing.T) {
	//**Arrange: roomy domains where every value keeps support
	p, err := newProblem(twoCoursesCatalog())
	assert.Nil(t, err)
	domains := p.cloneDomains()

	//**Act
	_, consistent := runAC3(domains)

	//**Assert
	assert.True(t, consistent)
	for i := range domains {
		assert.NotEmpty(t, domains[i])
	}
}
