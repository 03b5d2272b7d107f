package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

func TestAssignmentCommitAndRevert(t *testing.T) {
	//**Arrange
	a := newAssignment(2)
	lecture := Variable{Course: "main", Role: catalog.RoleLecture, Group: 1}
	td := Variable{Course: "main", Role: catalog.RoleTD, Group: 2}
	lectureEntries := []Candidate{candidate(1, 1, 1, 1), candidate(1, 1, 1, 2)}

	//**Act
	a.commit(lecture, lectureEntries)
	a.commit(td, []Candidate{candidate(1, 2, 1, 2)})
	a.revert()

	//**Assert: only the last commit is undone
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []Variable{lecture}, a.Variables())
	assert.Equal(t, lectureEntries, a.Entries(lecture))
	assert.False(t, a.Assigned(td))
	assert.Nil(t, a.Entries(td))
}

func TestAssignmentRevertRestoresExactState(t *testing.T) {
	//**Arrange
	a := newAssignment(3)
	first := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}
	second := Variable{Course: "aux", Role: catalog.RoleTD, Group: 1}
	a.commit(first, []Candidate{candidate(1, 1, 1, 1)})

	//**Act: a failed branch commits and fully unwinds
	a.commit(second, []Candidate{candidate(1, 2, 2, 1)})
	a.revert()
	a.commit(second, []Candidate{candidate(2, 1, 2, 1)})
	a.revert()

	//**Assert
	assert.Equal(t, []Variable{first}, a.Variables())
	assert.Equal(t, []Candidate{candidate(1, 1, 1, 1)}, a.Entries(first))
}

func TestAssignmentAccessorsReturnCopies(t *testing.T) {
	//**Arrange
	a := newAssignment(1)
	v := Variable{Course: "main", Role: catalog.RoleTD, Group: 1}
	a.commit(v, []Candidate{candidate(1, 1, 1, 1)})

	//**Act: mutate what the accessors hand out
	entries := a.Entries(v)
	entries[0] = candidate(2, 2, 9, 9)
	variables := a.Variables()
	variables[0] = Variable{Course: "other"}

	//**Assert: internals are unchanged
	assert.Equal(t, []Candidate{candidate(1, 1, 1, 1)}, a.Entries(v))
	assert.Equal(t, []Variable{v}, a.Variables())
}
