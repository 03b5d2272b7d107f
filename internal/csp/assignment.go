package csp

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Assignment is the timetable under construction: the entries committed for
// each variable plus the commit order. The order doubles as the undo log,
// so backtracking removes exactly what the abandoned frame added and
// nothing else.
type Assignment struct {
	entries map[Variable][]Candidate
	order   []Variable
}

func newAssignment(capacity int) *Assignment {
	return &Assignment{
		entries: make(map[Variable][]Candidate, capacity),
		order:   make([]Variable, 0, capacity),
	}
}

// AssignmentOf rebuilds an assignment from committed entries, e.g. a
// timetable reloaded from disk for verification. Variables are ordered by
// course, role and group, so the same entries always rebuild identically.
func AssignmentOf(entries map[Variable][]Candidate) *Assignment {
	variables := lo.Keys(entries)
	slices.SortFunc(variables, func(a, b Variable) int {
		if c := strings.Compare(a.Course, b.Course); c != 0 {
			return c
		}
		if a.Role != b.Role {
			return int(a.Role) - int(b.Role)
		}
		return int(a.Group) - int(b.Group)
	})

	assignment := newAssignment(len(variables))
	for _, variable := range variables {
		assignment.commit(variable, slices.Clone(entries[variable]))
	}
	return assignment
}

// Len returns the number of assigned variables.
func (a *Assignment) Len() int {
	return len(a.order)
}

// Assigned reports whether the variable has committed entries.
func (a *Assignment) Assigned(v Variable) bool {
	_, ok := a.entries[v]
	return ok
}

// Entries returns the committed entries of a variable: one candidate for td
// and tp sessions, one per group for lectures. Nil when unassigned.
func (a *Assignment) Entries(v Variable) []Candidate {
	return slices.Clone(a.entries[v])
}

// Variables returns the assigned variables in commit order.
func (a *Assignment) Variables() []Variable {
	return slices.Clone(a.order)
}

func (a *Assignment) commit(v Variable, entries []Candidate) {
	a.entries[v] = entries
	a.order = append(a.order, v)
}

// revert undoes the most recent commit.
func (a *Assignment) revert() {
	last := a.order[len(a.order)-1]
	a.order = a.order[:len(a.order)-1]
	delete(a.entries, last)
}
