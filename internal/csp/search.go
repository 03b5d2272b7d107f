package csp

import (
	"context"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// engine runs chronological backtracking over AC-3-pruned domains. Variable
// order follows minimum-remaining-values, value order least-constraining
// first; both tiebreak on creation order, so two runs over the same problem
// walk the same tree.
type engine struct {
	p       *problem
	domains [][]Candidate
	assign  *Assignment
	oracle  oracle
	ordered [][]Candidate // memoized value orderings, see orderedValues
	stats   Stats
}

// Stats counts the work of one solve.
type Stats struct {
	Pruned     int // values removed by AC-3
	Nodes      int // variables expanded during search
	Backtracks int // commits undone
}

func newEngine(p *problem, domains [][]Candidate) *engine {
	return &engine{
		p:       p,
		domains: domains,
		assign:  newAssignment(len(p.variables)),
		oracle:  oracle{p: p},
		ordered: make([][]Candidate, len(p.variables)),
	}
}

// search extends the assignment one variable at a time, undoing the frame's
// commit on a dead end. It returns false with a nil error when the subtree
// holds no solution, and the context error when the deadline or a
// cancellation cuts the run short.
func (e *engine) search(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if e.assign.Len() == len(e.p.variables) {
		return true, nil
	}

	variableIndex := e.nextVariable()
	variable := e.p.variables[variableIndex]
	e.stats.Nodes++

	for _, candidate := range e.orderedValues(variableIndex) {
		entries, ok := e.admit(variable, candidate)
		if !ok {
			continue
		}

		e.assign.commit(variable, entries)

		solved, err := e.search(ctx)
		if err != nil {
			return false, err
		}
		if solved {
			return true, nil
		}

		e.assign.revert()
		e.stats.Backtracks++
	}

	return false, nil
}

// admit vets a candidate through the oracle. A lecture candidate is first
// expanded to one entry per group with the same slot and teacher; the whole
// expansion must pass before anything is committed, so a lecture is always
// all groups or none.
func (e *engine) admit(variable Variable, candidate Candidate) ([]Candidate, bool) {
	if !variable.IsLecture() {
		if !e.oracle.admissible(variable, candidate, e.assign) {
			return nil, false
		}
		return []Candidate{candidate}, true
	}

	entries := lo.Map(e.p.groups, func(group catalog.GroupID, _ int) Candidate {
		return Candidate{Slot: candidate.Slot, Teacher: candidate.Teacher, Group: group}
	})
	for _, entry := range entries {
		if !e.oracle.admissible(variable, entry, e.assign) {
			return nil, false
		}
	}
	return entries, true
}

// nextVariable picks the unassigned variable with the fewest remaining
// values; the first such variable in creation order wins a tie.
func (e *engine) nextVariable() int {
	best, bestSize := -1, math.MaxInt
	for i, variable := range e.p.variables {
		if e.assign.Assigned(variable) {
			continue
		}
		if size := len(e.domains[i]); size < bestSize {
			best, bestSize = i, size
		}
	}
	return best
}

// orderedValues sorts a copy of the domain least-constraining first: by the
// number of values the candidate would knock out of the other variables'
// domains. The sort is stable, so equally constraining values keep their
// domain order. Search never prunes domains, so the ordering is computed at
// most once per variable and reused across branches.
func (e *engine) orderedValues(variableIndex int) []Candidate {
	if e.ordered[variableIndex] != nil {
		return e.ordered[variableIndex]
	}

	type scoredValue struct {
		value Candidate
		cost  int
	}

	scored := lo.Map(e.domains[variableIndex], func(value Candidate, _ int) scoredValue {
		cost := 0
		for otherIndex, otherDomain := range e.domains {
			if otherIndex == variableIndex {
				continue
			}
			cost += lo.CountBy(otherDomain, func(other Candidate) bool {
				return conflicts(value, other)
			})
		}
		return scoredValue{value: value, cost: cost}
	})

	slices.SortStableFunc(scored, func(a, b scoredValue) int {
		return a.cost - b.cost
	})

	e.ordered[variableIndex] = lo.Map(scored, func(s scoredValue, _ int) Candidate { return s.value })
	return e.ordered[variableIndex]
}
