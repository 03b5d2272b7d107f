package csp

import (
	"context"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// Options tunes a Solver.
type Options struct {
	// SpreadLectures biases lecture value order toward distinct day-opening
	// slots. Off, the plain domain order applies.
	SpreadLectures bool
	// Seed drives the day shuffle behind SpreadLectures; the same seed
	// always produces the same preference. Ignored otherwise.
	Seed int64
}

// Solver solves one catalog. Construction validates the catalog and builds
// the variables and initial domains once; every Solve call then works on
// private copies, so repeated calls start from the same state. A Solver is
// not safe for concurrent use; it is cheap to build, give each goroutine
// its own.
type Solver struct {
	problem *problem
	opts    Options
	stats   Stats
}

// New builds a solver for the catalog, failing fast on an invalid
// configuration.
func New(cat catalog.Catalog, opts Options) (*Solver, error) {
	problem, err := newProblem(cat)
	if err != nil {
		return nil, err
	}
	if opts.SpreadLectures {
		problem.spreadLectures(opts.Seed)
	}
	return &Solver{problem: problem, opts: opts}, nil
}

// Solve searches for a complete assignment satisfying every hard
// constraint. It returns nil with a nil error when the instance is
// unsatisfiable, and the context error when a deadline or cancellation cuts
// the search short.
func (s *Solver) Solve(ctx context.Context) (*Assignment, error) {
	domains := s.problem.cloneDomains()

	//** Arc-consistency preprocessing
	pruned, consistent := runAC3(domains)
	s.stats = Stats{Pruned: pruned}
	if !consistent {
		return nil, nil // A domain emptied: unsatisfiable before any search
	}

	//** Heuristic backtracking over the pruned domains
	engine := newEngine(s.problem, domains)
	engine.stats.Pruned = pruned

	solved, err := engine.search(ctx)
	s.stats = engine.stats
	if err != nil {
		return nil, err
	} else if !solved { // Return nil if the search exhausted the tree
		return nil, nil
	}
	return engine.assign, nil
}

// Stats reports the counters of the most recent Solve.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Catalog returns the configuration the solver was built for.
func (s *Solver) Catalog() catalog.Catalog {
	return s.problem.cat
}
