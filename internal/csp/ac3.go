package csp

import "github.com/samber/lo"

// runAC3 enforces arc consistency over the domains in place and returns the
// number of pruned values. The boolean is false when some domain emptied,
// which proves the instance unsatisfiable before any search runs. Running it
// again on already-consistent domains prunes nothing.
func runAC3(domains [][]Candidate) (int, bool) {
	//** Seed the queue with every ordered pair of distinct variables, both constraint kinds
	queue := make([]arc, 0, len(domains)*(len(domains)-1)*len(constraintKinds))
	for from := range domains {
		for to := range domains {
			if from == to {
				continue
			}
			for _, kind := range constraintKinds {
				queue = append(queue, arc{from: from, to: to, kind: kind})
			}
		}
	}

	//** Drain the queue, re-enqueueing the neighbours of every shrunk domain
	pruned := 0
	for head := 0; head < len(queue); head++ {
		current := queue[head]

		dropped := revise(domains, current)
		if dropped == 0 {
			continue
		}
		pruned += dropped

		if len(domains[current.from]) == 0 {
			return pruned, false
		}

		// Every other variable may have lost support in the shrunk domain;
		// the arc just processed needs no re-check.
		for neighbour := range domains {
			if neighbour == current.from || neighbour == current.to {
				continue
			}
			for _, kind := range constraintKinds {
				queue = append(queue, arc{from: neighbour, to: current.from, kind: kind})
			}
		}
	}

	return pruned, true
}

// revise drops the values of D(from) with no compatible partner left in
// D(to) and returns how many were dropped.
func revise(domains [][]Candidate, a arc) int {
	before := len(domains[a.from])

	kept := domains[a.from][:0]
	for _, value := range domains[a.from] {
		supported := lo.SomeBy(domains[a.to], func(other Candidate) bool {
			return a.kind.compatible(value, other)
		})
		if supported {
			kept = append(kept, value)
		}
	}
	domains[a.from] = kept

	return before - len(kept)
}
