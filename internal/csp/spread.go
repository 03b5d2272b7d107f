package csp

import (
	"math/rand"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// spreadLectures biases every lecture domain toward a day-opening slot of
// its own, so lectures land spread over the week instead of piling onto the
// earliest day. A largest matching pairs lectures with distinct openers;
// lectures beyond the number of days share openers round-robin. The day
// order is shuffled from the seed, so one seed always yields the same
// preference. Called during construction only, before the first solve.
func (p *problem) spreadLectures(seed int64) {
	lectures := lo.Filter(lo.Range(len(p.variables)), func(i int, _ int) bool {
		return p.variables[i].IsLecture()
	})
	if len(lectures) == 0 {
		return
	}

	//** Shuffle the day-opening slots from the seed
	openers := lo.Map(lo.RangeFrom(1, p.cat.Days()), func(day int, _ int) catalog.Slot {
		return catalog.Slot{Day: day, Period: 1}
	})
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(openers), func(i, j int) {
		openers[i], openers[j] = openers[j], openers[i]
	})

	//** Pair each lecture with its own opener via a largest matching
	neighbours := func(lectureAny any, openerAny any) (bool, error) {
		lectureIndex := lectureAny.(int)
		opener := openerAny.(catalog.Slot)

		return lo.SomeBy(p.domains[lectureIndex], func(c Candidate) bool {
			return c.Slot == opener
		}), nil
	}
	lecturesAny := lo.Map(lectures, func(i int, _ int) any { return i })
	openersAny := lo.Map(openers, func(s catalog.Slot, _ int) any { return s })

	graph, err := bipartitegraph.NewBipartiteGraph(lecturesAny, openersAny, neighbours)
	if err != nil {
		return // No bias is still a correct solver
	}

	preferred := make(map[int]catalog.Slot, len(lectures))
	for _, edge := range graph.LargestMatching() {
		preferred[lectures[edge.Node1]] = openers[edge.Node2-len(lectures)]
	}

	//** Openers wrap around for the lectures the matching could not cover
	leftover := 0
	for _, lectureIndex := range lectures {
		if _, ok := preferred[lectureIndex]; ok {
			continue
		}
		preferred[lectureIndex] = openers[leftover%len(openers)]
		leftover++
	}

	//** Stable-partition each lecture domain: the preferred slot comes first
	for lectureIndex, opener := range preferred {
		domain := p.domains[lectureIndex]
		favoured := lo.Filter(domain, func(c Candidate, _ int) bool { return c.Slot == opener })
		rest := lo.Filter(domain, func(c Candidate, _ int) bool { return c.Slot != opener })
		p.domains[lectureIndex] = append(favoured, rest...)
	}
}
