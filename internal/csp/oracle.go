package csp

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// maxConsecutive caps the run of back-to-back occupied periods a teacher or
// a group may accumulate on one day. Lectures are exempt on the teacher
// side: a lecture may extend a teacher's run past the cap, a td or tp may
// not.
const maxConsecutive = 3

// oracle decides whether a candidate may join the assignment without
// breaking a hard constraint. It is a pure predicate: it never mutates the
// assignment or the domains, and its verdict depends only on its arguments.
type oracle struct {
	p *problem
}

// admissible runs the checks cheapest-first and short-circuits on the first
// failure. For a lecture variable the caller expands the candidate to one
// entry per group and vets every entry through here before committing any.
func (o oracle) admissible(v Variable, c Candidate, a *Assignment) bool {
	//** Teacher eligibility
	if !lo.Contains(o.p.eligibleTeachers(v), c.Teacher) {
		return false
	}

	//** Group correctness: lecture entries carry their own group by construction
	if !v.IsLecture() && c.Group != v.Group {
		return false
	}

	//** Slot collisions against every committed entry
	for _, other := range a.order {
		for _, entry := range a.entries[other] {
			if conflicts(entry, c) {
				return false
			}
		}
	}

	//** Consecutive-run caps on the candidate's day
	if !v.IsLecture() && o.teacherRun(a, c) > maxConsecutive {
		return false
	}
	return o.groupRun(a, c) <= maxConsecutive
}

// teacherRun computes the teacher's longest consecutive run on the
// candidate's day once the candidate is hypothetically added.
func (o oracle) teacherRun(a *Assignment, c Candidate) int {
	periods := map[int]struct{}{c.Slot.Period: {}}
	for _, other := range a.order {
		for _, entry := range a.entries[other] {
			if entry.Teacher == c.Teacher && entry.Slot.Day == c.Slot.Day {
				periods[entry.Slot.Period] = struct{}{}
			}
		}
	}
	return longestRun(periods)
}

// groupRun is the group-side counterpart of teacherRun.
func (o oracle) groupRun(a *Assignment, c Candidate) int {
	periods := map[int]struct{}{c.Slot.Period: {}}
	for _, other := range a.order {
		for _, entry := range a.entries[other] {
			if entry.Group == c.Group && entry.Slot.Day == c.Slot.Day {
				periods[entry.Slot.Period] = struct{}{}
			}
		}
	}
	return longestRun(periods)
}

// longestRun returns the length of the longest streak of consecutive
// periods in the set.
func longestRun(periods map[int]struct{}) int {
	sorted := lo.Keys(periods)
	slices.Sort(sorted)

	longest, current, previous := 0, 0, math.MinInt
	for _, period := range sorted {
		if period == previous+1 {
			current++
		} else {
			current = 1
		}
		previous = period
		longest = max(longest, current)
	}
	return longest
}

// workdays returns the distinct days a teacher appears on, sorted. The
// two-day workload target is a soft preference, reported rather than
// enforced.
func workdays(a *Assignment, teacher catalog.TeacherID) []int {
	days := make(map[int]struct{})
	for _, v := range a.order {
		for _, entry := range a.entries[v] {
			if entry.Teacher == teacher {
				days[entry.Slot.Day] = struct{}{}
			}
		}
	}
	sorted := lo.Keys(days)
	slices.Sort(sorted)
	return sorted
}
