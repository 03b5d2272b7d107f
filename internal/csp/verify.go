package csp

import (
	"slices"

	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// Verify checks a complete assignment against every hard constraint of the
// solver's catalog: completeness, slot collisions, teacher eligibility,
// group correctness, lecture broadcast and the consecutive-run caps. It is
// independent of how the assignment was produced, so it also vets
// timetables loaded from disk.
func (s *Solver) Verify(a *Assignment) bool {
	if a == nil || a.Len() != len(s.problem.variables) {
		return false
	}

	type slotTeacher struct {
		slot    catalog.Slot
		teacher catalog.TeacherID
	}
	type slotGroup struct {
		slot  catalog.Slot
		group catalog.GroupID
	}
	teacherSeen := make(map[slotTeacher]Variable) // occupied (slot, teacher) pairs and their owning variable
	groupSeen := make(map[slotGroup]bool)         // occupied (slot, group) pairs

	for _, variable := range s.problem.variables {
		if !a.Assigned(variable) {
			return false
		}
		entries := a.Entries(variable)

		if variable.IsLecture() {
			if !s.lectureShape(variable, entries) {
				return false
			}
		} else if len(entries) != 1 || entries[0].Group != variable.Group {
			return false
		}

		for _, entry := range entries {
			teacherKey := slotTeacher{slot: entry.Slot, teacher: entry.Teacher}
			groupKey := slotGroup{slot: entry.Slot, group: entry.Group}
			owner, teacherTaken := teacherSeen[teacherKey]

			// Check that:
			// - The slot exists in the week calendar
			// - The teacher is eligible for the session
			// - No other variable occupies the (slot, teacher) pair
			// - Nothing occupies the (slot, group) pair
			if !s.problem.cat.ContainsSlot(entry.Slot) ||
				!lo.Contains(s.problem.eligibleTeachers(variable), entry.Teacher) ||
				(teacherTaken && owner != variable) ||
				groupSeen[groupKey] {
				return false
			}

			teacherSeen[teacherKey] = variable // Store teacher occupancy
			groupSeen[groupKey] = true         // Store group occupancy
		}
	}

	return s.runsWithinCaps(a)
}

// lectureShape checks the broadcast invariant: one entry per group, every
// entry on the same slot with the same teacher.
func (s *Solver) lectureShape(variable Variable, entries []Candidate) bool {
	if len(entries) != len(s.problem.groups) {
		return false
	}

	first := entries[0]
	covered := lo.Map(entries, func(entry Candidate, _ int) catalog.GroupID { return entry.Group })
	slices.Sort(covered)

	return !lo.SomeBy(entries, func(entry Candidate) bool {
		return entry.Slot != first.Slot || entry.Teacher != first.Teacher
	}) && slices.Equal(covered, s.problem.groups)
}

// runsWithinCaps recomputes the consecutive-run caps from scratch. Teacher
// runs are measured over td and tp entries only: a run may exceed the cap
// through lecture entries, never without them. Group runs count everything.
func (s *Solver) runsWithinCaps(a *Assignment) bool {
	type dayKey struct {
		id  int
		day int
	}
	teacherPeriods := make(map[dayKey]map[int]struct{})
	groupPeriods := make(map[dayKey]map[int]struct{})

	add := func(periods map[dayKey]map[int]struct{}, key dayKey, period int) {
		if periods[key] == nil {
			periods[key] = make(map[int]struct{})
		}
		periods[key][period] = struct{}{}
	}

	for _, variable := range a.order {
		for _, entry := range a.entries[variable] {
			if !variable.IsLecture() {
				add(teacherPeriods, dayKey{id: int(entry.Teacher), day: entry.Slot.Day}, entry.Slot.Period)
			}
			add(groupPeriods, dayKey{id: int(entry.Group), day: entry.Slot.Day}, entry.Slot.Period)
		}
	}

	for _, periods := range teacherPeriods {
		if longestRun(periods) > maxConsecutive {
			return false
		}
	}
	for _, periods := range groupPeriods {
		if longestRun(periods) > maxConsecutive {
			return false
		}
	}
	return true
}
