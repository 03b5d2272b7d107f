package csp

// constraintKind enumerates the binary constraints holding between every
// pair of distinct variables: two sessions can share a slot only when they
// involve different teachers and different groups.
type constraintKind uint8

const (
	teacherSlotConflict constraintKind = iota // same teacher cannot give two sessions in one slot
	groupSlotConflict                         // same group cannot sit two sessions in one slot
)

var constraintKinds = []constraintKind{teacherSlotConflict, groupSlotConflict}

// compatible reports whether the two candidates may coexist under the
// constraint.
func (k constraintKind) compatible(a, b Candidate) bool {
	if a.Slot != b.Slot {
		return true
	}
	switch k {
	case teacherSlotConflict:
		return a.Teacher != b.Teacher
	default:
		return a.Group != b.Group
	}
}

// conflicts reports whether candidate b would be ruled out by candidate a
// under any constraint.
func conflicts(a, b Candidate) bool {
	return a.Slot == b.Slot && (a.Teacher == b.Teacher || a.Group == b.Group)
}

// arc is one directed edge of the constraint network: a (from, to, kind)
// triple stating that every value of "from" needs a compatible partner in
// the domain of "to". Variables are referred to by index.
type arc struct {
	from, to int
	kind     constraintKind
}
