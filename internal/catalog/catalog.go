// Package catalog holds the immutable configuration a timetable is solved
// against: the week calendar, the teacher roster, the student groups and the
// courses with their required sessions. A Catalog is built once (from the
// built-in default or from JSON) and never mutated afterwards; solvers
// receive it by value.
package catalog

import (
	"fmt"

	"github.com/samber/lo"
)

// TeacherID identifies a teacher in the roster.
type TeacherID int

// GroupID identifies a student group, numbered 1..Groups.
type GroupID int

// Role enumerates the session kinds a course may require.
type Role uint8

const (
	RoleLecture Role = iota // shared by every group
	RoleTD                  // tutorial, one per group
	RoleTP                  // lab, one per group
)

// AllRoles lists the roles in their canonical order.
var AllRoles = []Role{RoleLecture, RoleTD, RoleTP}

var roleNames = map[Role]string{
	RoleLecture: "lecture",
	RoleTD:      "td",
	RoleTP:      "tp",
}

func (r Role) String() string {
	name, ok := roleNames[r]
	if !ok {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return name
}

// ParseRole maps a catalog key ("lecture", "td", "tp") to its Role.
func ParseRole(name string) (Role, error) {
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Slot is one teaching period: a (day, period) pair, both 1-based.
type Slot struct {
	Day    int `json:"day"`
	Period int `json:"period"`
}

func (s Slot) String() string {
	return fmt.Sprintf("day %d period %d", s.Day, s.Period)
}

// SessionSpec describes one required session of a course: the teachers
// eligible to give it (exactly one for lecture and td sessions, a small pool
// for tp sessions) and, optionally, the groups needing it. An empty Groups
// list means every group.
type SessionSpec struct {
	Teachers []TeacherID
	Groups   []GroupID
}

// Course is a name plus its required sessions, keyed by role. A role absent
// from Sessions is not required; a present role is required exactly once
// (per group for td/tp).
type Course struct {
	Name     string `validate:"required"`
	Sessions map[Role]SessionSpec
}

// Requires reports whether the course needs a session of the given role.
func (c Course) Requires(r Role) bool {
	_, ok := c.Sessions[r]
	return ok
}

// Catalog is the full problem configuration.
type Catalog struct {
	// Week holds the number of periods of each day, in day order. Days may
	// differ (the default week has a short third day).
	Week []int `validate:"min=1,max=7,dive,min=1,max=12"`
	// Teachers is the roster of valid teacher ids.
	Teachers []TeacherID `validate:"min=1,unique"`
	// Groups is the number of student groups, ids 1..Groups.
	Groups int `validate:"min=1"`
	// Courses lists the courses in a fixed order; the order is part of the
	// configuration and keeps solving deterministic.
	Courses []Course `validate:"min=1,dive"`
}

// Days returns the number of days in the week.
func (c Catalog) Days() int { return len(c.Week) }

// Periods returns the number of periods of the given 1-based day, or 0 for
// a day outside the week.
func (c Catalog) Periods(day int) int {
	if day < 1 || day > len(c.Week) {
		return 0
	}
	return c.Week[day-1]
}

// Slots enumerates every slot of the week in day-major order.
func (c Catalog) Slots() []Slot {
	slots := make([]Slot, 0, lo.Sum(c.Week))
	for day, periods := range c.Week {
		for period := 1; period <= periods; period++ {
			slots = append(slots, Slot{Day: day + 1, Period: period})
		}
	}
	return slots
}

// ContainsSlot reports whether the slot exists in the week calendar.
func (c Catalog) ContainsSlot(s Slot) bool {
	return s.Period >= 1 && s.Period <= c.Periods(s.Day)
}

// GroupIDs returns all group ids, 1..Groups.
func (c Catalog) GroupIDs() []GroupID {
	return lo.RangeFrom(GroupID(1), c.Groups)
}

// HasTeacher reports whether the id belongs to the roster.
func (c Catalog) HasTeacher(id TeacherID) bool {
	return lo.Contains(c.Teachers, id)
}

// RoleGroups returns the groups needing the given role of a course: the
// session's restriction when present, every group otherwise. Lectures are
// always shared by every group regardless of restriction.
func (c Catalog) RoleGroups(course Course, r Role) []GroupID {
	spec, ok := course.Sessions[r]
	if !ok {
		return nil
	}
	if r == RoleLecture || len(spec.Groups) == 0 {
		return c.GroupIDs()
	}
	return spec.Groups
}

// Course returns the course with the given name.
func (c Catalog) Course(name string) (Course, bool) {
	return lo.Find(c.Courses, func(course Course) bool { return course.Name == name })
}
