// Package csp models a weekly timetable as a constraint-satisfaction
// problem and solves it with AC-3 preprocessing followed by heuristic
// chronological backtracking. One Variable stands for one session a group
// must attend; its values are (slot, teacher, group) candidates. Lectures
// are a single variable each but commit one entry per group, so all groups
// sit the lecture together.
package csp

import (
	"fmt"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// Variable identifies one session to place: a course, a role and the target
// group. Lecture variables are anchored on the first group; their committed
// entries span every group.
type Variable struct {
	Course string
	Role   catalog.Role
	Group  catalog.GroupID
}

// IsLecture reports whether the variable commits one entry per group.
func (v Variable) IsLecture() bool {
	return v.Role == catalog.RoleLecture
}

func (v Variable) String() string {
	return fmt.Sprintf("%v (%v, group %v)", v.Course, v.Role, v.Group)
}

// Candidate is one value a variable may take: a slot of the week, the
// teacher giving the session and the group sitting it.
type Candidate struct {
	Slot    catalog.Slot
	Teacher catalog.TeacherID
	Group   catalog.GroupID
}

func (c Candidate) String() string {
	return fmt.Sprintf("%v, teacher %v, group %v", c.Slot, c.Teacher, c.Group)
}
