package catalog

import "errors"

// Configuration errors reported by Validate and the JSON loader. Callers
// match them with errors.Is; the wrapped message names the offending course
// or session.
var (
	ErrUnknownRole      = errors.New("unknown session role")
	ErrUnknownTeacher   = errors.New("session references a teacher outside the roster")
	ErrUnknownGroup     = errors.New("session restricted to a group outside 1..Groups")
	ErrNoTeachers       = errors.New("session has no eligible teacher")
	ErrAmbiguousTeacher = errors.New("lecture and td sessions take exactly one teacher")
	ErrDuplicateCourse  = errors.New("duplicate course name")
	ErrNoSessions       = errors.New("course requires no session at all")
)
