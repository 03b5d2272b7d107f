package csp

import (
	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// sessionKey addresses the eligible-teacher pool of one (course, role)
// session.
type sessionKey struct {
	course string
	role   catalog.Role
}

// problem is the solver's view of a validated catalog: the variables in
// their creation order, one initial domain per variable and the
// eligible-teacher pools. It is immutable after construction; every solve
// works on its own copy of the domains.
type problem struct {
	cat       catalog.Catalog
	variables []Variable
	index     map[Variable]int
	domains   [][]Candidate
	eligible  map[sessionKey][]catalog.TeacherID
	groups    []catalog.GroupID
}

func newProblem(cat catalog.Catalog) (*problem, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	p := &problem{
		cat:      cat,
		index:    make(map[Variable]int),
		eligible: make(map[sessionKey][]catalog.TeacherID),
		groups:   cat.GroupIDs(),
	}

	//** Enumerate variables in catalog order: lecture, then td, then tp per course
	for _, course := range cat.Courses {
		for _, role := range catalog.AllRoles {
			if !course.Requires(role) {
				continue
			}
			p.eligible[sessionKey{course.Name, role}] = course.Sessions[role].Teachers

			if role == catalog.RoleLecture {
				p.addVariable(Variable{Course: course.Name, Role: role, Group: p.groups[0]})
				continue
			}
			for _, group := range cat.RoleGroups(course, role) {
				p.addVariable(Variable{Course: course.Name, Role: role, Group: group})
			}
		}
	}

	//** Build the candidate pool and carve one group-filtered domain per variable
	pool := candidatePool(cat)
	p.domains = make([][]Candidate, len(p.variables))
	for i, variable := range p.variables {
		p.domains[i] = lo.Filter(pool, func(c Candidate, _ int) bool {
			return c.Group == variable.Group
		})
	}

	return p, nil
}

func (p *problem) addVariable(v Variable) {
	p.index[v] = len(p.variables)
	p.variables = append(p.variables, v)
}

// candidatePool enumerates every (slot, teacher, group) combination of the
// catalog, slots in day-major order, teachers and groups in roster order.
func candidatePool(cat catalog.Catalog) []Candidate {
	slots := cat.Slots()
	pool := make([]Candidate, 0, len(slots)*len(cat.Teachers)*cat.Groups)
	for _, slot := range slots {
		for _, teacher := range cat.Teachers {
			for _, group := range cat.GroupIDs() {
				pool = append(pool, Candidate{Slot: slot, Teacher: teacher, Group: group})
			}
		}
	}
	return pool
}

// eligibleTeachers returns the teacher pool of the variable's session.
func (p *problem) eligibleTeachers(v Variable) []catalog.TeacherID {
	return p.eligible[sessionKey{v.Course, v.Role}]
}

// cloneDomains deep-copies the initial domains so a solve can prune and
// reorder them freely.
func (p *problem) cloneDomains() [][]Candidate {
	return lo.Map(p.domains, func(domain []Candidate, _ int) []Candidate {
		clone := make([]Candidate, len(domain))
		copy(clone, domain)
		return clone
	})
}
