package catalog

import "github.com/samber/lo"

// Default returns the built-in catalog: a five-day week with a short third
// day, fourteen teachers, six groups and eight courses. Lecture and td
// sessions are bound to a single teacher each; the two lab courses draw
// their tp sessions from a pool of three assistants.
func Default() Catalog {
	return Catalog{
		Week:     []int{5, 5, 3, 5, 5},
		Teachers: lo.RangeFrom(TeacherID(1), 14),
		Groups:   6,
		Courses: []Course{
			{
				Name: "Sécurité",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{1}},
					RoleTD:      {Teachers: []TeacherID{1}},
				},
			},
			{
				Name: "Méthodes formelles",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{2}},
					RoleTD:      {Teachers: []TeacherID{2}},
				},
			},
			{
				Name: "Analyse numérique",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{3}},
					RoleTD:      {Teachers: []TeacherID{3}},
				},
			},
			{
				Name: "Entrepreneuriat",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{4}},
				},
			},
			{
				Name: "Recherche opérationnelle 2",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{5}},
					RoleTD:      {Teachers: []TeacherID{5}},
				},
			},
			{
				Name: "Distributed Architecture & Intensive Computing",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{6}},
					RoleTD:      {Teachers: []TeacherID{6}},
				},
			},
			{
				Name: "Réseaux 2",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{7}},
					RoleTD:      {Teachers: []TeacherID{7}},
					RoleTP:      {Teachers: []TeacherID{8, 9, 10}},
				},
			},
			{
				Name: "Artificial Intelligence",
				Sessions: map[Role]SessionSpec{
					RoleLecture: {Teachers: []TeacherID{11}},
					RoleTD:      {Teachers: []TeacherID{11}},
					RoleTP:      {Teachers: []TeacherID{12, 13, 14}},
				},
			},
		},
	}
}
