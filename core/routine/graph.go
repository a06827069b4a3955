package routine

import "sort"

// ConflictGraph links two courses when at least one student is registered for both.
type ConflictGraph struct {
	courses []Course             // nodes, in first-seen order
	rank    map[int]int          // course ID -> index in courses
	adj     map[int]map[int]bool // course ID -> conflicting course IDs
}

// BuildConflictGraph builds the conflict graph of `regs`.
// The first registration seen for a course gives its code.
func BuildConflictGraph(regs []CourseRegistration) *ConflictGraph {
	g := &ConflictGraph{
		rank: make(map[int]int),
		adj:  make(map[int]map[int]bool),
	}

	byStudent := make(map[int][]int)
	seen := make(map[[2]int]bool, len(regs)) // (student, course)
	studentOrder := make([]int, 0)

	for _, reg := range regs {
		if _, ok := g.rank[reg.CourseID]; !ok {
			g.rank[reg.CourseID] = len(g.courses)
			g.courses = append(g.courses, Course{ID: reg.CourseID, Code: reg.CourseCode})
			g.adj[reg.CourseID] = make(map[int]bool)
		}

		key := [2]int{reg.StudentID, reg.CourseID}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := byStudent[reg.StudentID]; !ok {
			studentOrder = append(studentOrder, reg.StudentID)
		}
		byStudent[reg.StudentID] = append(byStudent[reg.StudentID], reg.CourseID)
	}

	for _, sid := range studentOrder {
		courses := byStudent[sid]
		for i := 0; i < len(courses); i++ {
			for j := i + 1; j < len(courses); j++ {
				g.addEdge(courses[i], courses[j])
			}
		}
	}
	return g
}

func (g *ConflictGraph) addEdge(a, b int) {
	if a == b {
		return
	}
	g.adj[a][b] = true
	g.adj[b][a] = true
}

// Courses returns the nodes in first-seen order.
func (g *ConflictGraph) Courses() []Course {
	courses := make([]Course, len(g.courses))
	copy(courses, g.courses)
	return courses
}

// Len returns the number of courses.
func (g *ConflictGraph) Len() int { return len(g.courses) }

// Course returns the course with the given ID, if it is a node.
func (g *ConflictGraph) Course(id int) (Course, bool) {
	i, ok := g.rank[id]
	if !ok {
		return Course{}, false
	}
	return g.courses[i], true
}

// Degree returns the number of distinct courses conflicting with `id`.
func (g *ConflictGraph) Degree(id int) int {
	return len(g.adj[id])
}

// Conflicts reports whether a student is registered in both `a` and `b`.
func (g *ConflictGraph) Conflicts(a, b int) bool {
	return g.adj[a][b]
}

// Neighbors returns the courses conflicting with `id`, in first-seen order.
func (g *ConflictGraph) Neighbors(id int) []int {
	ids := make([]int, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		ids = append(ids, n)
	}
	sort.Slice(ids, func(i, j int) bool { return g.rank[ids[i]] < g.rank[ids[j]] })
	return ids
}

// EdgeCount returns the number of undirected conflict edges.
func (g *ConflictGraph) EdgeCount() int {
	var n int
	for _, neighbors := range g.adj {
		n += len(neighbors)
	}
	return n / 2
}
