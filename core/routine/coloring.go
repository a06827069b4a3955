package routine

import "sort"

// Coloring is a greedy coloring of a ConflictGraph; a color is an exam day.
type Coloring struct {
	Order  []int       // course IDs in the order they were colored
	Colors map[int]int // course ID -> color
}

// ColoringOrder returns the course IDs by descending degree.
// Equal degrees keep their first-seen order, so identical input always gives the same order.
func ColoringOrder(g *ConflictGraph) []int {
	ids := make([]int, 0, g.Len())
	for _, c := range g.courses {
		ids = append(ids, c.ID)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return g.Degree(ids[i]) > g.Degree(ids[j])
	})
	return ids
}

// GreedyColor gives each course, in ColoringOrder, the smallest color
// not already taken by one of its conflicting courses.
func GreedyColor(g *ConflictGraph) Coloring {
	order := ColoringOrder(g)
	colors := make(map[int]int, len(order))

	for _, id := range order {
		taken := make(map[int]bool, g.Degree(id))
		for _, n := range g.Neighbors(id) {
			if c, ok := colors[n]; ok {
				taken[c] = true
			}
		}
		color := 0
		for taken[color] {
			color++
		}
		colors[id] = color
	}
	return Coloring{Order: order, Colors: colors}
}

// NumColors returns the number of distinct colors used.
func (c Coloring) NumColors() int {
	used := make(map[int]bool)
	for _, color := range c.Colors {
		used[color] = true
	}
	return len(used)
}

// Schedule turns the coloring into a Schedule.
// Colors become dense day indices in order of first appearance along Order,
// and each day lists its courses in coloring order.
func (c Coloring) Schedule(g *ConflictGraph) Schedule {
	numDays := c.NumColors()
	days := make(map[int]int, numDays) // color -> day index
	sch := Schedule{ExamDays: make(map[int][]Course, numDays)}

	for _, id := range c.Order {
		color := c.Colors[id]
		day, ok := days[color]
		if !ok {
			day = len(days)
			days[color] = day
		}
		course, _ := g.Course(id)
		sch.ExamDays[day] = append(sch.ExamDays[day], course)
	}
	sch.NumDays = len(days)
	return sch
}
