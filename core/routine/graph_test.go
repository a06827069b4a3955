package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reg(student, course int, code string) CourseRegistration {
	return CourseRegistration{StudentID: student, CourseID: course, CourseCode: code}
}

func TestBuildConflictGraph(t *testing.T) {
	regs := []CourseRegistration{
		reg(1, 10, "A"),
		reg(1, 20, "B"),
		reg(2, 20, "B"),
		reg(2, 30, "C"),
		reg(2, 30, "C"), // duplicated row
		reg(3, 40, "D"),
		reg(1, 10, "A-renamed"),
	}
	g := BuildConflictGraph(regs)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []Course{{10, "A"}, {20, "B"}, {30, "C"}, {40, "D"}}, g.Courses())
	assert.Equal(t, 2, g.EdgeCount())

	assert.True(t, g.Conflicts(10, 20))
	assert.True(t, g.Conflicts(20, 10))
	assert.True(t, g.Conflicts(20, 30))
	assert.False(t, g.Conflicts(10, 30))
	assert.False(t, g.Conflicts(10, 10))

	assert.Equal(t, 1, g.Degree(10))
	assert.Equal(t, 2, g.Degree(20))
	assert.Equal(t, 0, g.Degree(40))
	assert.Equal(t, []int{10, 30}, g.Neighbors(20))
	assert.Empty(t, g.Neighbors(40))

	c, ok := g.Course(30)
	assert.True(t, ok)
	assert.Equal(t, "C", c.Code)
	_, ok = g.Course(99)
	assert.False(t, ok)
}

func TestBuildConflictGraph_empty(t *testing.T) {
	g := BuildConflictGraph(nil)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Courses())
}
