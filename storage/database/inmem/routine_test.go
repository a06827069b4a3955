package inmemdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

func TestRoutineRepository(t *testing.T) {
	db := Open()
	repo := NewRoutineRepository(db)
	ctx := context.Background()

	now := time.Now()
	old := db.CreateGroup(routine.BacklogGroup{Name: "Odd 2025", CreatedAt: now.Add(-time.Hour)})
	grp := db.CreateGroup(routine.BacklogGroup{Name: "Even 2026", Session: "2025-26", CreatedAt: now})
	twin := db.CreateGroup(routine.BacklogGroup{Name: "Even 2026 (B)", CreatedAt: now})

	db.AddRegistration(grp.ID, routine.CourseRegistration{StudentID: 2, CourseID: 20, CourseCode: "MATH 1201"}, true)
	db.AddRegistration(grp.ID, routine.CourseRegistration{StudentID: 1, CourseID: 20, CourseCode: "MATH 1201"}, true)
	db.AddRegistration(grp.ID, routine.CourseRegistration{StudentID: 1, CourseID: 10, CourseCode: "CSE 1101"}, true)
	db.AddRegistration(grp.ID, routine.CourseRegistration{StudentID: 2, CourseID: 30, CourseCode: "PHY 1101"}, false)
	db.AddRegistration(old.ID, routine.CourseRegistration{StudentID: 1, CourseID: 30, CourseCode: "PHY 1101"}, true)

	t.Run("QueryBacklogGroups", func(t *testing.T) {
		groups, err := repo.QueryBacklogGroups(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 3)

		assert.Equal(t, []int{twin.ID, grp.ID, old.ID}, []int{groups[0].ID, groups[1].ID, groups[2].ID})
		assert.Equal(t, 2, groups[1].CourseCount)
		assert.Equal(t, 2, groups[1].StudentCount)
		assert.Equal(t, 0, groups[0].CourseCount)
	})

	t.Run("GetBacklogGroup", func(t *testing.T) {
		g, err := repo.GetBacklogGroup(ctx, grp.ID)
		require.NoError(t, err)
		assert.Equal(t, "2025-26", g.Session)
		assert.Equal(t, time.UTC, g.CreatedAt.Location())

		_, err = repo.GetBacklogGroup(ctx, 9999)
		assert.Equal(t, routine.ErrGroupNotFound, err)
	})

	t.Run("QueryRegisteredCourses", func(t *testing.T) {
		regs, err := repo.QueryRegisteredCourses(ctx, grp.ID)
		require.NoError(t, err)
		assert.Equal(t, []routine.CourseRegistration{
			{StudentID: 1, CourseID: 10, CourseCode: "CSE 1101"},
			{StudentID: 1, CourseID: 20, CourseCode: "MATH 1201"},
			{StudentID: 2, CourseID: 20, CourseCode: "MATH 1201"},
		}, regs)
	})
}
