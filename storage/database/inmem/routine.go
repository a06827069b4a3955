package inmemdb

import (
	"context"
	"sort"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

type routineRepository struct {
	db *groupTable
}

var _ routine.Repository = (*routineRepository)(nil) // interface compliance check

func NewRoutineRepository(db *DB) *routineRepository {
	return &routineRepository{db: db.group}
}

func (repo *routineRepository) registered(groupID int) []routine.CourseRegistration {
	regs := make([]routine.CourseRegistration, 0)
	for _, row := range repo.db.regs {
		if row.groupID == groupID && row.registered {
			regs = append(regs, row.reg)
		}
	}
	sort.SliceStable(regs, func(i, j int) bool {
		a, b := regs[i], regs[j]
		if a.CourseCode != b.CourseCode {
			return a.CourseCode < b.CourseCode
		}
		if a.CourseID != b.CourseID {
			return a.CourseID < b.CourseID
		}
		return a.StudentID < b.StudentID
	})
	return regs
}

func (repo *routineRepository) withCounts(grp routine.BacklogGroup) routine.BacklogGroup {
	courses := make(map[int]bool)
	students := make(map[int]bool)
	for _, reg := range repo.registered(grp.ID) {
		courses[reg.CourseID] = true
		students[reg.StudentID] = true
	}
	grp.CourseCount = len(courses)
	grp.StudentCount = len(students)
	return grp
}

func (repo *routineRepository) QueryBacklogGroups(_ context.Context) ([]routine.BacklogGroup, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	groups := make([]routine.BacklogGroup, 0, len(repo.db.table))
	for _, grp := range repo.db.table {
		groups = append(groups, repo.withCounts(*grp))
	}
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].CreatedAt.Equal(groups[j].CreatedAt) {
			return groups[i].CreatedAt.After(groups[j].CreatedAt)
		}
		return groups[i].ID > groups[j].ID
	})
	return groups, nil
}

func (repo *routineRepository) GetBacklogGroup(_ context.Context, id int) (routine.BacklogGroup, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if grp, ok := repo.db.table[id]; ok {
		return repo.withCounts(*grp), nil
	}
	return routine.BacklogGroup{}, routine.ErrGroupNotFound
}

func (repo *routineRepository) QueryRegisteredCourses(_ context.Context, groupID int) ([]routine.CourseRegistration, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.registered(groupID), nil
}
