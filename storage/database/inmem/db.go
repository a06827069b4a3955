package inmemdb

import (
	"sync"
	"time"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

type registrationRow struct {
	groupID    int
	reg        routine.CourseRegistration
	registered bool
}

type groupTable struct {
	mutex sync.RWMutex
	pk    int
	table map[int]*routine.BacklogGroup
	regs  []registrationRow
}

// DB is an in-memory store of backlog groups and their registrations.
type DB struct {
	group *groupTable
}

func Open() *DB {
	return &DB{
		group: &groupTable{table: make(map[int]*routine.BacklogGroup)},
	}
}

// CreateGroup inserts a backlog group; ID and CreatedAt are set when zero.
func (db *DB) CreateGroup(grp routine.BacklogGroup) routine.BacklogGroup {
	t := db.group
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if grp.ID == 0 {
		t.pk++
		grp.ID = t.pk
	} else if grp.ID > t.pk {
		t.pk = grp.ID
	}
	if grp.CreatedAt.IsZero() {
		grp.CreatedAt = time.Now()
	}
	grp.CreatedAt = grp.CreatedAt.UTC()
	grp.CourseCount, grp.StudentCount = 0, 0
	t.table[grp.ID] = &grp
	return grp
}

// AddRegistration records a student's course registration in a group.
// Unregistered rows are stored but never scheduled.
func (db *DB) AddRegistration(groupID int, reg routine.CourseRegistration, registered bool) {
	t := db.group
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.regs = append(t.regs, registrationRow{groupID: groupID, reg: reg, registered: registered})
}
