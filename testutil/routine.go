package testutil

import (
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
)

func insertID(t *testing.T, db core.DBExecutor, q string, args ...interface{}) int {
	t.Helper()
	var id int
	if err := db.QueryRow(q, args...).Scan(&id); err != nil {
		t.Fatalf("insertID() failed: %v", err)
	}
	return id
}

func CreateCourse(t *testing.T, db core.DBExecutor, code string) int {
	return insertID(t, db, `INSERT INTO courses (code) VALUES ($1) RETURNING id`, code)
}

func CreateStudent(t *testing.T, db core.DBExecutor, roll, name string) int {
	return insertID(t, db, `INSERT INTO students (roll, name) VALUES ($1, $2) RETURNING id`, roll, name)
}

func CreateGroup(t *testing.T, db core.DBExecutor, name, session string, createdAt ...time.Time) int {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	return insertID(
		t, db,
		`INSERT INTO backlog_groups (name, session, created_at) VALUES ($1, $2, $3) RETURNING id`,
		name, null.NewString(session, session != ""), tstamp,
	)
}

func Register(t *testing.T, db core.DBExecutor, groupID, studentID, courseID int, registered bool) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO backlog_registrations (backlog_group_id, student_id, course_id, registered) VALUES ($1, $2, $3, $4)`,
		groupID, studentID, courseID, registered,
	)
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
}
