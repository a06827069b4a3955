package testutil

import (
	"database/sql"
	"testing"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/storage/database"
)

var tables = []string{"backlog_registrations", "backlog_groups", "students", "courses", "departments"}

// PrepareDB opens the test database, migrates it and empties every table.
// The test is skipped when no database is reachable.
func PrepareDB(t *testing.T) *sql.DB {
	t.Helper()

	t.Setenv("ENV", "TEST")
	conf := core.NewConfig()

	db, err := database.Open(conf)
	if err != nil {
		t.Skipf("PrepareDB(): database unavailable: %v", err)
	}
	if err = database.Ping(db, 3); err != nil {
		_ = db.Close()
		t.Skipf("PrepareDB(): database unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	ResetDB(t, db)
	return db
}

func ResetDB(t *testing.T, db core.DBExecutor) {
	t.Helper()
	for _, tbl := range tables {
		if _, err := db.Exec("TRUNCATE TABLE " + tbl + " RESTART IDENTITY CASCADE"); err != nil {
			t.Fatalf("ResetDB() failed: %v", err)
		}
	}
}
