package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

const (
	selectGroups = `
SELECT g.id, g.name, g.session, g.created_at,
       COUNT(DISTINCT r.course_id) AS course_count,
       COUNT(DISTINCT r.student_id) AS student_count
FROM backlog_groups g
LEFT JOIN backlog_registrations r ON r.backlog_group_id = g.id AND r.registered
`
	groupBy = `GROUP BY g.id, g.name, g.session, g.created_at`

	selectRegisteredCourses = `
SELECT r.student_id, r.course_id, c.code AS course_code
FROM backlog_registrations r
JOIN courses c ON c.id = r.course_id
WHERE r.backlog_group_id = $1 AND r.registered
ORDER BY c.code, c.id, r.student_id`
)

type groupRow struct {
	ID           int         `db:"id"`
	Name         string      `db:"name"`
	Session      null.String `db:"session"`
	CreatedAt    time.Time   `db:"created_at"`
	CourseCount  int         `db:"course_count"`
	StudentCount int         `db:"student_count"`
}

func (row groupRow) group() routine.BacklogGroup {
	return routine.BacklogGroup{
		ID:           row.ID,
		Name:         row.Name,
		Session:      row.Session.String,
		CourseCount:  row.CourseCount,
		StudentCount: row.StudentCount,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

type routineRepository struct {
	db *sqlx.DB
}

var _ routine.Repository = (*routineRepository)(nil) // interface compliance check

func NewRoutineRepository(db *sql.DB) *routineRepository {
	return &routineRepository{db: sqlx.NewDb(db, "postgres")}
}

// trapNoRowsErr maps psql "no rows" err to routine.ErrGroupNotFound
func (repo routineRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return routine.ErrGroupNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo routineRepository) QueryBacklogGroups(ctx context.Context) ([]routine.BacklogGroup, error) {
	var rows []groupRow
	q := selectGroups + groupBy + "\nORDER BY g.created_at DESC, g.id DESC"
	if err := repo.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "selecting backlog groups")
	}

	groups := make([]routine.BacklogGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, row.group())
	}
	return groups, nil
}

func (repo routineRepository) GetBacklogGroup(ctx context.Context, id int) (routine.BacklogGroup, error) {
	var row groupRow
	q := selectGroups + "WHERE g.id = $1\n" + groupBy
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		return routine.BacklogGroup{}, repo.trapNoRowsErr(err, "getting backlog group")
	}
	return row.group(), nil
}

func (repo routineRepository) QueryRegisteredCourses(ctx context.Context, groupID int) ([]routine.CourseRegistration, error) {
	regs := make([]routine.CourseRegistration, 0)
	if err := repo.db.SelectContext(ctx, &regs, selectRegisteredCourses, groupID); err != nil {
		return nil, errors.Wrap(err, "selecting registered courses")
	}
	return regs, nil
}
