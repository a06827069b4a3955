package routine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
)

func testRoutine() Routine {
	return Routine{
		Group: BacklogGroup{ID: 3, Name: "Even 2026"},
		Schedule: Schedule{
			NumDays: 2,
			ExamDays: map[int][]Course{
				0: {{12, "MATH 1201"}, {11, "CSE 1101"}},
				1: {{13, "PHY 1101"}},
			},
		},
	}
}

func validationError(t *testing.T, err error) *core.ValidationError {
	t.Helper()
	var verr *core.ValidationError
	require.True(t, errors.As(err, &verr), "want a validation error, got %v", err)
	return verr
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2026, 10, 1, 15, 4, 0, 0, time.FixedZone("BST", 6*3600))

	doc, err := NewDocument("Routine", testRoutine(), []string{" 2026-11-02 ", "2026-11-04"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Routine", doc.Title)
	assert.Equal(t, 3, doc.Group.ID)
	assert.Equal(t, now.UTC(), doc.GeneratedAt)
	assert.Equal(t, []ExamDay{
		{Index: 0, Date: "2026-11-02", Courses: []Course{{11, "CSE 1101"}, {12, "MATH 1201"}}},
		{Index: 1, Date: "2026-11-04", Courses: []Course{{13, "PHY 1101"}}},
	}, doc.Days)
	assert.Equal(t, 2, doc.Days[1].Number())
	assert.Equal(t, []string{"CSE 1101", "MATH 1201"}, doc.Days[0].CourseCodes())
}

func TestNewDocument_leavesScheduleUntouched(t *testing.T) {
	r := testRoutine()
	_, err := NewDocument("Routine", r, []string{"2026-11-02", "2026-11-04"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "MATH 1201", r.Schedule.ExamDays[0][0].Code)
}

func TestNewDocument_errors(t *testing.T) {
	tests := []struct {
		name    string
		dates   []string
		wantErr  error
		wantCode string
		wantMsg  string
	}{
		{"no dates", nil, ErrMissingDate, CodeMissingDate, "please fill in the date of every exam day (missing: day 1, 2)"},
		{"one date short", []string{"2026-11-02"}, ErrMissingDate, CodeMissingDate, "please fill in the date of every exam day (missing: day 2)"},
		{"blank date", []string{"  ", "2026-11-04"}, ErrMissingDate, CodeMissingDate, "please fill in the date of every exam day (missing: day 1)"},
		{"too many dates", []string{"2026-11-02", "2026-11-04", "2026-11-06"}, ErrTooManyDates, CodeTooManyDates, "expected 2 dates, got 3"},
		{
			"same date twice", []string{"2026-11-02", "2026-11-02"}, ErrDuplicateDate, CodeDuplicateDate,
			"two exam days cannot share the same date (day 1 and day 2: 2026-11-02)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewDocument("Routine", testRoutine(), tt.dates, time.Now())
			assert.True(t, errors.Is(err, tt.wantErr), "err = %v; want %v", err, tt.wantErr)
			assert.Equal(t, Document{}, doc)
			verr := validationError(t, err)
			assert.Equal(t, tt.wantCode, verr.Code)
			assert.Equal(t, []core.FieldError{{Field: "dates", Error: tt.wantMsg}}, verr.Fields)
		})
	}
}
