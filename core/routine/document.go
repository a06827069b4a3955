package routine

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
)

var (
	// errors
	ErrMissingDate   = errors.New("please fill in the date of every exam day")
	ErrTooManyDates  = errors.New("more dates than exam days")
	ErrDuplicateDate = errors.New("two exam days cannot share the same date")
)

// validation error codes
const (
	CodeEmptyInput    = "empty_input"
	CodeMissingDate   = "missing_date"
	CodeTooManyDates  = "too_many_dates"
	CodeDuplicateDate = "duplicate_date"
	CodeUnknownFormat = "unknown_format"
)

// ExamDay is one day of a Document.
type ExamDay struct {
	Index   int      `json:"day_index"`
	Date    string   `json:"date"`
	Courses []Course `json:"courses"`
}

// Number is the 1-based day number printed on documents.
func (d ExamDay) Number() int { return d.Index + 1 }

func (d ExamDay) CourseCodes() []string {
	codes := make([]string, 0, len(d.Courses))
	for _, c := range d.Courses {
		codes = append(codes, c.Code)
	}
	return codes
}

// Document is a Routine with a calendar date attached to every exam day.
type Document struct {
	Title       string
	Group       BacklogGroup
	Days        []ExamDay
	GeneratedAt time.Time
}

// NewDocument attaches dates[i] to day i of the routine's schedule.
// Every day needs its own, non-blank date.
func NewDocument(title string, r Routine, dates []string, generatedAt time.Time) (Document, error) {
	sch := r.Schedule

	var missing []string
	for day := 0; day < sch.NumDays; day++ {
		if day >= len(dates) || strings.TrimSpace(dates[day]) == "" {
			missing = append(missing, fmt.Sprintf("%d", day+1))
		}
	}
	if len(missing) > 0 {
		return Document{}, core.NewCodedValidationError(CodeMissingDate, ErrMissingDate, core.FieldError{
			Field: "dates",
			Error: fmt.Sprintf("%s (missing: day %s)", ErrMissingDate.Error(), strings.Join(missing, ", ")),
		})
	}
	if len(dates) > sch.NumDays {
		return Document{}, core.NewCodedValidationError(CodeTooManyDates, ErrTooManyDates, core.FieldError{
			Field: "dates",
			Error: fmt.Sprintf("expected %d dates, got %d", sch.NumDays, len(dates)),
		})
	}

	doc := Document{
		Title:       title,
		Group:       r.Group,
		Days:        make([]ExamDay, 0, sch.NumDays),
		GeneratedAt: generatedAt.UTC(),
	}
	usedOn := make(map[string]int, sch.NumDays)
	for day := 0; day < sch.NumDays; day++ {
		date := strings.TrimSpace(dates[day])
		if prev, ok := usedOn[date]; ok {
			return Document{}, core.NewCodedValidationError(CodeDuplicateDate, ErrDuplicateDate, core.FieldError{
				Field: "dates",
				Error: fmt.Sprintf("%s (day %d and day %d: %s)", ErrDuplicateDate.Error(), prev+1, day+1, date),
			})
		}
		usedOn[date] = day

		courses := make([]Course, len(sch.ExamDays[day]))
		copy(courses, sch.ExamDays[day])
		sort.SliceStable(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })

		doc.Days = append(doc.Days, ExamDay{Index: day, Date: date, Courses: courses})
	}
	return doc, nil
}

// Renderer writes a Document in one output format.
type Renderer interface {
	Format() string // e.g. "html"; also the file extension
	ContentType() string
	Render(w io.Writer, doc Document) error
}

// Rendered is a rendered Document.
type Rendered struct {
	Format      string
	ContentType string
	Filename    string
	Body        []byte
}
