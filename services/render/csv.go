package rendersvc

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

// CSVRow is one course exam of a routine.
type CSVRow struct {
	Date       string `csv:"date"`
	Day        int    `csv:"day"`
	CourseCode string `csv:"course_code"`
	CourseID   int    `csv:"course_id"`
}

// CSVRenderer renders one row per course, grouped by day.
type CSVRenderer struct{}

var _ routine.Renderer = CSVRenderer{}

func (CSVRenderer) Format() string      { return "csv" }
func (CSVRenderer) ContentType() string { return "text/csv; charset=UTF-8" }

func (CSVRenderer) Render(w io.Writer, doc routine.Document) error {
	rows := make([]*CSVRow, 0)
	for _, day := range doc.Days {
		for _, c := range day.Courses {
			rows = append(rows, &CSVRow{Date: day.Date, Day: day.Number(), CourseCode: c.Code, CourseID: c.ID})
		}
	}
	return gocsv.Marshal(&rows, w)
}
