package rendersvc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

// TextRenderer renders a plain text table, for terminals.
type TextRenderer struct{}

var _ routine.Renderer = TextRenderer{}

func (TextRenderer) Format() string      { return "txt" }
func (TextRenderer) ContentType() string { return "text/plain; charset=UTF-8" }

func (TextRenderer) Render(w io.Writer, doc routine.Document) error {
	heading := doc.Title
	if doc.Group.Name != "" {
		heading += " - " + doc.Group.Name
		if doc.Group.Session != "" {
			heading += " (" + doc.Group.Session + ")"
		}
	}
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Day", "Date", "Courses"})
	table.SetAutoWrapText(false)
	for _, day := range doc.Days {
		table.Append([]string{strconv.Itoa(day.Number()), day.Date, strings.Join(day.CourseCodes(), ", ")})
	}
	table.Render()
	return nil
}
