package rendersvc

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

func testDocument(t *testing.T) routine.Document {
	r := routine.Routine{
		Group: routine.BacklogGroup{ID: 4, Name: "Odd Semester Backlog", Session: "2025-26"},
		Schedule: routine.Schedule{
			NumDays: 2,
			ExamDays: map[int][]routine.Course{
				0: {{ID: 12, Code: "CSE 2101"}, {ID: 11, Code: "CSE 1101"}},
				1: {{ID: 13, Code: "MATH 1201"}},
			},
		},
	}
	doc, err := routine.NewDocument("Backlog Examination Routine", r, []string{"2026-11-02", "2026-11-04"},
		time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return doc
}

func TestCSVRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVRenderer{}.Render(&buf, testDocument(t)))

	want := "date,day,course_code,course_id\n" +
		"2026-11-02,1,CSE 1101,11\n" +
		"2026-11-02,1,CSE 2101,12\n" +
		"2026-11-04,2,MATH 1201,13\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextRenderer{}.Render(&buf, testDocument(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Backlog Examination Routine - Odd Semester Backlog (2025-26)\n"))
	assert.Contains(t, out, "CSE 1101, CSE 2101")
	assert.Contains(t, out, "2026-11-04")
	assert.Contains(t, out, "MATH 1201")
}

func TestHTMLRenderer_Render(t *testing.T) {
	r, err := NewHTMLRenderer(true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testDocument(t)))

	out := buf.String()
	assert.Contains(t, out, "<title>Backlog Examination Routine - Odd Semester Backlog</title>")
	assert.Contains(t, out, "<h2>Odd Semester Backlog (2025-26)</h2>")
	assert.Contains(t, out, "<td>2026-11-02</td>")
	assert.Contains(t, out, "<td>CSE 1101, CSE 2101</td>")
	assert.Contains(t, out, "<td>MATH 1201</td>")
	assert.Contains(t, out, "Generated 2026-10-17 09:30 UTC")
}

func TestRenderers_metadata(t *testing.T) {
	html, err := NewHTMLRenderer(false)
	require.NoError(t, err)

	tests := []struct {
		renderer        routine.Renderer
		wantFormat      string
		wantContentType string
	}{
		{renderer: html, wantFormat: "html", wantContentType: "text/html; charset=UTF-8"},
		{renderer: CSVRenderer{}, wantFormat: "csv", wantContentType: "text/csv; charset=UTF-8"},
		{renderer: TextRenderer{}, wantFormat: "txt", wantContentType: "text/plain; charset=UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.wantFormat, func(t *testing.T) {
			assert.Equal(t, tt.wantFormat, tt.renderer.Format())
			assert.Equal(t, tt.wantContentType, tt.renderer.ContentType())
		})
	}
}
