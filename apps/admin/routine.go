package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

// routine prints the routine of a backlog group (or of a CSV of registrations).
// With dates, the routine is rendered in `format` instead.
func (cli *commandLine) routine(groupID int, csvPath string, dates []string, format string) error {
	var r routine.Routine
	var err error
	if csvPath != "" {
		r, err = cli.routineFromCSV(csvPath)
	} else {
		r, err = cli.routineSvc.Generate(context.Background(), groupID)
	}
	if err != nil {
		return err
	}

	if len(dates) == 0 {
		cli.printSummary(r)
		return nil
	}

	req := routine.RenderRequest{Dates: dates, Format: format}
	if err = req.Validate(cli.validate); err != nil {
		return err
	}
	out, err := cli.routineSvc.RenderRoutine(r, req)
	if err != nil {
		return err
	}
	_, err = cli.out.Write(out.Body)
	return err
}

func (cli *commandLine) routineFromCSV(path string) (routine.Routine, error) {
	f, err := os.Open(path)
	if err != nil {
		return routine.Routine{}, errors.Wrap(err, "opening registrations")
	}
	defer func() { _ = f.Close() }()

	var regs []routine.CourseRegistration
	if err = gocsv.UnmarshalFile(f, &regs); err != nil {
		return routine.Routine{}, errors.Wrapf(err, "reading %s", path)
	}

	req := routine.ScheduleRequest{Registrations: regs}
	if err = req.Validate(cli.validate); err != nil {
		return routine.Routine{}, err
	}
	sch, err := cli.routineSvc.Schedule(req.Registrations)
	if err != nil {
		return routine.Routine{}, err
	}
	return routine.Routine{
		Group:    routine.BacklogGroup{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))},
		Schedule: sch,
	}, nil
}

func (cli *commandLine) printSummary(r routine.Routine) {
	sch := r.Schedule
	title := color.New(color.Bold, color.FgCyan)
	_, _ = title.Fprintf(cli.out, "%s: %d courses over %d exam days\n", r.Group.Name, sch.CourseCount(), sch.NumDays)

	table := tablewriter.NewWriter(cli.out)
	table.SetHeader([]string{"Day", "Courses", "Count"})
	table.SetAutoWrapText(false)
	for day := 0; day < sch.NumDays; day++ {
		codes := make([]string, 0, len(sch.ExamDays[day]))
		for _, c := range sch.ExamDays[day] {
			codes = append(codes, c.Code)
		}
		table.Append([]string{strconv.Itoa(day + 1), strings.Join(codes, ", "), strconv.Itoa(len(codes))})
	}
	table.Render()

	_, _ = color.New(color.FgYellow).Fprintln(cli.out, "Pass one -date per exam day to render the routine.")
}
