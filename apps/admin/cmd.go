package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf       *core.Config
	db         *sql.DB
	routineSvc *routine.Service
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// validationMessages returns "field: message" lines for errors the user can fix.
func (cli *commandLine) validationMessages(err error) ([]string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, vErr := range verrs {
			msgs = append(msgs, vErr.Field()+": "+vErr.Translate(cli.translator))
		}
		return msgs, true
	}

	var verr *core.ValidationError
	if errors.As(err, &verr) {
		if len(verr.Fields) == 0 {
			return []string{verr.Error()}, true
		}
		msgs := make([]string, 0, len(verr.Fields))
		for _, fErr := range verr.Fields {
			msgs = append(msgs, fErr.Field+": "+fErr.Error)
		}
		return msgs, true
	}
	return nil, false
}

func (cli *commandLine) printUsage() {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]                        - run a goose migration command (up, down, status, ...)")
	_, _ = fmt.Fprintln(cli.out, "  routine -group ID|-csv FILE [-date DATE ...]  - generate a backlog exam routine; render it when dates are given")
	_, _ = fmt.Fprintln(cli.out, "  token -username NAME -role ROLE [-role ...]   - issue an API token")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "routine":
		routineCmd := cli.newFlagSet("routine")
		groupID := routineCmd.Int("group", 0, "The backlog group to schedule.")
		csvPath := routineCmd.String("csv", "", "A CSV file of registrations (student_id,course_id,course_code) to schedule instead of a group.")
		format := routineCmd.String("format", "txt", "The document format when dates are given: txt, csv or html.")
		var dates stringList
		routineCmd.Var(&dates, "date", "The date (YYYY-MM-DD) of the next exam day. Repeat once per day.")

		if err := parseFlags(routineCmd, args[2:]); err != nil {
			return err
		}
		if (*groupID == 0) == (*csvPath == "") {
			routineCmd.Usage()
			return errHelp
		}
		return cli.routine(*groupID, *csvPath, dates, *format)

	case "token":
		tokenCmd := cli.newFlagSet("token")
		uname := tokenCmd.String("username", "", "The user's username.")
		email := tokenCmd.String("email", "", "The user's email.")
		var roles stringList
		tokenCmd.Var(&roles, "role", "A role of the user. Repeat for several roles.")

		if err := parseFlags(tokenCmd, args[2:]); err != nil {
			return err
		}
		if *uname == "" || len(roles) == 0 {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*uname, *email, roles)

	default:
		cli.printUsage()
		return errHelp
	}
}
