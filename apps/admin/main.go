package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/user"
	logsvc "github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/services/logger"
	rendersvc "github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/services/render"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/storage/database"
	sqlxrepos "github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB (connects on first use)
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}

	htmlRenderer, err := rendersvc.NewHTMLRenderer(conf.Debug)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up renderers: %v", err), err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	routine.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		conf: conf,
		db:   db,
		routineSvc: routine.NewService(
			sqlxrepos.NewRoutineRepository(db),
			logger,
			conf,
			htmlRenderer, rendersvc.CSVRenderer{}, rendersvc.TextRenderer{},
		),
		validate:   validate,
		translator: translator,
		out:        os.Stdout,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if msgs, ok := cli.validationMessages(err); ok {
			red := color.New(color.FgRed)
			for _, msg := range msgs {
				_, _ = red.Fprintln(os.Stderr, msg)
			}
		} else if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}
