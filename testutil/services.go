package testutil

import (
	"io"
	"log"
	"testing"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/services/logger"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/services/render"
)

// NewConfig returns the TEST config.
func NewConfig(t *testing.T) *core.Config {
	t.Setenv("ENV", "TEST")
	return core.NewConfig()
}

// NewLogger returns a logger that neither prints nor reports to rollbar.
func NewLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}

// NewRoutineService returns a routine service rendering html, csv and txt documents.
func NewRoutineService(t *testing.T, repo routine.Repository, conf *core.Config) *routine.Service {
	t.Helper()
	htmlRenderer, err := rendersvc.NewHTMLRenderer(true /* strict */)
	if err != nil {
		t.Fatalf("NewRoutineService() failed: %v", err)
	}
	return routine.NewService(
		repo, NewLogger(conf), conf,
		htmlRenderer, rendersvc.CSVRenderer{}, rendersvc.TextRenderer{},
	)
}
