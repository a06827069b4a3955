package routine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
)

var (
	// errors
	ErrGroupNotFound = errors.New("backlog group not found")
	ErrUnknownFormat = errors.New("unknown document format")

	NowFunc = time.Now // mockable
)

type (
	// Repository lists backlog groups and their registrations.
	Repository interface {
		QueryBacklogGroups(ctx context.Context) ([]BacklogGroup, error)
		GetBacklogGroup(ctx context.Context, id int) (BacklogGroup, error)
		// QueryRegisteredCourses returns the registered rows of a group only,
		// ordered by course code, course ID then student ID.
		QueryRegisteredCourses(ctx context.Context, groupID int) ([]CourseRegistration, error)
	}

	Service struct {
		repo      Repository
		logger    core.Logger
		title     string
		defFormat string
		renderers map[string]Renderer
	}
)

func NewService(repo Repository, logger core.Logger, conf *core.Config, renderers ...Renderer) *Service {
	svc := &Service{
		repo:      repo,
		logger:    logger,
		title:     conf.Routine.Title,
		defFormat: conf.Routine.DefaultFormat,
		renderers: make(map[string]Renderer, len(renderers)),
	}
	for _, r := range renderers {
		svc.renderers[r.Format()] = r
	}
	return svc
}

// Formats returns the supported document formats.
func (svc *Service) Formats() []string {
	formats := make([]string, 0, len(svc.renderers))
	for f := range svc.renderers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

func (svc *Service) Groups(ctx context.Context) ([]BacklogGroup, error) {
	return svc.repo.QueryBacklogGroups(ctx)
}

func (svc *Service) Group(ctx context.Context, id int) (BacklogGroup, error) {
	return svc.repo.GetBacklogGroup(ctx, id)
}

// Generate builds the exam routine of a backlog group from its registered courses.
func (svc *Service) Generate(ctx context.Context, groupID int) (Routine, error) {
	group, err := svc.repo.GetBacklogGroup(ctx, groupID)
	if err != nil {
		return Routine{}, pkgerrors.Wrap(err, "getting backlog group")
	}
	regs, err := svc.repo.QueryRegisteredCourses(ctx, groupID)
	if err != nil {
		return Routine{}, pkgerrors.Wrap(err, "querying registered courses")
	}

	sch, err := svc.Schedule(regs)
	if err != nil {
		return Routine{}, err
	}
	svc.logger.Debug(fmt.Sprintf("routine generated: group %d (%s)", group.ID, group.Name))
	return Routine{Group: group, Schedule: sch}, nil
}

// Schedule generates the schedule of already filtered registrations.
func (svc *Service) Schedule(regs []CourseRegistration) (Schedule, error) {
	sch, g, err := generate(regs)
	if err != nil {
		if err == ErrNothingToSchedule {
			return Schedule{}, core.NewCodedValidationError(CodeEmptyInput, err)
		}
		return Schedule{}, pkgerrors.Wrap(err, "generating exam schedule")
	}
	svc.logger.Debug(fmt.Sprintf("scheduled %d courses with %d conflicts over %d days", g.Len(), g.EdgeCount(), sch.NumDays))
	return sch, nil
}

// Render regenerates the routine of a group and renders it with the requested dates.
func (svc *Service) Render(ctx context.Context, groupID int, req RenderRequest) (Rendered, error) {
	renderer, err := svc.renderer(req.Format)
	if err != nil {
		return Rendered{}, err
	}
	r, err := svc.Generate(ctx, groupID)
	if err != nil {
		return Rendered{}, err
	}
	return svc.render(renderer, r, req.Dates)
}

// RenderRoutine renders an already generated routine.
func (svc *Service) RenderRoutine(r Routine, req RenderRequest) (Rendered, error) {
	renderer, err := svc.renderer(req.Format)
	if err != nil {
		return Rendered{}, err
	}
	return svc.render(renderer, r, req.Dates)
}

func (svc *Service) renderer(format string) (Renderer, error) {
	if format == "" {
		format = svc.defFormat
	}
	renderer, ok := svc.renderers[format]
	if !ok {
		return nil, core.NewCodedValidationError(CodeUnknownFormat, ErrUnknownFormat, core.FieldError{
			Field: "format",
			Error: fmt.Sprintf("%s %q", ErrUnknownFormat.Error(), format),
		})
	}
	return renderer, nil
}

func (svc *Service) render(renderer Renderer, r Routine, dates []string) (Rendered, error) {
	doc, err := NewDocument(svc.title, r, dates, NowFunc())
	if err != nil {
		return Rendered{}, err
	}

	var buf bytes.Buffer
	if err = renderer.Render(&buf, doc); err != nil {
		return Rendered{}, pkgerrors.Wrapf(err, "rendering %s document", renderer.Format())
	}

	filename := "backlog-routine." + renderer.Format()
	if r.Group.ID != 0 {
		filename = fmt.Sprintf("backlog-routine-%d.%s", r.Group.ID, renderer.Format())
	}
	return Rendered{
		Format:      renderer.Format(),
		ContentType: renderer.ContentType(),
		Filename:    filename,
		Body:        buf.Bytes(),
	}, nil
}

// ScheduleRequest carries registrations posted for scheduling.
type ScheduleRequest struct {
	Registrations []CourseRegistration `json:"registrations" validate:"dive"`
}

func (sr *ScheduleRequest) Validate(validate *validator.Validate) error {
	for i := range sr.Registrations {
		sr.Registrations[i].CourseCode = core.CleanString(sr.Registrations[i].CourseCode)
	}
	return validate.Struct(sr)
}

// RenderRequest holds one date per exam day (dates[i] is day i) and the document format.
type RenderRequest struct {
	Dates  []string `json:"dates" validate:"dive,omitempty,examdate"`
	Format string   `json:"format" validate:"omitempty,alpha"`
}

func (rr *RenderRequest) Validate(validate *validator.Validate) error {
	rr.Dates = core.CleanStrings(rr.Dates)
	rr.Format = core.CleanString(rr.Format, true /* lower */)
	return validate.Struct(rr)
}
