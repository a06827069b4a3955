package echoapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/user"
)

type routineApi struct {
	svc      *routine.Service
	validate *validator.Validate
}

func registerRoutineAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *routine.Service, validate *validator.Validate) {
	api := routineApi{
		svc:      svc,
		validate: validate,
	}

	bg := g.Group("/backlog-groups", jwt, staffMiddleware)
	bg.GET("", api.queryGroups)
	bg.GET("/:id", api.retrieveGroup)
	bg.GET("/:id/routine", api.generate)
	// publishing is the job of the controller of examinations
	bg.POST("/:id/routine/document", api.document, adminMiddleware(user.RoleAdminController, user.RoleAdmin))

	g.POST("/routines", api.schedule, jwt, adminMiddleware())
}

func groupID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		return 0, errHttpNotFound
	}
	return id, nil
}

func trapNotFound(err error, msg string) error {
	if errors.Cause(err) == routine.ErrGroupNotFound {
		return errHttpNotFound
	}
	return errors.Wrap(err, msg)
}

// Handlers

func (api *routineApi) queryGroups(ctx echo.Context) error {
	groups, err := api.svc.Groups(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying backlog groups")
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (api *routineApi) retrieveGroup(ctx echo.Context) error {
	id, err := groupID(ctx)
	if err != nil {
		return err
	}
	grp, err := api.svc.Group(ctx.Request().Context(), id)
	if err != nil {
		return trapNotFound(err, "getting backlog group")
	}
	return ctx.JSON(http.StatusOK, grp)
}

func (api *routineApi) generate(ctx echo.Context) error {
	id, err := groupID(ctx)
	if err != nil {
		return err
	}
	r, err := api.svc.Generate(ctx.Request().Context(), id)
	if err != nil {
		return trapNotFound(err, "generating routine")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *routineApi) document(ctx echo.Context) error {
	id, err := groupID(ctx)
	if err != nil {
		return err
	}

	var data routine.RenderRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RenderRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	out, err := api.svc.Render(ctx.Request().Context(), id, data)
	if err != nil {
		return trapNotFound(err, "rendering routine")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return ctx.Blob(http.StatusOK, out.ContentType, out.Body)
}

func (api *routineApi) schedule(ctx echo.Context) error {
	var data routine.ScheduleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ScheduleRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sch, err := api.svc.Schedule(data.Registrations)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sch)
}
