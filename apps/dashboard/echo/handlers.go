package dashapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mzalendo/shule/apps"
	"github.com/mzalendo/shule/core/report"
)

var errInvalidID = echo.NewHTTPError(http.StatusBadRequest, "invalid id")

type dashboardAPI struct {
	registry *apps.Registry
}

func registerDashboardAPI(g *echo.Group, registry *apps.Registry) {
	api := dashboardAPI{registry: registry}

	g.GET("/dashboard", api.dashboard)
	g.GET("/teacher-load", api.teacherLoad)
	g.GET("/subjects/:id/report", api.subjectReport)
	g.GET("/subjects/:id/report.csv", api.subjectReportCSV)
	g.GET("/students/:id/report", api.studentReport)
}

// dashboard serves the headline stats plus the per-subject averages summary.
func (api *dashboardAPI) dashboard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	stats, err := api.registry.Reports.Stats(reqCtx)
	if err != nil {
		return err
	}
	summary, err := api.registry.Reports.Summary(reqCtx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"stats":    stats,
		"subjects": summary,
	})
}

func (api *dashboardAPI) teacherLoad(ctx echo.Context) error {
	load, err := api.registry.Subjects.TeacherLoad(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, load)
}

func (api *dashboardAPI) subjectReport(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errInvalidID
	}
	rep, err := api.registry.Reports.SubjectReportByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rep)
}

func (api *dashboardAPI) subjectReportCSV(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errInvalidID
	}
	rep, err := api.registry.Reports.SubjectReportByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.Subject.Code+`.csv"`)
	res.WriteHeader(http.StatusOK)
	return report.WriteSubjectCSV(res, rep)
}

func (api *dashboardAPI) studentReport(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errInvalidID
	}
	rep, err := api.registry.Reports.StudentFull(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rep)
}
