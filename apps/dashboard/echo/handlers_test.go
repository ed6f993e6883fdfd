package dashapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mzalendo/shule/apps"
	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/report"
	logsvc "github.com/mzalendo/shule/services/logger"
)

func newTestServer(t *testing.T) Server {
	t.Helper()

	conf := &core.Config{TestMode: true}
	conf.API.UseMocks = true
	registry, err := apps.NewRegistry(conf, logsvc.NewNopLogger())
	if err != nil {
		t.Fatalf("apps.NewRegistry(): %v", err)
	}

	return NewServer(&Options{
		DisableReqLogs: true,
		Logger:         logsvc.NewNopLogger(),
		Registry:       registry,
	})
}

func doRequest(app Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestServer_home(t *testing.T) {
	app := newTestServer(t)

	rec := doRequest(app, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Shule dashboard!", rec.Body.String())
}

func TestServer_dashboard(t *testing.T) {
	app := newTestServer(t)

	rec := doRequest(app, http.MethodGet, "/v1/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stats    report.Stats       `json:"stats"`
		Subjects []report.SummaryRow `json:"subjects"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, report.Stats{TotalStudents: 4, TotalSubjects: 3}, body.Stats)
	if assert.Len(t, body.Subjects, 3) {
		assert.Equal(t, "MAT-101", body.Subjects[0].Subject.Code)
		assert.Equal(t, 3, body.Subjects[0].Enrolled)
	}
}

func TestServer_subjectReport(t *testing.T) {
	app := newTestServer(t)

	t.Run("ok", func(t *testing.T) {
		rec := doRequest(app, http.MethodGet, "/v1/subjects/1/report")
		assert.Equal(t, http.StatusOK, rec.Code)

		var rep report.SubjectReport
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
		assert.Equal(t, "MAT-101", rep.Subject.Code)
		assert.Len(t, rep.Rows, 3)
		assert.Equal(t, 3, rep.Graded)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := doRequest(app, http.MethodGet, "/v1/subjects/lol/report")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "invalid id"}`, rec.Body.String())
	})
}

func TestServer_subjectReportCSV(t *testing.T) {
	app := newTestServer(t)

	rec := doRequest(app, http.MethodGet, "/v1/subjects/1/report.csv")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="MAT-101.csv"`, rec.Header().Get(echo.HeaderContentDisposition))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if assert.Len(t, lines, 4) {
		assert.Equal(t, "enrollment_code,first_name,last_name,email,grade", lines[0])
		assert.Equal(t, "ENR-001,Juan,Pérez,juan@school.com,8.5", lines[1])
	}
}

func TestServer_studentReport(t *testing.T) {
	app := newTestServer(t)

	rec := doRequest(app, http.MethodGet, "/v1/students/1/report")
	assert.Equal(t, http.StatusOK, rec.Code)

	var rep report.StudentFull
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "Juan", rep.Student.FirstName)
	assert.Len(t, rep.Subjects, 2)
}

func TestServer_teacherLoad(t *testing.T) {
	app := newTestServer(t)

	rec := doRequest(app, http.MethodGet, "/v1/teacher-load")
	assert.Equal(t, http.StatusOK, rec.Code)
}
