package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	engine "github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *engine.Session, string) {
	t.Helper()
	registry := engine.NewRegistry(models.DefaultSalaryConfig())
	app := fiber.New()
	app.Use(session.Middleware(registry))
	SetupExportRoutes(app)

	id, s := registry.Get("")
	return app, s, id
}

func get(t *testing.T, app *fiber.App, sessionID, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestExportWeekAPI(t *testing.T) {
	app, s, id := newTestApp(t)
	require.NotEmpty(t, s.GenerateMonth(2024, 6))
	require.NoError(t, s.SetActiveWeek(1))

	resp := get(t, app, id, "/api/export/week")
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "week23.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Week 23"}, f.GetSheetList())
}

func TestExportMonthAPI(t *testing.T) {
	app, s, id := newTestApp(t)
	require.NotEmpty(t, s.GenerateMonth(2024, 6))

	resp := get(t, app, id, "/api/export/month")
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "June.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 6)
	assert.Equal(t, "Monthly Recap", sheets[0])
	for _, name := range sheets[1:] {
		assert.True(t, strings.HasPrefix(name, "Week "), "sheet %q", name)
	}
}

func TestExportWithoutMonthIs400(t *testing.T) {
	app, _, id := newTestApp(t)

	for _, target := range []string{"/api/export/week", "/api/export/month"} {
		resp := get(t, app, id, target)
		assert.Equal(t, 400, resp.StatusCode, target)
		resp.Body.Close()
	}
}
