package timesheet

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/AmauryLAPEYRE/TimeTrack/app/routes/session"
	engine "github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *engine.Registry, string) {
	t.Helper()
	registry := engine.NewRegistry(models.DefaultSalaryConfig())
	app := fiber.New()
	app.Use(session.Middleware(registry))
	SetupTimesheetRoutes(app)

	id, _ := registry.Get("")
	return app, registry, id
}

func doJSON(t *testing.T, app *fiber.App, sessionID, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestGenerateMonthAPI(t *testing.T) {
	app, _, id := newTestApp(t)

	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 6})
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	weeks, ok := body["weeks"].([]any)
	require.True(t, ok)
	assert.Len(t, weeks, 5)
	assert.EqualValues(t, 0, body["active_week"])
}

func TestGenerateMonthAPIBadBody(t *testing.T) {
	app, _, id := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/timesheet/month", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetWeeksAPI(t *testing.T) {
	app, _, id := newTestApp(t)
	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 2})
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, id, "GET", "/api/timesheet/weeks", nil)
	require.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.EqualValues(t, 2024, body["year"])
	assert.EqualValues(t, 2, body["month"])
	assert.NotEmpty(t, body["weeks"])
}

func TestEditDayAPI(t *testing.T) {
	app, registry, id := newTestApp(t)
	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 6})
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	for _, e := range []struct {
		field, value string
	}{
		{"morning.start", "09:00"},
		{"morning.end", "12:00"},
	} {
		resp = doJSON(t, app, id, "PUT", "/api/timesheet/weeks/1/days/0", fiber.Map{"field": e.field, "value": e.value})
		require.Equal(t, 200, resp.StatusCode)
	}

	body := decodeBody(t, resp)
	day, ok := body["day"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, day["worked_hours"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, result["total_worked_hours"])

	// The session itself holds the mutation.
	_, s := registry.Get(id)
	week, err := s.Week(1)
	require.NoError(t, err)
	assert.Equal(t, "09:00", week.Days[0].Morning.Start)
}

func TestEditDayAPIRejectsBadTimeFormat(t *testing.T) {
	app, _, id := newTestApp(t)
	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 6})
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, id, "PUT", "/api/timesheet/weeks/1/days/0", fiber.Map{"field": "morning.start", "value": "9h00"})
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()
}

func TestEditDayAPIOutOfRangeIs404(t *testing.T) {
	app, _, id := newTestApp(t)
	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 6})
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, id, "PUT", "/api/timesheet/weeks/99/days/0", fiber.Map{"field": "comment", "value": "x"})
	assert.Equal(t, 404, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, id, "PUT", "/api/timesheet/weeks/0/days/99", fiber.Map{"field": "comment", "value": "x"})
	assert.Equal(t, 404, resp.StatusCode)
	resp.Body.Close()
}

func TestEditDayAPIUnknownFieldIs400(t *testing.T) {
	app, _, id := newTestApp(t)
	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 6})
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, id, "PUT", "/api/timesheet/weeks/0/days/0", fiber.Map{"field": "evening.start", "value": "20:00"})
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()
}

func TestSetActiveWeekAPI(t *testing.T) {
	app, _, id := newTestApp(t)
	resp := doJSON(t, app, id, "POST", "/api/timesheet/month", fiber.Map{"year": 2024, "month": 6})
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, id, "PUT", "/api/timesheet/active-week", fiber.Map{"index": 2})
	require.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.EqualValues(t, 2, body["active_week"])

	resp = doJSON(t, app, id, "PUT", "/api/timesheet/active-week", fiber.Map{"index": 99})
	assert.Equal(t, 404, resp.StatusCode)
	resp.Body.Close()
}

func TestValidateTimeAPI(t *testing.T) {
	app, _, id := newTestApp(t)

	resp := doJSON(t, app, id, "GET", "/api/timesheet/validate-time?value=09:30", nil)
	require.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["valid"])

	resp = doJSON(t, app, id, "GET", "/api/timesheet/validate-time?value=25:00", nil)
	require.Equal(t, 200, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])
}

func TestSessionCookieIsIssuedOnFirstContact(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/timesheet/weeks", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var issued bool
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			issued = true
		}
	}
	assert.True(t, issued)
}
