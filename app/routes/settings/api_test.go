package settings

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
	SetupSettingsRoutes(app)

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

func TestGetSalaryConfigAPI(t *testing.T) {
	app, _, id := newTestApp(t)

	resp := doJSON(t, app, id, "GET", "/api/settings/salary", nil)
	require.Equal(t, 200, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Salary models.SalaryConfig `json:"salary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.DefaultSalaryConfig(), body.Salary)
}

func TestUpdateSalaryConfigAPI(t *testing.T) {
	app, registry, id := newTestApp(t)

	cfg := models.SalaryConfig{
		FirstName:               "Jane",
		LastName:                "Doe",
		Company:                 "Acme",
		ContractualHoursPerDay:  8,
		WeeklyThreshold:         39,
		SecondOvertimeThreshold: 44,
	}
	resp := doJSON(t, app, id, "PUT", "/api/settings/salary", cfg)
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	_, s := registry.Get(id)
	assert.Equal(t, cfg, s.Config())
}

func TestUpdateSalaryConfigAPIValidation(t *testing.T) {
	app, _, id := newTestApp(t)

	bad := []models.SalaryConfig{
		{ContractualHoursPerDay: -1, WeeklyThreshold: 35, SecondOvertimeThreshold: 43},
		{ContractualHoursPerDay: 7, WeeklyThreshold: 35, SecondOvertimeThreshold: 30},
	}
	for _, cfg := range bad {
		resp := doJSON(t, app, id, "PUT", "/api/settings/salary", cfg)
		assert.Equal(t, 400, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestGetAbsenceTypesAPI(t *testing.T) {
	app, _, id := newTestApp(t)

	resp := doJSON(t, app, id, "GET", "/api/settings/absence-types", nil)
	require.Equal(t, 200, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		AbsenceTypes []models.AbsenceType `json:"absence_types"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.AbsenceTypes, body.AbsenceTypes)
}
