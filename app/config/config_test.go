package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReadsEnvironmentOnce(t *testing.T) {
	t.Setenv("FIRST_NAME", "Jane")
	t.Setenv("DEFAULT_WEEKLY_THRESHOLD", "39")
	t.Setenv("TIMETRACK_ADDR", ":8080")

	cfg := Get()
	require.NotNil(t, cfg)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "Europe/Paris", cfg.Timezone)
	assert.Equal(t, "Jane", cfg.DefaultSalary.FirstName)
	assert.Equal(t, 39.0, cfg.DefaultSalary.WeeklyThreshold)
	assert.Equal(t, 7.0, cfg.DefaultSalary.ContractualHoursPerDay)

	// Later env changes never reach the cached instance.
	t.Setenv("TIMETRACK_ADDR", ":9999")
	assert.Same(t, cfg, Get())
	assert.Equal(t, ":8080", Get().ListenAddr)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TIMETRACK_TEST_STR", "value")
	assert.Equal(t, "value", getEnv("TIMETRACK_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnv("TIMETRACK_TEST_MISSING", "fallback"))

	t.Setenv("TIMETRACK_TEST_FLOAT", "36.5")
	assert.Equal(t, 36.5, getEnvAsFloat("TIMETRACK_TEST_FLOAT", 1))
	t.Setenv("TIMETRACK_TEST_FLOAT", "not-a-number")
	assert.Equal(t, 1.0, getEnvAsFloat("TIMETRACK_TEST_FLOAT", 1))
}
