package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return date
}
