package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"VCardVersion", config.VCardVersion},
		{"RouteICS", config.RouteICS},
		{"RouteVCard", config.RouteVCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default geometry stays inside the accepted ranges.
func TestDefaults_Sanity(t *testing.T) {
	assert.GreaterOrEqual(t, config.DefaultItemHeight, config.MinItemHeight)
	assert.LessOrEqual(t, config.DefaultItemHeight, config.MaxItemHeight)
	assert.GreaterOrEqual(t, config.DefaultVisibleRows, config.MinVisibleRows)
	assert.LessOrEqual(t, config.DefaultVisibleRows, config.MaxVisibleRows)
	assert.Equal(t, 1, config.DefaultVisibleRows%2, "An odd row count keeps the selected row centred")

	assert.Less(t, config.DefaultYearFrom, config.DefaultYearTo)
	assert.Greater(t, config.InactiveOpacity, 0.0)
	assert.Less(t, config.InactiveOpacity, 1.0)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second)
	assert.Greater(t, config.SettleDelay, 0*time.Second)
	// A longer delay makes the wheel feel sluggish after a fling.
	assert.LessOrEqual(t, config.SettleDelay, time.Second)

	assert.Less(t, config.MinPort, config.MaxPort)
}
