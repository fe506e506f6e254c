package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// -----------------------------------------------------------------------------
// Sorting Logic Tests
// -----------------------------------------------------------------------------

func historyFixture() []HistoryEntry {
	return []HistoryEntry{
		{Instant: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)},                // Wednesday
		{Instant: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Clamped: true}, // Monday
		{Instant: time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)},                // Sunday
	}
}

func days(entries []HistoryEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Instant.Day()
	}
	return out
}

func TestSortHistory_Instant(t *testing.T) {
	entries := historyFixture()

	sortHistory(entries, config.ColIDInstant, true)
	assert.Equal(t, []int{10, 12, 16}, days(entries))

	sortHistory(entries, config.ColIDInstant, false)
	assert.Equal(t, []int{16, 12, 10}, days(entries), "descending shows the newest first")
}

func TestSortHistory_Weekday(t *testing.T) {
	entries := historyFixture()
	sortHistory(entries, config.ColIDWeekday, true)

	// Sunday (0) -> Monday (1) -> Wednesday (3)
	assert.Equal(t, []int{16, 10, 12}, days(entries))
}

func TestSortHistory_Clamped(t *testing.T) {
	entries := historyFixture()
	sortHistory(entries, config.ColIDClamped, true)

	assert.Equal(t, []int{12, 16, 10}, days(entries), "unclamped entries come first, ordered by instant")
}

// -----------------------------------------------------------------------------
// UI Formatting Tests
// -----------------------------------------------------------------------------

func TestHistoryCell(t *testing.T) {
	app, _ := setupTestApp(t)
	e := HistoryEntry{Instant: time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC), Clamped: true}

	assert.Equal(t, "2025-03-10 09:05", app.historyCell(e, config.ColIDInstant))
	assert.Equal(t, "Mon", app.historyCell(e, config.ColIDWeekday))
	assert.Equal(t, config.MarkClamped, app.historyCell(e, config.ColIDClamped))
	assert.Equal(t, config.MarkNotClamped, app.historyCell(HistoryEntry{Instant: e.Instant}, config.ColIDClamped))

	app.Localizer = nil
	assert.Equal(t, "Monday", app.historyCell(e, config.ColIDWeekday), "falls back to the Go weekday name")
}

func TestHistoryWindow_Singleton(t *testing.T) {
	app, _ := setupTestApp(t)
	app.recordHistory(HistoryEntry{Instant: testNow})

	app.ShowHistoryWindow()
	first := app.historyWindow
	require.NotNil(t, first)

	app.ShowHistoryWindow()
	assert.Same(t, first, app.historyWindow)

	first.Close()
	assert.Nil(t, app.historyWindow)
}
