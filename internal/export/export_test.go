package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/export"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func newExporter() *export.Exporter {
	return &export.Exporter{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
}

func TestCalendar_SingleEvent(t *testing.T) {
	picked := time.Date(2024, 6, 20, 18, 45, 0, 0, time.UTC)

	data, err := newExporter().Calendar(picked)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(picked))

	end, err := events[0].DateTimeEnd(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEventDuration, end.Sub(start))

	summary, err := events[0].Props.Text(config.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Selected: 2024-06-20 18:45", summary)
}

func TestCalendar_LocalizedSummary(t *testing.T) {
	e := newExporter()
	e.FormatSummary = func(t time.Time) string { return "Rendez-vous " + t.Format("02/01") }

	data, err := e.Calendar(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rendez-vous 20/06")
}

func TestCalendar_StableUID(t *testing.T) {
	picked := time.Date(2024, 6, 20, 18, 45, 0, 0, time.UTC)
	cest := time.FixedZone("CEST", 2*60*60)

	assert.Equal(t, export.UID(picked), export.UID(picked.In(cest)), "UID depends on the instant, not the zone")
	assert.NotEqual(t, export.UID(picked), export.UID(picked.Add(time.Minute)))
	assert.Len(t, export.UID(picked), 2*config.UIDHashLength)
}

func TestVCard_Birthday(t *testing.T) {
	e := newExporter()
	e.ContactName = "Ada"

	data, err := e.VCard(time.Date(1990, 12, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	card, err := vcard.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	assert.Equal(t, "Ada", card.PreferredValue(vcard.FieldFormattedName))
	assert.Equal(t, "19901210", card.Value(vcard.FieldBirthday))
	assert.Equal(t, config.VCardVersion, card.Value(vcard.FieldVersion))
}

func TestVCard_FallbackName(t *testing.T) {
	data, err := newExporter().VCard(time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "FN:"+config.FallbackContactName))
}

func TestExport_ZeroInstant(t *testing.T) {
	_, err := newExporter().Calendar(time.Time{})
	assert.EqualError(t, err, config.ErrZeroInstant)

	_, err = newExporter().VCard(time.Time{})
	assert.EqualError(t, err, config.ErrZeroInstant)
}
