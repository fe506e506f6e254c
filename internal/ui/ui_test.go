package ui

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/server"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// MockTray implements minimal system tray functionality for headless testing.
type MockTray struct {
	Menu *fyne.Menu
}

func (m *MockTray) SetSystemTrayMenu(menu *fyne.Menu) {
	m.Menu = menu
}

func (m *MockTray) SetSystemTrayIcon(icon fyne.Resource) {}
func (m *MockTray) SetSystemTrayWindow(w fyne.Window)    {}
func (m *MockTray) Run()                                 {}
func (m *MockTray) Quit()                                {}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

var testNow = time.Date(2025, 3, 14, 15, 9, 0, 0, time.Local)

// setupTestApp initializes a headless Fyne app with mocked dependencies.
func setupTestApp(t *testing.T) (*DateWheelApp, *MockTray) {
	a := test.NewApp()

	srv := server.NewFeedServer("0")
	mockTray := &MockTray{}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewDateWheelApp(a, ctx, srv)
	app.Tray = mockTray
	app.Clock = MockClock{CurrentTime: testNow}
	app.Exporter.Clock = app.Clock

	// Manually load I18n as Run() is skipped
	app.SetupI18n()

	return app, mockTray
}

func getFeed(t *testing.T, app *DateWheelApp, route string) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	app.Server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, route, nil))
	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	return w.Code, string(body)
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app, _ := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "Settings...", app.GetMsg(config.TKeyMenuSettings))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Paramètres...", app.GetMsg(config.TKeyMenuSettings))
}

func TestLocalization_MissingKeyReturnsKey(t *testing.T) {
	app, _ := setupTestApp(t)
	assert.Equal(t, "no_such_key", app.GetMsg("no_such_key"))
}

func TestLocalization_Names(t *testing.T) {
	app, _ := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	names := app.Names()

	day, ok := names.ShortWeekday(time.Monday)
	assert.True(t, ok)
	assert.Equal(t, "lun.", day)

	month, ok := names.LongMonth(8)
	assert.True(t, ok)
	assert.Equal(t, "août", month)

	_, ok = names.ShortMonth(13)
	assert.False(t, ok, "unknown months miss so labels fall back to the raw value")

	label := wheel.LabelPolicy{Format: wheel.DefaultFormat(), Names: names}.Label(wheel.FieldMonth, wheel.Numeric(2))
	assert.Equal(t, "févr.", label)
}

func TestLocalization_SummaryFormatter(t *testing.T) {
	app, _ := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	res := app.buildSummaryFormatter()(time.Date(2024, 6, 20, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, "Picked: 2024-06-20 18:45", res)

	app.Localizer = nil
	res = app.buildSummaryFormatter()(time.Date(2024, 6, 20, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, "Selected: 2024-06-20 18:45", res)
}

// -----------------------------------------------------------------------------
// Configuration & Preferences Tests
// -----------------------------------------------------------------------------

func TestConfiguration_FormatDefaults(t *testing.T) {
	app, _ := setupTestApp(t)
	assert.Equal(t, wheel.DefaultFormat(), app.loadFormat())
}

func TestConfiguration_FormatMapping(t *testing.T) {
	app, _ := setupTestApp(t)

	app.Preferences.SetString(config.PrefDayFormat, config.FormatOff)
	app.Preferences.SetString(config.PrefMonthFormat, string(wheel.MonthLong))
	app.Preferences.SetInt(config.PrefTimeFormat, int(wheel.Clock12))
	app.Preferences.SetString(config.PrefMinFormat, string(wheel.MinutesPlain))

	f := app.loadFormat()

	assert.False(t, f.Enabled(wheel.FieldDay))
	assert.Equal(t, wheel.MonthLong, f.Month)
	assert.True(t, f.Enabled(wheel.FieldMeridiem))
	assert.Equal(t, wheel.MinutesPlain, f.Minutes)
}

func TestConfiguration_Geometry(t *testing.T) {
	app, _ := setupTestApp(t)

	app.Preferences.SetInt(config.PrefVisibleRows, 7)
	app.Preferences.SetInt(config.PrefItemHeight, 36)
	assert.Equal(t, wheel.Options{ItemExtent: 36, VisibleRows: 7}, app.loadGeometry())

	// Out of range values fall back to the defaults.
	app.Preferences.SetInt(config.PrefVisibleRows, 99)
	app.Preferences.SetInt(config.PrefItemHeight, 1)
	assert.Equal(t, wheel.Options{ItemExtent: config.DefaultItemHeight, VisibleRows: config.DefaultVisibleRows}, app.loadGeometry())
}

func TestConfiguration_Bounds(t *testing.T) {
	app, _ := setupTestApp(t)

	app.Preferences.SetString(config.PrefBoundStart, "2024-06-10 08:30")
	app.Preferences.SetString(config.PrefBoundEnd, "not a date")

	b := app.loadBounds()
	assert.True(t, b.Min.Equal(time.Date(2024, 6, 10, 8, 30, 0, 0, time.Local)))
	assert.True(t, b.Max.IsZero(), "malformed bounds are ignored")
}

func TestConfiguration_Style(t *testing.T) {
	app, _ := setupTestApp(t)
	assert.False(t, app.loadStyle().Monospace)

	app.Preferences.SetString(config.PrefFontFamily, config.FontFamilyMonospace)
	assert.True(t, app.loadStyle().Monospace)
}

func TestConfiguration_WorkerSignal(t *testing.T) {
	app, _ := setupTestApp(t)
	app.watchPreferences()

	signalReceived := make(chan bool)
	go func() {
		select {
		case <-app.configChan:
			signalReceived <- true
		case <-time.After(500 * time.Millisecond):
			signalReceived <- false
		}
	}()

	app.Preferences.SetInt(config.PrefTimeFormat, int(wheel.Clock12))

	assert.True(t, <-signalReceived, "Changing a preference should notify the background worker")
}

func TestBackgroundWorker_StopsOnCancel(t *testing.T) {
	a := test.NewApp()
	ctx, cancel := context.WithCancel(context.Background())
	app := NewDateWheelApp(a, ctx, server.NewFeedServer("0"))

	done := make(chan struct{})
	go func() {
		app.backgroundWorker()
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

// -----------------------------------------------------------------------------
// Picker Wiring Tests
// -----------------------------------------------------------------------------

func TestBuildPicker_SeedsFromClock(t *testing.T) {
	app, _ := setupTestApp(t)
	app.BuildPicker()

	require.NotNil(t, app.PickerView)
	assert.True(t, app.Picker.Instant().Equal(testNow))
	assert.Len(t, app.PickerView.Fields(), 5)
}

func TestSelection_PublishesFeeds(t *testing.T) {
	app, _ := setupTestApp(t)
	app.BuildPicker()

	code, _ := getFeed(t, app, config.RouteICS)
	assert.Equal(t, http.StatusServiceUnavailable, code, "nothing is published before the first report")

	app.Picker.Sync()

	code, body := getFeed(t, app, config.RouteICS)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "BEGIN:VEVENT")
	assert.Contains(t, body, "Picked: 2025-03-14 15:09")

	code, body = getFeed(t, app, config.RouteVCard)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "BDAY:20250314")
	assert.Contains(t, body, "FN:Picked date")
}

func TestSelection_RecordsHistory(t *testing.T) {
	app, _ := setupTestApp(t)
	app.Preferences.SetString(config.PrefBoundEnd, "2025-03-01 00:00")
	app.BuildPicker()

	app.Picker.Sync()
	app.Picker.Sync() // Redundant reports are collapsed.

	app.HistoryMut.RLock()
	defer app.HistoryMut.RUnlock()
	require.Len(t, app.History, 1)
	assert.True(t, app.History[0].Clamped)
	assert.True(t, app.History[0].Instant.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)))
}

func TestRecordHistory_Limit(t *testing.T) {
	app, _ := setupTestApp(t)

	for i := 0; i < config.HistoryLimit+10; i++ {
		app.recordHistory(HistoryEntry{Instant: testNow.Add(time.Duration(i) * time.Minute)})
	}

	assert.Len(t, app.History, config.HistoryLimit)
	assert.True(t, app.History[0].Instant.Equal(testNow.Add(10*time.Minute)), "oldest entries are dropped first")
}

func TestApplyPreferences_RebuildsWheels(t *testing.T) {
	app, _ := setupTestApp(t)
	app.BuildPicker()

	app.Preferences.SetInt(config.PrefTimeFormat, int(wheel.Clock12))
	app.Preferences.SetString(config.PrefYearFormat, config.FormatOff)
	app.ApplyPreferences()

	assert.Nil(t, app.PickerView.Wheel(wheel.FieldYear))
	require.NotNil(t, app.PickerView.Wheel(wheel.FieldMeridiem))
	assert.Equal(t, wheel.MeridiemValue(wheel.PM), app.PickerView.Wheel(wheel.FieldMeridiem).Engine().Current())
	assert.True(t, app.Picker.Instant().Equal(testNow), "changing the clock keeps the instant")
}

func TestMainWindow_ShowsSelection(t *testing.T) {
	app, _ := setupTestApp(t)
	app.ShowMainWindow()
	t.Cleanup(func() {
		if app.Window != nil {
			app.Window.Close()
		}
	})

	require.NotNil(t, app.Window)
	assert.Equal(t, "Selected: 2025-03-14 15:09", app.selectedLabel.Text)
}

// -----------------------------------------------------------------------------
// Tray Tests
// -----------------------------------------------------------------------------

func TestTrayMenu_Localized(t *testing.T) {
	app, mockTray := setupTestApp(t)
	app.setupTrayMenu()

	require.NotNil(t, mockTray.Menu)
	assert.Len(t, mockTray.Menu.Items, 4)
	assert.Equal(t, "History...", app.TrayHistoryItem.Label)

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	app.RefreshTrayMenu()

	assert.Equal(t, "Historique...", app.TrayHistoryItem.Label)
	assert.Equal(t, "Paramètres...", app.TraySettingsItem.Label)
}
