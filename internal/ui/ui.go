package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/export"
	"github.com/tartampluch/go-datewheel/internal/picker"
	"github.com/tartampluch/go-datewheel/internal/server"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// HistoryEntry is one instant reported by the picker.
type HistoryEntry struct {
	Instant time.Time
	Clamped bool
}

// DateWheelApp encapsulates the UI state, preferences, and background logic.
type DateWheelApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server   *server.FeedServer
	Exporter *export.Exporter
	Clock    picker.Clock // Injected clock for testability

	Picker     *picker.Picker
	PickerView *DateTimePicker

	Tray desktop.App
	Menu *fyne.Menu

	TrayShowItem     *fyne.MenuItem
	TrayHistoryItem  *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan string

	selectedLabel  *widget.Label
	settingsWindow fyne.Window

	// History State
	HistoryMut    sync.RWMutex
	History       []HistoryEntry
	historyWindow fyne.Window
}

// NewDateWheelApp constructs the application and wires dependencies.
func NewDateWheelApp(a fyne.App, ctx context.Context, srv *server.FeedServer) *DateWheelApp {
	a.SetIcon(theme.HistoryIcon())

	app := &DateWheelApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Clock:              picker.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
		configChan:         make(chan string, config.ChannelBufferSize),
		History:            make([]HistoryEntry, 0),
	}
	app.Exporter = &export.Exporter{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}
	return app
}

// Run launches the application services and the main UI loop.
func (app *DateWheelApp) Run() {
	app.SetupI18n()
	app.watchPreferences()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupp,
			config.LogKeyComponent, config.CompUI)
	}

	app.ShowMainWindow()
	if app.Tray == nil {
		// Without a tray there is no way back once the picker window closes.
		app.Window.SetMaster()
	}
	go app.backgroundWorker()
	app.App.Run()
}

// BuildPicker creates the picker controller and its widget from preferences.
func (app *DateWheelApp) BuildPicker() {
	app.Picker = picker.New(picker.Options{
		Bounds:   app.loadBounds(),
		Format:   app.loadFormat(),
		Clock:    app.Clock,
		OnChange: app.onSelection,
	})
	app.PickerView = NewDateTimePicker(app.Picker, app.Names(), app.loadGeometry(), app.loadStyle())
}

// ShowMainWindow displays the picker window, creating it on first use.
func (app *DateWheelApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.Show()
		app.Window.RequestFocus()
		return
	}

	if app.PickerView == nil {
		app.BuildPicker()
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	app.selectedLabel = widget.NewLabel("")
	app.selectedLabel.Alignment = fyne.TextAlignCenter

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.HistoryIcon(), app.ShowHistoryWindow),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), app.ShowSettingsWindow),
	)

	btnICS := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportICS), theme.DocumentSaveIcon(), func() {
		app.saveExport(config.ExtICS, app.Exporter.Calendar)
	})
	btnVCF := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportVCF), theme.AccountIcon(), func() {
		app.saveExport(config.ExtVCF, app.Exporter.VCard)
	})

	content := container.NewBorder(
		toolbar,
		container.NewVBox(app.selectedLabel, container.NewGridWithColumns(config.LayoutColumnsDouble, btnICS, btnVCF)),
		nil, nil,
		container.NewCenter(app.PickerView),
	)

	w.SetContent(container.NewPadded(content))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(func() { app.Window = nil })

	// Report the seeded selection so the label and feeds are populated.
	app.Picker.Sync()
	w.Show()
}

// onSelection is the picker's change callback.
func (app *DateWheelApp) onSelection(t time.Time) {
	clamped := app.Picker != nil && app.Picker.Snapshot().Clamped
	if clamped {
		slog.Info(config.MsgPickerClamped,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyInstant, t)
	}

	app.recordHistory(HistoryEntry{Instant: t, Clamped: clamped})
	app.publish(t)

	if app.selectedLabel != nil {
		app.selectedLabel.SetText(app.GetMsgWith(config.TKeyLblSelected,
			map[string]interface{}{"When": t.Format(config.DateFormatDisplay)},
			fmt.Sprintf(config.FallbackSummary, t.Format(config.DateFormatDisplay))))
	}
}

// recordHistory appends t unless it repeats the latest entry.
func (app *DateWheelApp) recordHistory(e HistoryEntry) {
	app.HistoryMut.Lock()
	defer app.HistoryMut.Unlock()

	if n := len(app.History); n > 0 && app.History[n-1].Instant.Equal(e.Instant) {
		return
	}
	app.History = append(app.History, e)
	if over := len(app.History) - config.HistoryLimit; over > 0 {
		app.History = app.History[over:]
	}
}

// publish pushes both representations of t to the local feed server.
func (app *DateWheelApp) publish(t time.Time) {
	app.Exporter.ContactName = app.GetMsgWith(config.TKeyContactName, nil, config.FallbackContactName)

	ics, err := app.Exporter.Calendar(t)
	if err != nil {
		slog.Error(config.ErrExport, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	vcf, err := app.Exporter.VCard(t)
	if err != nil {
		slog.Error(config.ErrExport, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	app.Server.Publish(ics, vcf)
}

// saveExport asks for a destination and writes the encoded selection there.
func (app *DateWheelApp) saveExport(ext string, encode func(time.Time) ([]byte, error)) {
	data, err := encode(app.Picker.Instant())
	if err != nil {
		slog.Error(config.ErrExport, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		dialog.ShowError(err, app.Window)
		return
	}

	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()

		if _, err := wc.Write(data); err != nil {
			slog.Error(config.ErrFileSave,
				config.LogKeyError, err,
				config.LogKeyFile, wc.URI().String(),
				config.LogKeyComponent, config.CompUI)
			dialog.ShowError(fmt.Errorf("%s: %w", config.ErrFileSave, err), app.Window)
			return
		}
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifExported)))
	}, app.Window)
	d.SetFileName(config.ExportBaseName + ext)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// watchPreferences monitors changes to settings to trigger immediate updates.
func (app *DateWheelApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefTimeFormat:
		default:
		}
	})
}

// setupTrayMenu constructs the system tray menu.
func (app *DateWheelApp) setupTrayMenu() {
	app.TrayShowItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuShow), app.ShowMainWindow)
	app.TrayHistoryItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuHistory), app.ShowHistoryWindow)
	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow)

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayShowItem,
		fyne.NewMenuItemSeparator(),
		app.TrayHistoryItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *DateWheelApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayShowItem.Label = app.GetMsg(config.TKeyMenuShow)
	app.TrayHistoryItem.Label = app.GetMsg(config.TKeyMenuHistory)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// backgroundWorker applies preference changes to the picker until the
// context is cancelled.
func (app *DateWheelApp) backgroundWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)
	log.Info(config.MsgWorkerStart)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-app.configChan:
			fyne.Do(app.ApplyPreferences)
		}
	}
}

// ApplyPreferences pushes the stored settings into the running picker.
func (app *DateWheelApp) ApplyPreferences() {
	if app.Picker == nil || app.PickerView == nil {
		return
	}

	app.UpdateLocalizer()
	app.Picker.SetBounds(app.loadBounds())
	app.Picker.SetFormat(app.loadFormat())
	app.PickerView.Configure(app.loadGeometry(), app.loadStyle(), app.Names())

	slog.Debug(config.MsgPrefsApplied, config.LogKeyComponent, config.CompUI)
}

// loadFormat assembles the field formats from preferences.
// A field stored as config.FormatOff is disabled.
func (app *DateWheelApp) loadFormat() wheel.Format {
	def := wheel.DefaultFormat()
	pref := func(key, fallback string) string {
		v := app.Preferences.StringWithFallback(key, fallback)
		if v == config.FormatOff {
			return ""
		}
		return v
	}

	return wheel.Format{
		Day:        wheel.DayFormat(pref(config.PrefDayFormat, string(def.Day))),
		Month:      wheel.MonthFormat(pref(config.PrefMonthFormat, string(def.Month))),
		Year:       wheel.YearFormat(pref(config.PrefYearFormat, string(def.Year))),
		TimeFormat: wheel.TimeFormat(app.Preferences.IntWithFallback(config.PrefTimeFormat, int(def.TimeFormat))),
		Hours:      wheel.HourFormat(pref(config.PrefHourFormat, string(def.Hours))),
		Minutes:    wheel.MinuteFormat(pref(config.PrefMinFormat, string(def.Minutes))),
	}
}

// loadGeometry reads the row pitch and row count, clamped to sane limits.
func (app *DateWheelApp) loadGeometry() wheel.Options {
	height := app.Preferences.IntWithFallback(config.PrefItemHeight, config.DefaultItemHeight)
	if height < config.MinItemHeight || height > config.MaxItemHeight {
		height = config.DefaultItemHeight
	}
	rows := app.Preferences.IntWithFallback(config.PrefVisibleRows, config.DefaultVisibleRows)
	if rows < config.MinVisibleRows || rows > config.MaxVisibleRows {
		rows = config.DefaultVisibleRows
	}
	return wheel.Options{ItemExtent: float32(height), VisibleRows: rows}
}

func (app *DateWheelApp) loadStyle() Style {
	style := DefaultStyle()
	style.Monospace = app.Preferences.StringWithFallback(config.PrefFontFamily, config.FontFamilyDefault) == config.FontFamilyMonospace
	return style
}

// loadBounds parses the stored range. Malformed entries are ignored.
func (app *DateWheelApp) loadBounds() picker.Bounds {
	return picker.Bounds{
		Min: app.parseBound(config.PrefBoundStart),
		Max: app.parseBound(config.PrefBoundEnd),
	}
}

func (app *DateWheelApp) parseBound(key string) time.Time {
	raw := app.Preferences.String(key)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(config.BoundLayout, raw, time.Local)
	if err != nil {
		slog.Warn(config.MsgBoundIgnored,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyBound, raw,
			config.LogKeyError, err)
		return time.Time{}
	}
	return t
}

// buildSummaryFormatter returns a closure that localizes the event summary.
func (app *DateWheelApp) buildSummaryFormatter() func(t time.Time) string {
	return func(t time.Time) string {
		when := t.Format(config.DateFormatDisplay)
		if app.Localizer == nil {
			slog.Debug(config.ErrLocNotInit, config.LogKeyComponent, config.CompUI)
			return fmt.Sprintf(config.FallbackSummary, when)
		}
		return app.GetMsgWith(config.TKeyEvtSummary,
			map[string]interface{}{"When": when},
			fmt.Sprintf(config.FallbackSummary, when))
	}
}
