package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	fontSelect  *widget.Select
	entryRows   *NumericalEntry
	entryHeight *NumericalEntry
	entryPort   *NumericalEntry

	timeSelect   *widget.Select
	daySelect    *widget.Select
	monthSelect  *widget.Select
	yearSelect   *widget.Select
	hourSelect   *widget.Select
	minuteSelect *widget.Select

	startEntry *widget.Entry
	endEntry   *widget.Entry
}

// ShowSettingsWindow displays the configuration dialog allowing users to manage settings.
func (app *DateWheelApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	// --- 1. General ---
	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblFont), sw.fontSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblRows), sw.entryRows),
		widget.NewFormItem(app.GetMsg(config.TKeyLblHeight), sw.entryHeight),
		itemPort,
	))

	// --- 2. Fields ---
	fieldsCard := widget.NewCard(app.GetMsg(config.TKeyLblFields), "", widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblTimeFormat), sw.timeSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDay), sw.daySelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblMonth), sw.monthSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblYear), sw.yearSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblHours), sw.hourSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblMinutes), sw.minuteSelect),
	))

	// --- 3. Range ---
	itemStart := widget.NewFormItem(app.GetMsg(config.TKeyLblStart), sw.startEntry)
	itemStart.HintText = app.GetMsg(config.TKeyHelpBound)
	itemEnd := widget.NewFormItem(app.GetMsg(config.TKeyLblEnd), sw.endEntry)
	itemEnd.HintText = app.GetMsg(config.TKeyHelpBound)

	rangeCard := widget.NewCard(app.GetMsg(config.TKeyLblRange), "", widget.NewForm(itemStart, itemEnd))

	// --- Actions ---
	saveAction := func() {
		if err := sw.validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		fieldsCard,
		rangeCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(container.NewVScroll(paddedContent))
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates every input pre-filled from preferences.
func (app *DateWheelApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}
	def := wheel.DefaultFormat()

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.fontSelect = widget.NewSelect([]string{config.FontFamilyDefault, config.FontFamilyMonospace}, nil)
	sw.fontSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefFontFamily, config.FontFamilyDefault))

	sw.entryRows = NewNumericalEntry()
	sw.entryRows.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefVisibleRows, config.DefaultVisibleRows)))
	sw.entryRows.Validator = app.rangeValidator(config.MinVisibleRows, config.MaxVisibleRows)

	sw.entryHeight = NewNumericalEntry()
	sw.entryHeight.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefItemHeight, config.DefaultItemHeight)))
	sw.entryHeight.Validator = app.rangeValidator(config.MinItemHeight, config.MaxItemHeight)

	// Port: Numerical only, but requires strict Validation (Range 1-65535).
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = app.validatePort

	sw.timeSelect = widget.NewSelect([]string{
		strconv.Itoa(int(wheel.Clock24)),
		strconv.Itoa(int(wheel.Clock12)),
	}, nil)
	sw.timeSelect.SetSelected(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefTimeFormat, int(def.TimeFormat))))

	sw.daySelect = app.formatSelect(config.PrefDayFormat, string(def.Day),
		string(wheel.DayNumeric), string(wheel.DayAlphabetical))
	sw.monthSelect = app.formatSelect(config.PrefMonthFormat, string(def.Month),
		string(wheel.MonthNumeric), string(wheel.MonthShort), string(wheel.MonthLong))
	sw.yearSelect = app.formatSelect(config.PrefYearFormat, string(def.Year),
		string(wheel.YearShort), string(wheel.YearLong))
	sw.hourSelect = app.formatSelect(config.PrefHourFormat, string(def.Hours),
		string(wheel.HoursPadded), string(wheel.HoursPlain))
	sw.minuteSelect = app.formatSelect(config.PrefMinFormat, string(def.Minutes),
		string(wheel.MinutesPadded), string(wheel.MinutesPlain))

	sw.startEntry = widget.NewEntry()
	sw.startEntry.SetText(app.Preferences.String(config.PrefBoundStart))
	sw.startEntry.PlaceHolder = config.BoundLayout
	sw.startEntry.Validator = app.validateBound

	sw.endEntry = widget.NewEntry()
	sw.endEntry.SetText(app.Preferences.String(config.PrefBoundEnd))
	sw.endEntry.PlaceHolder = config.BoundLayout
	sw.endEntry.Validator = app.validateBound

	return sw
}

// formatSelect offers the given codes plus a localized "off" entry.
func (app *DateWheelApp) formatSelect(key, fallback string, codes ...string) *widget.Select {
	off := app.GetMsg(config.TKeyOptOff)
	s := widget.NewSelect(append(codes, off), nil)

	current := app.Preferences.StringWithFallback(key, fallback)
	if current == config.FormatOff {
		s.SetSelected(off)
	} else {
		s.SetSelected(current)
	}
	return s
}

// formatValue maps a select entry back to its stored code.
func (app *DateWheelApp) formatValue(s *widget.Select) string {
	if s.Selected == app.GetMsg(config.TKeyOptOff) {
		return config.FormatOff
	}
	return s.Selected
}

// validate checks every entry that could block saving.
func (sw *settingsWidgets) validate() error {
	for _, v := range []fyne.Validatable{sw.entryPort, sw.entryRows, sw.entryHeight, sw.startEntry, sw.endEntry} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (app *DateWheelApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

func (app *DateWheelApp) rangeValidator(lo, hi int) fyne.StringValidator {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < lo || n > hi {
			return errors.New(app.GetMsgWith(config.TKeyErrNumber,
				map[string]interface{}{"Min": lo, "Max": hi},
				config.TKeyErrNumber))
		}
		return nil
	}
}

// validateBound accepts an empty entry (no bound) or a BoundLayout date.
func (app *DateWheelApp) validateBound(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.ParseInLocation(config.BoundLayout, s, time.Local); err != nil {
		return errors.New(app.GetMsg(config.TKeyErrBound))
	}
	return nil
}

// saveSettings persists the data and applies it to the running picker.
func (app *DateWheelApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefFontFamily, sw.fontSelect.Selected)
	app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)

	if n, ok := sw.entryRows.Int(); ok {
		app.Preferences.SetInt(config.PrefVisibleRows, n)
	}
	if n, ok := sw.entryHeight.Int(); ok {
		app.Preferences.SetInt(config.PrefItemHeight, n)
	}
	if n, err := strconv.Atoi(sw.timeSelect.Selected); err == nil {
		app.Preferences.SetInt(config.PrefTimeFormat, n)
	}

	app.Preferences.SetString(config.PrefDayFormat, app.formatValue(sw.daySelect))
	app.Preferences.SetString(config.PrefMonthFormat, app.formatValue(sw.monthSelect))
	app.Preferences.SetString(config.PrefYearFormat, app.formatValue(sw.yearSelect))
	app.Preferences.SetString(config.PrefHourFormat, app.formatValue(sw.hourSelect))
	app.Preferences.SetString(config.PrefMinFormat, app.formatValue(sw.minuteSelect))

	app.Preferences.SetString(config.PrefBoundStart, sw.startEntry.Text)
	app.Preferences.SetString(config.PrefBoundEnd, sw.endEntry.Text)

	// The feed port only takes effect after a restart.
	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	app.ApplyPreferences()

	w.Close()
}
