package ui

import (
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// ShowHistoryWindow displays every instant the picker reported, newest first.
// If the window is already open, it requests focus.
func (app *DateWheelApp) ShowHistoryWindow() {
	if app.historyWindow != nil {
		app.historyWindow.RequestFocus()
		return
	}

	app.historyWindow = app.App.NewWindow(app.GetMsg(config.TKeyWinHistory))
	app.historyWindow.Resize(fyne.NewSize(config.HistoryWinWidth, config.HistoryWinHeight))

	// Local copy for sorting/display.
	app.HistoryMut.RLock()
	entries := make([]HistoryEntry, len(app.History))
	copy(entries, app.History)
	app.HistoryMut.RUnlock()

	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(entries))

	currentSortCol := config.ColIDInstant
	sortAsc := false

	var refreshTable func()

	performSort := func() {
		sortHistory(entries, currentSortCol, sortAsc)
		slog.Debug(config.LogMsgSorted,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySortCol, currentSortCol,
			config.LogKeySortAsc, sortAsc)
	}
	performSort()

	table := widget.NewTable(
		func() (int, int) {
			return len(entries), 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			if id.Row >= len(entries) {
				return
			}
			o.(*widget.Label).SetText(app.historyCell(entries[id.Row], id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("Header", func() {})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		var titleKey string
		switch id.Col {
		case config.ColIDInstant:
			titleKey = config.TKeyColInstant
		case config.ColIDWeekday:
			titleKey = config.TKeyColWeekday
		case config.ColIDClamped:
			titleKey = config.TKeyColClamped
		}

		text := app.GetMsg(titleKey)
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			refreshTable()
		}
	}

	table.SetColumnWidth(config.ColIDInstant, config.ColWidthInstant)
	table.SetColumnWidth(config.ColIDWeekday, config.ColWidthWeekday)
	table.SetColumnWidth(config.ColIDClamped, config.ColWidthClamped)

	refreshTable = func() {
		performSort()
		table.Refresh()
	}

	app.historyWindow.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	app.historyWindow.SetOnClosed(func() {
		app.historyWindow = nil
	})
	app.historyWindow.Show()
}

// historyCell renders one table cell.
func (app *DateWheelApp) historyCell(e HistoryEntry, col int) string {
	switch col {
	case config.ColIDWeekday:
		if name, ok := app.Names().ShortWeekday(e.Instant.Weekday()); ok {
			return name
		}
		return e.Instant.Weekday().String()
	case config.ColIDClamped:
		if e.Clamped {
			return config.MarkClamped
		}
		return config.MarkNotClamped
	default:
		return e.Instant.Format(config.DateFormatDisplay)
	}
}

// sortHistory orders entries by the given column. Ties fall back to the instant.
func sortHistory(entries []HistoryEntry, col int, asc bool) {
	less := func(a, b HistoryEntry) bool {
		switch col {
		case config.ColIDWeekday:
			if a.Instant.Weekday() != b.Instant.Weekday() {
				return a.Instant.Weekday() < b.Instant.Weekday()
			}
		case config.ColIDClamped:
			if a.Clamped != b.Clamped {
				return !a.Clamped
			}
		}
		return a.Instant.Before(b.Instant)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if asc {
			return less(entries[i], entries[j])
		}
		return less(entries[j], entries[i])
	})
}
