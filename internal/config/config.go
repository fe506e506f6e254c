package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go DateWheel"
	AppID             = "com.github.tartampluch.go-datewheel"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Wheel Geometry & Styling
// -----------------------------------------------------------------------------

const (
	// DefaultItemHeight is the row pitch of every wheel.
	DefaultItemHeight = 44
	// DefaultVisibleRows is the number of rows a wheel shows; the middle one is selected.
	DefaultVisibleRows = 5

	MinItemHeight  = 20
	MaxItemHeight  = 120
	MinVisibleRows = 1
	MaxVisibleRows = 11

	DefaultTextSizeActive   = 18
	DefaultTextSizeInactive = 14
	InactiveOpacity         = 0.31

	// FixedWheelWidth is used by wheels with two values or fewer (meridiem).
	FixedWheelWidth = 60
	// FlexibleWheelMinWidth is the floor for wheels that share the row.
	FlexibleWheelMinWidth = 72

	// SelectionBandColor is the translucent band behind the center row (#d9d9db8d).
	SelectionBandColor  = 0xd9d9db8d
	SelectionBandRadius = 30

	// SettleDelay is how long scrolling must be idle before a wheel settles.
	SettleDelay = 150 * time.Millisecond
	// SnapDuration is the length of the animated snap onto a row.
	SnapDuration = 120 * time.Millisecond

	FontFamilyDefault   = "default"
	FontFamilyMonospace = "monospace"
)

// -----------------------------------------------------------------------------
// Picker Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultYearFrom and DefaultYearTo bound the year wheel when no date bounds are supplied.
	DefaultYearFrom = 2020
	DefaultYearTo   = 2050

	SuffixHours   = " hrs"
	SuffixMinutes = " min"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 460
	MainWindowHeight    = 380
	SettingsWindowWidth = 560

	// Preference Keys
	PrefLanguage    = "language"
	PrefTimeFormat  = "time_format"
	PrefDayFormat   = "day_format"
	PrefMonthFormat = "month_format"
	PrefYearFormat  = "year_format"
	PrefHourFormat  = "hour_format"
	PrefMinFormat   = "minute_format"
	PrefVisibleRows = "visible_rows"
	PrefItemHeight  = "item_height"
	PrefFontFamily  = "font_family"
	PrefBoundStart  = "bound_start"
	PrefBoundEnd    = "bound_end"
	PrefServerPort  = "server_port"
	PrefLastRun     = "last_run_version"

	// BoundLayout is how date bounds are stored and typed in settings.
	BoundLayout = "2006-01-02 15:04"

	// FormatOff is the stored value of a disabled field.
	FormatOff = "off"

	// Export file naming
	ExportBaseName = "selection"
	ExtICS         = ".ics"
	ExtVCF         = ".vcf"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// UI History Window Constants
// -----------------------------------------------------------------------------

const (
	HistoryWinWidth  = 520
	HistoryWinHeight = 400
	HistoryLimit     = 200

	// Table Column IDs
	ColIDInstant = 0
	ColIDWeekday = 1
	ColIDClamped = 2

	// Table Layout
	ColWidthInstant = 220
	ColWidthWeekday = 120
	ColWidthClamped = 120

	DateFormatDisplay = "2006-01-02 15:04"
	TablePlaceholder  = "Cell Content"
	MarkClamped       = "✓"
	MarkNotClamped    = "-"
	LogMsgOpenWin     = "Opening history window"
	LogMsgSorted      = "History sorted"

	// Sorting Indicators
	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyWinSettings   = "win_settings_title"
	TKeyWinHistory    = "win_history_title"
	TKeyMenuShow      = "menu_show"
	TKeyMenuSettings  = "menu_settings"
	TKeyMenuHistory   = "menu_history"
	TKeyBtnExportICS  = "btn_export_ics"
	TKeyBtnExportVCF  = "btn_export_vcf"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblSelected   = "lbl_selected"
	TKeyLblLanguage   = "lbl_language"
	TKeyLblTimeFormat = "lbl_time_format"
	TKeyLblDay        = "lbl_day_format"
	TKeyLblMonth      = "lbl_month_format"
	TKeyLblYear       = "lbl_year_format"
	TKeyLblHours      = "lbl_hour_format"
	TKeyLblMinutes    = "lbl_minute_format"
	TKeyLblRows       = "lbl_visible_rows"
	TKeyLblHeight     = "lbl_item_height"
	TKeyLblFont       = "lbl_font_family"
	TKeyLblStart      = "lbl_bound_start"
	TKeyLblEnd        = "lbl_bound_end"
	TKeyHelpBound     = "help_bound"
	TKeyLblPort       = "lbl_server_port"
	TKeyHelpPort      = "help_port"
	TKeyLblGeneral    = "lbl_general"
	TKeyLblFields     = "lbl_fields"
	TKeyLblRange      = "lbl_range"
	TKeyLblFooter     = "lbl_footer"
	TKeyOptOff        = "opt_off"
	TKeyNotifExported = "notif_exported"
	TKeyEvtSummary    = "event_summary"
	TKeyContactName   = "contact_name"

	// Column Headers
	TKeyColInstant = "col_instant"
	TKeyColWeekday = "col_weekday"
	TKeyColClamped = "col_clamped"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
	TKeyErrBound     = "err_bound_format"
	TKeyErrNumber    = "err_number_range"
)

// Name table keys, formatted with the weekday (0=Sunday) or month (1..12) number.
const (
	TKeyFmtWeekdayShort = "weekday_short_%d"
	TKeyFmtMonthShort   = "month_short_%d"
	TKeyFmtMonthLong    = "month_long_%d"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18080"
	DefaultLanguage = "en"
	UIDSalt         = "go-datewheel-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go DateWheel//Export//EN"
	ICalCalName = "Selection"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "datewheel"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardVersion = "4.0"
	VCardDate    = "20060102"

	// Default length of an exported event.
	DefaultEventDuration = 1 * time.Hour

	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	MinPort = 1
	MaxPort = 65535

	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteICS           = "/selection.ics"
	RouteVCard         = "/selection.vcf"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeTextVCard       = "text/vcard; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrZeroInstant    = "cannot export a zero instant"
	ErrBoundParse     = "unable to parse date bound"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrExport         = "failed to export selection"
	ErrFileSave       = "failed to save export file"
	ErrTrayNotSupp    = "system tray not supported on this platform"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "No selection published yet, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary     = "Selected: %s"
	FallbackContactName = "Selection"
	TitleStartupError   = "Startup Error"

	MsgPortBusy       = "Port %s is busy or unavailable."
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Feed cache updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgWheelWrap      = "Wheel re-centered into middle copy"
	MsgWheelNoAnchor  = "Wheel value not in list, keeping offset"
	MsgWheelSettled   = "Wheel settled"
	MsgPickerClamped  = "Selection clamped to bound"
	MsgPickerDayGuard = "Day reduced to month length"
	MsgPickerChanged  = "Selection changed"
	MsgBoundIgnored   = "Ignoring malformed date bound"
	MsgExported       = "Selection exported"
	MsgSettingsSaved  = "Saving preferences"
	MsgPrefsApplied   = "Preferences applied to picker"
	MsgWorkerStart    = "Preference worker started"
	MsgWorkerStop     = "Preference worker stopped"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyField     = "field"
	LogKeyValue     = "value"
	LogKeyIndex     = "index"
	LogKeyCount     = "count"
	LogKeyInstant   = "instant"
	LogKeyBound     = "bound"
	LogKeyRoute     = "route"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompWheel  = "wheel"
	CompPicker = "picker"
	CompExport = "export"
	CompServer = "server"
	CompMain   = "main"
	CompI18n   = "i18n"
	CompWorker = "worker"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
