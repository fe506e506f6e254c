package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *DateWheelApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *DateWheelApp) UpdateLocalizer() {
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
// A missing translation returns the key itself.
func (app *DateWheelApp) GetMsg(key string) string {
	msg, ok := app.lookup(key, nil)
	if !ok {
		return key
	}
	return msg
}

// GetMsgWith translates a templated key, returning fallback on failure.
func (app *DateWheelApp) GetMsgWith(key string, data map[string]interface{}, fallback string) string {
	msg, ok := app.lookup(key, data)
	if !ok || msg == "" {
		return fallback
	}
	return msg
}

func (app *DateWheelApp) lookup(key string, data map[string]interface{}) (string, bool) {
	if app.Localizer == nil {
		return "", false
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}

// localizedNames serves wheel labels from the active translation bundle.
type localizedNames struct {
	app *DateWheelApp
}

// Names returns the weekday and month tables of the current language.
func (app *DateWheelApp) Names() wheel.Names {
	return localizedNames{app: app}
}

func (n localizedNames) ShortWeekday(d time.Weekday) (string, bool) {
	return n.app.lookup(fmt.Sprintf(config.TKeyFmtWeekdayShort, int(d)), nil)
}

func (n localizedNames) ShortMonth(month int) (string, bool) {
	return n.app.lookup(fmt.Sprintf(config.TKeyFmtMonthShort, month), nil)
}

func (n localizedNames) LongMonth(month int) (string, bool) {
	return n.app.lookup(fmt.Sprintf(config.TKeyFmtMonthLong, month), nil)
}
