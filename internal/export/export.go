package export

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// Exporter renders a picked instant into interchange formats.
type Exporter struct {
	Clock picker.Clock // Stamps DTSTAMP/REV.

	// FormatSummary lets the UI inject a localized event title.
	FormatSummary func(t time.Time) string

	// ContactName is the FN of exported vCards.
	ContactName string

	// Duration is the event length. Zero means config.DefaultEventDuration.
	Duration time.Duration
}

// Calendar encodes t as a single VEVENT inside a VCALENDAR.
func (e *Exporter) Calendar(t time.Time) ([]byte, error) {
	if t.IsZero() {
		return nil, errors.New(config.ErrZeroInstant)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, UID(t), config.ICalDomain))
	event.Props.SetText(config.PropSummary, e.summary(t))

	stamp := ical.NewProp(config.PropDTStamp)
	stamp.SetDateTime(e.now().UTC())
	event.Props.Set(stamp)

	start := ical.NewProp(config.PropDTStart)
	start.SetDateTime(t.UTC())
	event.Props.Set(start)

	end := ical.NewProp(config.PropDTEnd)
	end.SetDateTime(t.Add(e.duration()).UTC())
	event.Props.Set(end)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyInstant, t,
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// VCard encodes the calendar date of t as the BDAY of a single contact.
func (e *Exporter) VCard(t time.Time) ([]byte, error) {
	if t.IsZero() {
		return nil, errors.New(config.ErrZeroInstant)
	}

	name := e.ContactName
	if name == "" {
		name = config.FallbackContactName
	}

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetValue(vcard.FieldUID, UID(t))
	card.SetValue(vcard.FieldBirthday, t.Format(config.VCardDate))
	card.SetValue(vcard.FieldRevision, e.now().UTC().Format(time.RFC3339))

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyInstant, t,
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// UID derives a stable identifier from the instant so re-exports replace
// rather than duplicate the entry in client applications.
func UID(t time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, t.UTC().Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

func (e *Exporter) summary(t time.Time) string {
	if e.FormatSummary != nil {
		if s := e.FormatSummary(t); s != "" {
			return s
		}
	}
	return fmt.Sprintf(config.FallbackSummary, t.Format(config.DateFormatDisplay))
}

func (e *Exporter) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e *Exporter) duration() time.Duration {
	if e.Duration <= 0 {
		return config.DefaultEventDuration
	}
	return e.Duration
}
