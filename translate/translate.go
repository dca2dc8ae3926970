package translate

import (
	"log/slog"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog holds the translations of the calculator messages.
// Keys are the en-US format strings.
var Catalog = catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))

var printer atomic.Pointer[message.Printer]

// supported languages, the first being the default.
var supported = []language.Tag{language.AmericanEnglish, language.German}

var german = map[string]string{
	"Range Error":             "Bereichsfehler",
	"Decimal Error":           "Dezimalfehler",
	"Operational Error":       "Bedienfehler",
	"Unknown Error":           "Unbekannter Fehler",
	"value out of range":      "Wert außerhalb des Bereichs",
	"invalid decimal":         "ungültige Dezimalzahl",
	"memory slot invalid":     "Speicherplatz ungültig",
	"key %v not recognized":   "Taste %v nicht erkannt",
	"'%v' is not a key name":  "'%v' ist kein Tastenname",
	"key unknown":             "Taste unbekannt",
	"unexpected failure: %v":  "unerwarteter Fehler: %v",
	"memory slot m%v invalid": "Speicherplatz m%v ungültig",
	"configuration invalid":   "Konfiguration ungültig",
	"operation failed":        "Operation fehlgeschlagen",
}

func init() {
	for key, msg := range german {
		_ = Catalog.SetString(language.German, key, msg)
	}

	locales, err := locale.GetLocales()
	if err != nil {
		slog.Warn("locale unavailable", "component", "translate", "err", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer for the best match of the locales,
// falling back to en-US. The selected tag is returned.
func SetLanguage(locales ...string) (tag language.Tag) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	matcher := language.NewMatcher(supported)
	tag, _ = language.MatchStrings(matcher, locales...)

	printer.Store(message.NewPrinter(tag, message.Catalog(Catalog)))

	return
}

// Error is a sentinel error, translated each time its text is read.
type Error string

func (e Error) Error() string {
	return From(string(e))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
