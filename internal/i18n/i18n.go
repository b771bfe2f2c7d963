// Package i18n holds the dashboard's user-facing strings for each locale.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"moviedash/internal/domain"
)

var (
	messages = map[domain.Locale]map[string]string{
		domain.LocaleEnglish: english,
		domain.LocaleChinese: chinese,
	}

	builder = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for locale, table := range messages {
		tag := locale.Tag()
		for key, msg := range table {
			// only fails on a malformed tag or message, both are static
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Translator renders catalogue messages for one locale.
type Translator struct {
	locale  domain.Locale
	printer *message.Printer
	english *message.Printer
}

func New(locale domain.Locale) *Translator {
	return &Translator{
		locale:  locale,
		printer: message.NewPrinter(locale.Tag(), message.Catalog(builder)),
		english: message.NewPrinter(domain.LocaleEnglish.Tag(), message.Catalog(builder)),
	}
}

func (t *Translator) Locale() domain.Locale {
	return t.locale
}

// T formats key for the active locale. A key missing from the locale falls
// back to English, and a key missing everywhere is returned as is.
func (t *Translator) T(key string, args ...any) string {
	if _, ok := messages[t.locale][key]; ok {
		return t.printer.Sprintf(key, args...)
	}
	if _, ok := english[key]; ok {
		return t.english.Sprintf(key, args...)
	}
	return key
}

// Has reports whether the locale defines key itself.
func Has(locale domain.Locale, key string) bool {
	_, ok := messages[locale][key]
	return ok
}
