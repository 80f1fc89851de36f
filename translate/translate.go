// Package translate formats user-visible messages for the locale of the host.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

// supported lists the catalog languages. The first is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

func init() {
	for _, entry := range catalogDe {
		err := message.SetString(language.German, entry.key, entry.msg)
		if err != nil {
			log.Printf("chip8: catalog %q: %v", entry.key, err)
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("chip8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag, _ := language.MatchStrings(language.NewMatcher(supported), locales...)
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Using returns a formatter bound to a specific language tag, ignoring the
// host locale.
func Using(tag language.Tag) func(key message.Reference, args ...any) string {
	p := message.NewPrinter(tag)
	return func(key message.Reference, args ...any) string {
		return p.Sprintf(key, args...)
	}
}
