// Package translate formats user visible messages in the operator's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// Fallback locale when the host reports none.
const DefaultLocale = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Printer returns the message printer matching the host locale.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("aengine: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{DefaultLocale}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
