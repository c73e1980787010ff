// Package format presenta montos y fechas según la configuración del tenant.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func printer(numberFormat string) *message.Printer {
	if numberFormat == "de-DE" {
		return message.NewPrinter(language.German)
	}
	return message.NewPrinter(language.AmericanEnglish)
}

// Currency formatea un monto con dos decimales y separadores del formato indicado:
// "$ 1,234.50" (en-US) o "$ 1.234,50" (de-DE). Un formato desconocido usa en-US.
func Currency(amount decimal.Decimal, symbol, numberFormat string) string {
	v := amount.Round(2).InexactFloat64()
	return symbol + " " + printer(numberFormat).Sprint(number.Decimal(v, number.Scale(2)))
}

// Number formatea un entero con separador de miles.
func Number(n int, numberFormat string) string {
	return printer(numberFormat).Sprint(number.Decimal(n))
}

var layouts = map[string]string{
	"DD/MM/YYYY": "02/01/2006",
	"MM/DD/YYYY": "01/02/2006",
	"YYYY-MM-DD": "2006-01-02",
}

// Date formatea la fecha (sin hora). Un formato desconocido usa DD/MM/YYYY.
func Date(t time.Time, dateFormat string) string {
	layout, ok := layouts[dateFormat]
	if !ok {
		layout = layouts["DD/MM/YYYY"]
	}
	return t.Format(layout)
}

// DateTime formatea fecha y hora (24 h).
func DateTime(t time.Time, dateFormat string) string {
	return Date(t, dateFormat) + " " + t.Format("15:04")
}
