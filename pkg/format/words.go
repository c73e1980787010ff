package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	unitWords = [...]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
		"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
		"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis",
		"veintisiete", "veintiocho", "veintinueve"}
	tenWords     = [...]string{"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	hundredWords = [...]string{"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
		"seiscientos", "setecientos", "ochocientos", "novecientos"}
)

// Words escribe el monto en letras para el comprobante:
// 1234.5 → "MIL DOSCIENTOS TREINTA Y CUATRO CON 50/100".
func Words(amount decimal.Decimal) string {
	amount = amount.Round(2)
	prefix := ""
	if amount.IsNegative() {
		prefix = "menos "
		amount = amount.Neg()
	}
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Mul(decimal.NewFromInt(100)).IntPart()
	return strings.ToUpper(fmt.Sprintf("%s%s con %02d/100", prefix, integerWords(whole.IntPart()), cents))
}

func integerWords(n int64) string {
	if n == 0 {
		return "cero"
	}
	var parts []string
	if m := n / 1_000_000; m > 0 {
		if m == 1 {
			parts = append(parts, "un millón")
		} else {
			parts = append(parts, apocope(integerWords(m))+" millones")
		}
		n %= 1_000_000
	}
	if k := n / 1000; k > 0 {
		if k == 1 {
			parts = append(parts, "mil")
		} else {
			parts = append(parts, apocope(below1000(int(k)))+" mil")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, below1000(int(n)))
	}
	return strings.Join(parts, " ")
}

func below1000(n int) string {
	switch {
	case n == 100:
		return "cien"
	case n >= 100:
		rest := n % 100
		if rest == 0 {
			return hundredWords[n/100]
		}
		return hundredWords[n/100] + " " + below1000(rest)
	case n < 30:
		return unitWords[n]
	case n%10 == 0:
		return tenWords[n/10]
	default:
		return tenWords[n/10] + " y " + unitWords[n%10]
	}
}

// apocope acorta "uno" delante de mil y millones: "veintiuno" → "veintiún".
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case strings.HasSuffix(s, "uno"):
		return strings.TrimSuffix(s, "uno") + "un"
	}
	return s
}
