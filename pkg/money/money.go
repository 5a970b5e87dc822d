// Package money formatea importes en reales (pt-BR).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format "R$ 1.234,50". Redondea a dos decimales.
func Format(d decimal.Decimal) string {
	return "R$ " + Number(d)
}

// Number "1.234,50" sin símbolo.
func Number(d decimal.Decimal) string {
	f := d.Round(2).InexactFloat64()
	return printer.Sprint(number.Decimal(f, number.Scale(2)))
}
