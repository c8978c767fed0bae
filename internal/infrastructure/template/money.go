package template

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands grouping: "$1,234.50" for USD
// and "1,234.50 R$" for Robux.
func FormatMoney(amount decimal.Decimal, currency string) string {
	f, _ := amount.Round(2).Float64()
	s := printer.Sprint(number.Decimal(f, number.Scale(2)))
	if currency == billing.CurrencyRBX.String() {
		return s + " R$"
	}
	return "$" + s
}

// FormatHours renders hours with two decimals.
func FormatHours(hours decimal.Decimal) string {
	return hours.StringFixed(2)
}
