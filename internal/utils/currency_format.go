package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmountWithSymbol renders an amount with a currency symbol and
// comma-grouped integer part, following the symbol-first convention used
// on the application forms.
// Example: 1000 with "$" returns "$1,000"; 1234.5 with "C$" returns
// "C$1,234.50". Whole amounts drop the decimal part.
func FormatAmountWithSymbol(amount decimal.Decimal, symbol string) string {
	var body string
	if amount.Equal(amount.Truncate(0)) {
		body = groupThousands(amount.Truncate(0).String())
	} else {
		fixed := amount.StringFixed(2)
		intPart, fracPart, _ := strings.Cut(fixed, ".")
		body = groupThousands(intPart) + "." + fracPart
	}
	return symbol + body
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
