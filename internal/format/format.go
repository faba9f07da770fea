package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theyuvrajyadav/currency-converter/internal/model"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"CNY": "¥",
	"RUB": "₽",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
}

// Currencies conventionally displayed without decimal places.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
}

// Amount renders a monetary amount with its currency symbol and thousands
// separators, e.g. $1,234.56. Codes without a known symbol keep the code
// itself as prefix.
func Amount(code string, value float64) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}
	if zeroDecimal[code] {
		return symbol + group(strconv.FormatFloat(value, 'f', 0, 64))
	}
	return symbol + group(strconv.FormatFloat(value, 'f', 2, 64))
}

// Result renders the plain result line: "100.00 USD = 92.00 EUR".
func Result(res model.ConversionResult) string {
	return fmt.Sprintf("%.2f %s = %.2f %s", res.Amount, res.From, res.Result, res.To)
}

// Pretty renders the symbol form of a conversion plus the rate and, when
// known, the provider's last-update timestamp.
func Pretty(res model.ConversionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s\n", Amount(res.From, res.Amount), Amount(res.To, res.Result))
	fmt.Fprintf(&b, "Exchange rate: 1 %s = %.4f %s", res.From, res.Rate, res.To)
	if res.LastUpdated != "" {
		fmt.Fprintf(&b, "\nLast updated: %s", res.LastUpdated)
	}
	return b.String()
}

// group inserts comma thousands separators into a formatted number.
func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	n := len(intPart)
	if n <= 3 {
		if hasFrac {
			return intPart + "." + frac
		}
		return intPart
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
