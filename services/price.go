package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var priceDigits = regexp.MustCompile(`-?\d[\d.]*`)

// Amount is a price that decodes from either a JSON number or a
// currency-formatted string such as "₹15,420.50".
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("price must be a number or string: %w", err)
	}
	v, ok := NormalizePrice(s)
	if !ok {
		return fmt.Errorf("invalid price %q", s)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}

// NormalizePrice extracts the numeric value from a formatted price string.
// Currency symbols and thousands separators are dropped.
func NormalizePrice(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(s, ",", "")
	match := priceDigits.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatPrice renders a whole-unit price with thousands separators,
// e.g. FormatPrice(5420, "INR") == "₹5,420".
func FormatPrice(amount float64, currency string) string {
	p := message.NewPrinter(language.English)
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		return p.Sprintf("%.0f %s", amount, currency)
	}
	return symbol + p.Sprintf("%.0f", amount)
}
