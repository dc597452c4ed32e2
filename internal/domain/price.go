package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePriceThousands reads a price whose first "." is a thousands
// separator: "12.500" is 12500. Only the first "." is dropped, so
// "1.250.000" reads as 1250.
func ParsePriceThousands(price string) (decimal.Decimal, bool) {
	return parseLeadingDecimal(strings.Replace(price, ".", "", 1))
}

// ParsePriceRaw reads the price string as a plain decimal number: "12.500"
// is 12.5.
func ParsePriceRaw(price string) (decimal.Decimal, bool) {
	return parseLeadingDecimal(price)
}

// parseLeadingDecimal parses the longest numeric prefix of s after leading
// whitespace, so "2.500 CLP" reads as 2.5 and "1e4" as 10000. It reports
// false when there is no numeric prefix at all.
func parseLeadingDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	end, mantissaEnd := 0, len(s)
	seenDigit, seenDot := false, false
scan:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
		default:
			mantissaEnd = i
			break scan
		}
	}
	if !seenDigit {
		return decimal.Zero, false
	}

	num := s[:end]
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	num += exponent(s[mantissaEnd:])
	d, err := decimal.NewFromString(sign + num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// exponent returns the "e" part at the start of s, or "" when s does not
// start with a complete one.
func exponent(s string) string {
	if len(s) < 2 || (s[0] != 'e' && s[0] != 'E') {
		return ""
	}
	i := 1
	if s[i] == '-' || s[i] == '+' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return "e" + s[1:i]
}
