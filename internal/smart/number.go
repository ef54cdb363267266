package smart

import (
	"strconv"
	"strings"
)

// FormatNumber renders n with '.' thousands separators: 1500000 -> "1.500.000".
func FormatNumber(n int64) string {
	neg := n < 0
	digits := strconv.FormatInt(n, 10)
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatOptional is FormatNumber for an amount that may be absent.
func FormatOptional(n *int64) string {
	if n == nil {
		return ""
	}
	return FormatNumber(*n)
}

// ParseNumber strips '.' separators and reads a base-10 integer.
// Empty or non-numeric input yields 0.
func ParseNumber(s string) int64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ".", ""))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatMoney renders an amount in dong for display.
func FormatMoney(n int64) string {
	return FormatNumber(n) + " ₫"
}
