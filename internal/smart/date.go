// Package smart parses the loose shorthand people type into quick-entry
// fields: compact dates, dotted amounts and "title - date - amount" lines.
// Nothing here returns an error; unparseable input falls back silently.
package smart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/freeflow/internal/domain"
)

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonDigits      = regexp.MustCompile(`\D+`)
)

// ParseDate normalises input to YYYY-MM-DD relative to the wall clock.
func ParseDate(input string) string {
	return ParseDateFrom(input, time.Now())
}

// ParseDateFrom normalises input to YYYY-MM-DD, filling a missing month or
// year from now. Input that cannot be read is returned unchanged.
func ParseDateFrom(input string, now time.Time) string {
	out, _ := ResolveDate(input, now)
	return out
}

// ResolveDate is ParseDateFrom with an explicit success flag. ok is false
// whenever the returned string is the untouched input.
//
// Accepted shapes:
//
//	134       day 13, month 4
//	1304      day 13, month 04
//	130425    day 13, month 04, year 2025
//	13042025  day 13, month 04, year 2025
//	13/4, 13.04.25, 13 4 2025
func ResolveDate(input string, now time.Time) (string, bool) {
	if isoDatePattern.MatchString(input) {
		return input, true
	}

	tokens := strings.Fields(nonDigits.ReplaceAllString(input, " "))
	if len(tokens) == 0 {
		return input, false
	}

	var dayTok, monthTok, yearTok string
	if len(tokens) == 1 {
		tok := tokens[0]
		switch {
		case len(tok) == 3:
			dayTok, monthTok = tok[:2], tok[2:]
		case len(tok) == 4:
			dayTok, monthTok = tok[:2], tok[2:]
		case len(tok) >= 6:
			dayTok, monthTok, yearTok = tok[:2], tok[2:4], tok[4:]
		default:
			return input, false
		}
	} else {
		dayTok, monthTok = tokens[0], tokens[1]
		if len(tokens) > 2 {
			yearTok = tokens[2]
		}
	}

	day, err := strconv.Atoi(dayTok)
	if err != nil {
		return input, false
	}
	month, err := strconv.Atoi(monthTok)
	if err != nil {
		return input, false
	}
	year, ok := expandYear(yearTok, now)
	if !ok {
		return input, false
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return input, false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// expandYear reads a 2- or 4-digit year; empty means the current year.
func expandYear(tok string, now time.Time) (int, bool) {
	switch len(tok) {
	case 0:
		return now.Year(), true
	case 2:
		tok = "20" + tok
	case 4:
	default:
		return 0, false
	}
	y, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return y, true
}

// Today formats now as a canonical date.
func Today(now time.Time) string {
	return now.Format(domain.DateLayout)
}
