package smart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestParseDateFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso passthrough", "2024-12-20", "2024-12-20"},
		{"iso passthrough even if impossible", "2024-13-45", "2024-13-45"},
		{"padded iso is not strict", " 2024-12-20 ", " 2024-12-20 "},
		{"three digits", "134", "2025-04-13"},
		{"four digits", "1304", "2025-04-13"},
		{"six digits", "130425", "2025-04-13"},
		{"eight digits", "13042026", "2026-04-13"},
		{"slashes", "13/4/25", "2025-04-13"},
		{"dots", "01.12.2024", "2024-12-01"},
		{"day and month only", "5/6", "2025-06-05"},
		{"mixed separators", " 7 - 8 ", "2025-08-07"},
		{"extra tokens ignored", "1/2/2026/99", "2026-02-01"},
		{"no calendar check", "31/2", "2025-02-31"},
		{"month out of range", "9999", "9999"},
		{"day zero", "0004", "0004"},
		{"two digits", "13", "13"},
		{"five digits", "13042", "13042"},
		{"seven digits", "1304202", "1304202"},
		{"odd year length", "1/2/202", "1/2/202"},
		{"letters only", "tomorrow", "tomorrow"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDateFrom(tc.input, baseTime))
		})
	}
}

func TestResolveDate_ReportsFailure(t *testing.T) {
	out, ok := ResolveDate("9999", baseTime)
	assert.False(t, ok)
	assert.Equal(t, "9999", out)

	out, ok = ResolveDate("134", baseTime)
	assert.True(t, ok)
	assert.Equal(t, "2025-04-13", out)
}

func TestParseDate_CompactRoundTrip(t *testing.T) {
	for year := 2000; year <= 2099; year += 7 {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 9, 10, 28, 31} {
				d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
				compact := twoDigits(day) + twoDigits(month) + d.Format("06")
				want := d.Format("2006-01") + "-" + twoDigits(day)
				assert.Equal(t, want, ParseDateFrom(compact, baseTime), compact)
			}
		}
	}
}

func TestParseDate_UsesWallClockYear(t *testing.T) {
	got := ParseDate("134")
	assert.Equal(t, time.Now().Format("2006")+"-04-13", got)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
