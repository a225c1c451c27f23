package schema

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pre-compiled regular expression for whitespace collapsing.
var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeSpaces trims the string and collapses any run of whitespace to a
// single space. Total: never fails.
func NormalizeSpaces(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseDecimal parses tolerant decimal text. Thousands separators are
// stripped before parsing; empty or unparseable input yields zero, never an
// error. The result is canonical: its text form carries no trailing
// fractional zeros, so values survive format/parse round-trips exactly.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	// Re-parse the trimmed rendering so "37.50" and "37.5" are the same value
	// with the same representation.
	canonical, err := decimal.NewFromString(FormatDecimal(d))
	if err != nil {
		return d
	}
	return canonical
}

// FormatDecimal renders a decimal without scientific notation, without
// trailing fractional zeros and without a dangling decimal point. Exact zero
// renders as "0".
func FormatDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// weekEndingLayouts are tried in order. Single-digit days and months are
// accepted in both.
var weekEndingLayouts = []string{"2/1/2006", "2/1/06"}

// ParseWeekEnding converts a week-ending date to ISO YYYY-MM-DD. Accepted
// forms, in order: day/month/4-digit-year, day/month/2-digit-year (expanded
// into the 2000s), then ISO passthrough. Anything else is returned as the
// original trimmed text; callers treat a non-ISO result as a data-quality
// issue, not a failure.
func ParseWeekEnding(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range weekEndingLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Two-digit years always land in the 2000s. time.Parse windows
		// 69-99 into the 1900s, so lift those forward.
		if t.Year() < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}
