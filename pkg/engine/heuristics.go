package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"payline/pkg/schema"
)

// Default heuristic thresholds. These are pattern-matching tunables, not
// exact derivations: an hours count above DefaultSwapAmountMin sitting next
// to a rate at or below DefaultSwapRateMax is taken as evidence the two
// fields were written to the wrong columns, and DefaultBirthDateYear is the
// year a confused producer was observed attaching to date-of-birth values.
const (
	DefaultSwapAmountMin = 100
	DefaultSwapRateMax   = 10
	DefaultBirthDateYear = 2025
)

// Heuristics holds the tunable constants of the targeted checks. The zero
// value means "use the defaults above"; a struct with any field set is taken
// literally, so an explicit zero threshold stays zero.
type Heuristics struct {
	SwapAmountMin decimal.Decimal
	SwapRateMax   decimal.Decimal
	BirthDateYear int
}

func (h Heuristics) withDefaults() Heuristics {
	if h.SwapAmountMin.IsZero() && h.SwapRateMax.IsZero() && h.BirthDateYear == 0 {
		return Heuristics{
			SwapAmountMin: decimal.NewFromInt(DefaultSwapAmountMin),
			SwapRateMax:   decimal.NewFromInt(DefaultSwapRateMax),
			BirthDateYear: DefaultBirthDateYear,
		}
	}
	return h
}

// LooksSwapped reports whether an hour-line's amount and rate look
// transposed: amount strictly above the threshold while the rate sits at or
// below a plausible-hours value. Non-hour categories never match.
func (h Heuristics) LooksSwapped(c schema.Category, amount, rate decimal.Decimal) bool {
	if !c.IsHours() {
		return false
	}
	h = h.withDefaults()
	return amount.GreaterThan(h.SwapAmountMin) && rate.LessThanOrEqual(h.SwapRateMax)
}

// BirthDateAlias synthesizes the ISO date a date-confused producer would
// emit from a DD/MM/... birth date: the birth day and month joined to the
// configured year. Returns false when the birth date is absent or malformed.
func (h Heuristics) BirthDateAlias(birthDate string) (string, bool) {
	h = h.withDefaults()
	parts := strings.Split(strings.TrimSpace(birthDate), "/")
	if len(parts) < 2 {
		return "", false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", h.BirthDateYear, month, day), true
}

// MatchesBirthDate reports whether a line's week-ending equals the date
// synthesized from the input's birth date.
func (h Heuristics) MatchesBirthDate(lineDate, birthDate string) bool {
	alias, ok := h.BirthDateAlias(birthDate)
	return ok && alias == strings.TrimSpace(lineDate)
}
