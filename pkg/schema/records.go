package schema

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit distinguishes hour-count lines from monetary expense lines.
type Unit string

const (
	UnitHours   Unit = "hours"
	UnitExpense Unit = "expense"
)

// Category tags a payroll line with the pay component it represents.
// The value is the description prefix used on the wire.
type Category string

const (
	CategoryStdHrs   Category = "Std Hrs"
	CategoryOT1Hrs   Category = "OT1 Hrs"
	CategoryOT2Hrs   Category = "OT2 Hrs"
	CategoryOT3Hrs   Category = "OT3 Hrs"
	CategoryExpenses Category = "Expenses"
	CategoryUnknown  Category = "Unknown"
)

// recognizedCategories is the fixed, ordered set of description prefixes.
// Order matters: it is the classification order, not alphabetical.
var recognizedCategories = []Category{
	CategoryStdHrs,
	CategoryOT1Hrs,
	CategoryOT2Hrs,
	CategoryOT3Hrs,
	CategoryExpenses,
}

// CategoryOf classifies a line by its description prefix. Descriptions that
// start with none of the recognized prefixes classify as CategoryUnknown,
// which is still tracked for matching but can never match an expected key.
func CategoryOf(description string) Category {
	for _, c := range recognizedCategories {
		if strings.HasPrefix(description, string(c)) {
			return c
		}
	}
	return CategoryUnknown
}

// Unit returns the unit a line of this category carries.
func (c Category) Unit() Unit {
	switch c {
	case CategoryExpenses:
		return UnitExpense
	case CategoryStdHrs, CategoryOT1Hrs, CategoryOT2Hrs, CategoryOT3Hrs:
		return UnitHours
	default:
		return ""
	}
}

// IsHours reports whether the category is one of the hour-count tiers.
func (c Category) IsHours() bool {
	return c.Unit() == UnitHours
}

// InputRecord is one row of source timesheet data: one candidate, one
// contract, one week. Constructed once per source row and immutable after.
type InputRecord struct {
	EmployeeRef   string
	ClientName    string
	JobTitle      string
	FirstName     string
	LastName      string
	WeekEnding    string // normalized to YYYY-MM-DD when parseable, else the original trimmed text
	BirthDate     string // raw DD/MM/YYYY text, used only by the date-confusion heuristic
	StandardHours decimal.Decimal
	OvertimeHours decimal.Decimal
	StandardRate  decimal.Decimal
	OvertimeRate  decimal.Decimal
	Expenses      decimal.Decimal // signed: credits appear as negatives
	NetPay        decimal.Decimal // informational only, never drives a line
	SourceRow     int             // 1-indexed position in the source file, header is row 1
}

// LineItem is one derived payroll line. Amount is always a count/multiplier
// (fixed 1 for expense lines); Rate is always the per-unit or total monetary
// value. The two are never interchanged.
type LineItem struct {
	EmployeeID  string          `csv:"employeeid" json:"employeeId"`
	FirstName   string          `csv:"firstname" json:"firstName"`
	Surname     string          `csv:"surname" json:"surname"`
	Description string          `csv:"description" json:"description"`
	Amount      decimal.Decimal `csv:"amount" json:"amount"`
	Rate        decimal.Decimal `csv:"rate" json:"rate"`
	WeekEnding  string          `csv:"weekending" json:"weekEnding"`
	Unit        Unit            `csv:"unit" json:"unit"`
	Category    Category        `csv:"-" json:"category"`
}

// Describe builds the composite description "<Category> - <Client> - <JobTitle>"
// with each segment independently whitespace-normalized.
func Describe(c Category, client, jobTitle string) string {
	return NormalizeSpaces(string(c)) + " - " + NormalizeSpaces(client) + " - " + NormalizeSpaces(jobTitle)
}
