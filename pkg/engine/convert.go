package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"payline/pkg/schema"
)

// headerRefNoLabel is the identity column's header text. A data row carrying
// it means a header row leaked back in through a re-parse; such rows are
// skipped.
const headerRefNoLabel = "candidate refno"

// Rules selects between the two observed gatings of the expense line. The
// converter's signed gate is canonical; the positive-only variant survives as
// an option so the generator and the reconciler can be switched together and
// never disagree.
type Rules struct {
	// PositiveExpensesOnly suppresses expense lines for negative amounts
	// (credits/refunds). Default false: any non-zero expense emits a line.
	PositiveExpensesOnly bool
}

func (r Rules) expenseDriven(expenses decimal.Decimal) bool {
	if r.PositiveExpensesOnly {
		return expenses.IsPositive()
	}
	return !expenses.IsZero()
}

// Convert maps one input record to its payroll line items, in fixed order:
// Expenses, Std Hrs, OT1 Hrs. Each line is gated on its own driving values
// being non-zero; a record missing identity or week-ending fields produces
// nothing. Pure and total: it never fails, and never emits a zero-driven
// line.
func Convert(rec schema.InputRecord, rules Rules) []schema.LineItem {
	employeeID := strings.TrimSpace(rec.EmployeeRef)
	firstName := strings.TrimSpace(rec.FirstName)
	surname := strings.TrimSpace(rec.LastName)
	weekEnding := strings.TrimSpace(rec.WeekEnding)

	if employeeID == "" || firstName == "" || surname == "" || weekEnding == "" {
		return nil
	}
	if strings.EqualFold(employeeID, headerRefNoLabel) {
		return nil
	}

	var out []schema.LineItem
	emit := func(c schema.Category, amount, rate decimal.Decimal) {
		out = append(out, schema.LineItem{
			EmployeeID:  employeeID,
			FirstName:   firstName,
			Surname:     surname,
			Description: schema.Describe(c, rec.ClientName, rec.JobTitle),
			Amount:      amount,
			Rate:        rate,
			WeekEnding:  weekEnding,
			Unit:        c.Unit(),
			Category:    c,
		})
	}

	if rules.expenseDriven(rec.Expenses) {
		emit(schema.CategoryExpenses, decimal.NewFromInt(1), rec.Expenses)
	}
	if !rec.StandardHours.IsZero() && !rec.StandardRate.IsZero() {
		emit(schema.CategoryStdHrs, rec.StandardHours, rec.StandardRate)
	}
	if !rec.OvertimeHours.IsZero() && !rec.OvertimeRate.IsZero() {
		emit(schema.CategoryOT1Hrs, rec.OvertimeHours, rec.OvertimeRate)
	}
	return out
}

// ExpectedLines applies Convert to every record and flattens the result into
// one expected line-item sequence, in input order.
func ExpectedLines(records []schema.InputRecord, rules Rules) []schema.LineItem {
	var out []schema.LineItem
	for _, rec := range records {
		out = append(out, Convert(rec, rules)...)
	}
	return out
}
