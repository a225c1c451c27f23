package engine

import (
	"fmt"

	"payline/pkg/schema"
)

// Options configures a reconciliation run. The same Rules drive both the
// expected derivation and the checks, so the generator and the reconciler
// can never disagree on what a record should have produced.
type Options struct {
	Rules      Rules
	Heuristics Heuristics
}

// Reconcile derives the expected line items from the input records and
// compares an external producer's actual output against them. Findings come
// back as an ordered sequence: surplus actual lines first, then missing
// expected lines, then the targeted per-line checks. Nothing is deduplicated
// and nothing interrupts the run.
func Reconcile(records []schema.InputRecord, actual []schema.LineItem, opts Options) []Anomaly {
	heur := opts.Heuristics.withDefaults()
	expected := ExpectedLines(records, opts.Rules)
	expByKey := groupLines(expected)
	actByKey := groupLines(actual)
	idx := BuildRecordIndex(records)

	var anomalies []Anomaly

	// Surplus actual lines. Occurrences are matched positionally per key, so
	// a duplicated key with more actual than expected lines reports each
	// surplus occurrence instead of collapsing them.
	knownIDs := uniqueEmployeeIDs(records)
	occurrence := make(map[Key]int, len(actByKey))
	for _, li := range actual {
		k := keyOf(li)
		n := occurrence[k]
		occurrence[k] = n + 1
		if n < len(expByKey[k]) {
			continue
		}
		a := Anomaly{
			Kind:        AnomalyExtraLine,
			EmployeeID:  li.EmployeeID,
			WeekEnding:  li.WeekEnding,
			Category:    li.Category,
			Amount:      schema.FormatDecimal(li.Amount),
			Rate:        schema.FormatDecimal(li.Rate),
			Explanation: fmt.Sprintf("line %q exists in output but is not derivable from the input", li.Description),
		}
		if len(idx.ByEmployee[li.EmployeeID]) == 0 {
			if hint, ok := closestEmployeeID(li.EmployeeID, knownIDs); ok {
				a.Hint = fmt.Sprintf("employee id %q is unknown; closest known id is %q", li.EmployeeID, hint)
			}
		}
		anomalies = append(anomalies, a)
	}

	// Missing expected lines, the symmetric check.
	occurrence = make(map[Key]int, len(expByKey))
	for _, li := range expected {
		k := keyOf(li)
		n := occurrence[k]
		occurrence[k] = n + 1
		if n < len(actByKey[k]) {
			continue
		}
		a := Anomaly{
			Kind:        AnomalyMissingLine,
			EmployeeID:  li.EmployeeID,
			WeekEnding:  li.WeekEnding,
			Category:    li.Category,
			Amount:      schema.FormatDecimal(li.Amount),
			Rate:        schema.FormatDecimal(li.Rate),
			Explanation: fmt.Sprintf("expected %s line for %s week %s is not present in output", li.Category, li.EmployeeID, li.WeekEnding),
		}
		// An expected line always traces back to an input record.
		if recs := idx.ByEmployeeWeek[recordKey{EmployeeID: li.EmployeeID, WeekEnding: li.WeekEnding}]; len(recs) > 0 {
			a.SourceRow = recs[0].SourceRow
		}
		anomalies = append(anomalies, a)
	}

	// Targeted per-line checks against the input records sharing the line's
	// employee/week. Evaluated per (line, record) pair, like the findings
	// they reproduce; overlap with the checks above is intentional.
	for _, li := range actual {
		lineKey := recordKey{EmployeeID: li.EmployeeID, WeekEnding: li.WeekEnding}
		for _, rec := range idx.ByEmployeeWeek[lineKey] {
			if li.Category == schema.CategoryOT1Hrs && rec.OvertimeHours.IsZero() {
				anomalies = append(anomalies, Anomaly{
					Kind:        AnomalyZeroDriverLine,
					EmployeeID:  li.EmployeeID,
					WeekEnding:  li.WeekEnding,
					Category:    li.Category,
					Amount:      schema.FormatDecimal(li.Amount),
					Rate:        schema.FormatDecimal(li.Rate),
					SourceRow:   rec.SourceRow,
					Explanation: fmt.Sprintf("OT1 line created but input OT1 Hrs = 0 (OT1 Rate = %s)", schema.FormatDecimal(rec.OvertimeRate)),
				})
			}
			if li.Category == schema.CategoryExpenses && rec.Expenses.IsZero() {
				anomalies = append(anomalies, Anomaly{
					Kind:        AnomalyZeroDriverLine,
					EmployeeID:  li.EmployeeID,
					WeekEnding:  li.WeekEnding,
					Category:    li.Category,
					Amount:      schema.FormatDecimal(li.Amount),
					Rate:        schema.FormatDecimal(li.Rate),
					SourceRow:   rec.SourceRow,
					Explanation: fmt.Sprintf("Expenses line created but input Expenses = 0 (OT1 Rate = %s may have been confused)", schema.FormatDecimal(rec.OvertimeRate)),
				})
			}
			if heur.LooksSwapped(li.Category, li.Amount, li.Rate) {
				anomalies = append(anomalies, Anomaly{
					Kind:        AnomalySwappedAmountRate,
					EmployeeID:  li.EmployeeID,
					WeekEnding:  li.WeekEnding,
					Category:    li.Category,
					Amount:      schema.FormatDecimal(li.Amount),
					Rate:        schema.FormatDecimal(li.Rate),
					SourceRow:   rec.SourceRow,
					Explanation: fmt.Sprintf("amount (%s) and rate (%s) appear to be swapped", schema.FormatDecimal(li.Amount), schema.FormatDecimal(li.Rate)),
				})
			}
		}

		// Date confusion: a line whose week-ending matches no week this
		// employee worked, but equals a date synthesized from the birth
		// date. Lines on a genuine week are exempt, so an employee whose
		// real week-ending happens to coincide with the alias is never
		// flagged through their other weeks' records.
		if len(idx.ByEmployeeWeek[lineKey]) > 0 {
			continue
		}
		for _, rec := range idx.ByEmployee[li.EmployeeID] {
			if heur.MatchesBirthDate(li.WeekEnding, rec.BirthDate) {
				anomalies = append(anomalies, Anomaly{
					Kind:         AnomalyMismatchedDate,
					EmployeeID:   li.EmployeeID,
					WeekEnding:   li.WeekEnding,
					Category:     li.Category,
					ExpectedDate: rec.WeekEnding,
					ActualDate:   li.WeekEnding,
					SourceRow:    rec.SourceRow,
					Explanation:  fmt.Sprintf("weekending %s appears to use date of birth (%s) instead of %s", li.WeekEnding, rec.BirthDate, rec.WeekEnding),
				})
			}
		}
	}

	return anomalies
}

// uniqueEmployeeIDs collects employee ids from the records in first-seen
// order, for deterministic typo hints.
func uniqueEmployeeIDs(records []schema.InputRecord) []string {
	seen := make(map[string]bool, len(records))
	var ids []string
	for _, rec := range records {
		if rec.EmployeeRef == "" || seen[rec.EmployeeRef] {
			continue
		}
		seen[rec.EmployeeRef] = true
		ids = append(ids, rec.EmployeeRef)
	}
	return ids
}
