package engine

import "payline/pkg/schema"

// Key is the composite matching key for line items. It is assumed unique per
// set but never enforced: both groupings keep an ordered slice per key so
// duplicates are matched positionally and reported, not collapsed.
type Key struct {
	EmployeeID string
	WeekEnding string
	Category   schema.Category
}

func keyOf(li schema.LineItem) Key {
	return Key{EmployeeID: li.EmployeeID, WeekEnding: li.WeekEnding, Category: li.Category}
}

// groupLines groups line items by composite key, preserving input order
// within each key.
func groupLines(items []schema.LineItem) map[Key][]schema.LineItem {
	grouped := make(map[Key][]schema.LineItem, len(items))
	for _, li := range items {
		k := keyOf(li)
		grouped[k] = append(grouped[k], li)
	}
	return grouped
}

// recordKey joins input records to actual lines for the targeted checks.
type recordKey struct {
	EmployeeID string
	WeekEnding string
}

// RecordIndex provides lookup of input records by employee/week and by
// employee alone (the date-confusion check matches across weeks).
type RecordIndex struct {
	ByEmployeeWeek map[recordKey][]schema.InputRecord
	ByEmployee     map[string][]schema.InputRecord
}

// BuildRecordIndex indexes input records for the reconciliation checks. The
// week side of the key is the normalized ISO form already carried by the
// record, so both sides of every date comparison are normalized.
func BuildRecordIndex(records []schema.InputRecord) *RecordIndex {
	idx := &RecordIndex{
		ByEmployeeWeek: make(map[recordKey][]schema.InputRecord, len(records)),
		ByEmployee:     make(map[string][]schema.InputRecord, len(records)),
	}
	for _, rec := range records {
		if rec.EmployeeRef == "" {
			continue
		}
		k := recordKey{EmployeeID: rec.EmployeeRef, WeekEnding: rec.WeekEnding}
		idx.ByEmployeeWeek[k] = append(idx.ByEmployeeWeek[k], rec)
		idx.ByEmployee[rec.EmployeeRef] = append(idx.ByEmployee[rec.EmployeeRef], rec)
	}
	return idx
}
