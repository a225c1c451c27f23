package engine

import "payline/pkg/schema"

// AnomalyKind classifies a detected deviation between an expected derivation
// and an actual output.
type AnomalyKind string

const (
	AnomalyExtraLine         AnomalyKind = "EXTRA_LINE"
	AnomalyMissingLine       AnomalyKind = "MISSING_LINE"
	AnomalyZeroDriverLine    AnomalyKind = "ZERO_DRIVER_LINE"
	AnomalySwappedAmountRate AnomalyKind = "SWAPPED_AMOUNT_RATE"
	AnomalyMismatchedDate    AnomalyKind = "MISMATCHED_DATE"
)

// Anomaly is one reconciliation finding. Anomalies are derived per run, never
// persisted, and surfaced in evaluation order without deduplication.
type Anomaly struct {
	Kind       AnomalyKind     `json:"kind"`
	EmployeeID string          `json:"employeeId"`
	WeekEnding string          `json:"weekEnding"`
	Category   schema.Category `json:"category"`

	// Evidence: the offending values, rendered as plain decimal/ISO text,
	// and the 1-indexed input row the finding traces back to (0 when no
	// input row owns the line, as for extra lines under an unknown key).
	Amount       string `json:"amount,omitempty"`
	Rate         string `json:"rate,omitempty"`
	ExpectedDate string `json:"expectedDate,omitempty"`
	ActualDate   string `json:"actualDate,omitempty"`
	SourceRow    int    `json:"sourceRow,omitempty"`

	// Hint carries a nearest-known-employee suggestion on extra lines whose
	// employee id matches nothing in the input.
	Hint string `json:"hint,omitempty"`

	Explanation string `json:"explanation"`
}
