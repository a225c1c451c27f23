// Package report compiles a reconciliation run into a structured, portable
// summary. Presentation (console, log shipping) stays outside the core; this
// package only shapes the data.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"payline/pkg/engine"
	"payline/pkg/schema"
)

// Summary counts findings per anomaly kind.
type Summary struct {
	ExtraLines     int `json:"extraLines"`
	MissingLines   int `json:"missingLines"`
	ZeroDriver     int `json:"zeroDriver"`
	SwappedFields  int `json:"swappedFields"`
	MismatchedDate int `json:"mismatchedDate"`
}

// EmployeeFindings groups one employee's anomalies, in detection order.
type EmployeeFindings struct {
	EmployeeID string           `json:"employeeId"`
	Anomalies  []engine.Anomaly `json:"anomalies"`
}

// RunReport is the compiled outcome of one verification run.
type RunReport struct {
	RunID         string             `json:"runId"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	InputRecords  int                `json:"inputRecords"`
	ExpectedLines int                `json:"expectedLines"`
	ActualLines   int                `json:"actualLines"`
	Clean         bool               `json:"clean"`
	Summary       Summary            `json:"summary"`
	Anomalies     []engine.Anomaly   `json:"anomalies"`
	Employees     []EmployeeFindings `json:"employees"`
}

// Build compiles anomalies and set sizes into a RunReport with a fresh run
// id. Employee groups are sorted by id; anomalies inside each group keep
// detection order.
func Build(records []schema.InputRecord, expected, actual []schema.LineItem, anomalies []engine.Anomaly) *RunReport {
	rep := &RunReport{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		InputRecords:  len(records),
		ExpectedLines: len(expected),
		ActualLines:   len(actual),
		Clean:         len(anomalies) == 0,
		Anomalies:     anomalies,
	}

	byEmployee := make(map[string][]engine.Anomaly)
	for _, a := range anomalies {
		countAnomaly(&rep.Summary, a.Kind)
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	ids := make([]string, 0, len(byEmployee))
	for id := range byEmployee {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rep.Employees = append(rep.Employees, EmployeeFindings{
			EmployeeID: id,
			Anomalies:  byEmployee[id],
		})
	}

	return rep
}

// countAnomaly increments the counter for the given kind. The switch is
// exhaustive over the closed kind set.
func countAnomaly(s *Summary, kind engine.AnomalyKind) {
	switch kind {
	case engine.AnomalyExtraLine:
		s.ExtraLines++
	case engine.AnomalyMissingLine:
		s.MissingLines++
	case engine.AnomalyZeroDriverLine:
		s.ZeroDriver++
	case engine.AnomalySwappedAmountRate:
		s.SwappedFields++
	case engine.AnomalyMismatchedDate:
		s.MismatchedDate++
	}
}

// JSON renders the report for transfer or archival.
func (r *RunReport) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}
	return data, nil
}

// Parse reconstructs a report from its JSON form.
func Parse(data []byte) (*RunReport, error) {
	var rep RunReport
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &rep, nil
}
