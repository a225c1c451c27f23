package report

import (
	"testing"

	"payline/pkg/engine"
	"payline/pkg/schema"
)

func sampleAnomalies() []engine.Anomaly {
	return []engine.Anomaly{
		{Kind: engine.AnomalyExtraLine, EmployeeID: "RF9999", WeekEnding: "2025-03-07", Category: schema.CategoryStdHrs, Explanation: "extra"},
		{Kind: engine.AnomalyZeroDriverLine, EmployeeID: "RF5678", WeekEnding: "2025-03-07", Category: schema.CategoryOT1Hrs, Explanation: "zero driver"},
		{Kind: engine.AnomalySwappedAmountRate, EmployeeID: "RF5678", WeekEnding: "2025-03-07", Category: schema.CategoryStdHrs, Explanation: "swapped"},
		{Kind: engine.AnomalyMissingLine, EmployeeID: "RF1234", WeekEnding: "2025-03-07", Category: schema.CategoryStdHrs, Explanation: "missing"},
		{Kind: engine.AnomalyMismatchedDate, EmployeeID: "RF1234", WeekEnding: "2025-07-14", Category: schema.CategoryStdHrs, Explanation: "dob"},
	}
}

func TestBuild(t *testing.T) {
	records := make([]schema.InputRecord, 3)
	expected := make([]schema.LineItem, 4)
	actual := make([]schema.LineItem, 5)

	rep := Build(records, expected, actual, sampleAnomalies())

	if rep.RunID == "" {
		t.Error("RunID is empty")
	}
	if rep.InputRecords != 3 || rep.ExpectedLines != 4 || rep.ActualLines != 5 {
		t.Errorf("totals = %d/%d/%d, want 3/4/5", rep.InputRecords, rep.ExpectedLines, rep.ActualLines)
	}
	if rep.Clean {
		t.Error("Clean = true with anomalies present")
	}

	want := Summary{ExtraLines: 1, MissingLines: 1, ZeroDriver: 1, SwappedFields: 1, MismatchedDate: 1}
	if rep.Summary != want {
		t.Errorf("Summary = %+v, want %+v", rep.Summary, want)
	}

	// Employee groups sorted by id.
	if len(rep.Employees) != 3 {
		t.Fatalf("len(Employees) = %d, want 3", len(rep.Employees))
	}
	wantIDs := []string{"RF1234", "RF5678", "RF9999"}
	for i, id := range wantIDs {
		if rep.Employees[i].EmployeeID != id {
			t.Errorf("Employees[%d] = %q, want %q", i, rep.Employees[i].EmployeeID, id)
		}
	}
	if len(rep.Employees[0].Anomalies) != 2 {
		t.Errorf("RF1234 anomaly count = %d, want 2", len(rep.Employees[0].Anomalies))
	}
}

func TestBuild_Clean(t *testing.T) {
	rep := Build(nil, nil, nil, nil)
	if !rep.Clean {
		t.Error("Clean = false with no anomalies")
	}
	if len(rep.Anomalies) != 0 || len(rep.Employees) != 0 {
		t.Error("clean report carries findings")
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	rep := Build(make([]schema.InputRecord, 2), nil, make([]schema.LineItem, 1), sampleAnomalies())

	data, err := rep.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if back.RunID != rep.RunID {
		t.Errorf("RunID = %q, want %q", back.RunID, rep.RunID)
	}
	if back.Summary != rep.Summary {
		t.Errorf("Summary = %+v, want %+v", back.Summary, rep.Summary)
	}
	if len(back.Anomalies) != len(rep.Anomalies) {
		t.Errorf("len(Anomalies) = %d, want %d", len(back.Anomalies), len(rep.Anomalies))
	}
}
