package schema

import "strings"

// Recognized input columns. Where a column has shipped under more than one
// header spelling, the alternates are listed in lookup order and the first
// non-empty match wins.
var (
	colEmployeeRef = []string{"Candidate RefNo"}
	colClientName  = []string{"Client Name"}
	colJobTitle    = []string{"Contract JobTitle"}
	colFirstName   = []string{"Candidate Forename"}
	colLastName    = []string{"Candidate Surname"}
	colWeekEnding  = []string{"Weekending"}
	colBirthDate   = []string{"Candidate DOB"}
	colStdHours    = []string{"Std1 Hrs", "Std Hrs"}
	colOTHours     = []string{"OT1 Hrs", "OT1 HR"}
	colStdRate     = []string{"Std Rate", "Rate"}
	colOTRate      = []string{"OT1 Rate"}
	colExpenses    = []string{"Expenses"}
	colNetPay      = []string{"Net Pay"}
)

// Output columns of the payroll line-item format, as read back from an
// external producer's file.
const (
	outEmployeeID  = "employeeid"
	outFirstName   = "firstname"
	outSurname     = "surname"
	outDescription = "description"
	outAmount      = "amount"
	outRate        = "rate"
	outWeekEnding  = "weekending"
	outUnit        = "unit"
)

func lookup(row map[string]string, names []string) string {
	for _, n := range names {
		if v, ok := row[n]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// RecordFromRow builds one InputRecord from a parsed header→value row map.
// Total: malformed numerics degrade to zero, an unparseable week-ending is
// carried through as its original trimmed text.
func RecordFromRow(row map[string]string, sourceRow int) InputRecord {
	return InputRecord{
		EmployeeRef:   NormalizeSpaces(lookup(row, colEmployeeRef)),
		ClientName:    lookup(row, colClientName),
		JobTitle:      lookup(row, colJobTitle),
		FirstName:     NormalizeSpaces(lookup(row, colFirstName)),
		LastName:      NormalizeSpaces(lookup(row, colLastName)),
		WeekEnding:    ParseWeekEnding(lookup(row, colWeekEnding)),
		BirthDate:     strings.TrimSpace(lookup(row, colBirthDate)),
		StandardHours: ParseDecimal(lookup(row, colStdHours)),
		OvertimeHours: ParseDecimal(lookup(row, colOTHours)),
		StandardRate:  ParseDecimal(lookup(row, colStdRate)),
		OvertimeRate:  ParseDecimal(lookup(row, colOTRate)),
		Expenses:      ParseDecimal(lookup(row, colExpenses)),
		NetPay:        ParseDecimal(lookup(row, colNetPay)),
		SourceRow:     sourceRow,
	}
}

// Records converts parsed rows into InputRecords, numbering rows from 2
// (row 1 is the header).
func Records(rows []map[string]string) []InputRecord {
	out := make([]InputRecord, 0, len(rows))
	for i, row := range rows {
		out = append(out, RecordFromRow(row, i+2))
	}
	return out
}

// LineItemFromRow builds one LineItem from a row of an externally produced
// line-item file. The category is inferred from the description prefix.
func LineItemFromRow(row map[string]string) LineItem {
	desc := strings.TrimSpace(row[outDescription])
	return LineItem{
		EmployeeID:  strings.TrimSpace(row[outEmployeeID]),
		FirstName:   strings.TrimSpace(row[outFirstName]),
		Surname:     strings.TrimSpace(row[outSurname]),
		Description: desc,
		Amount:      ParseDecimal(row[outAmount]),
		Rate:        ParseDecimal(row[outRate]),
		WeekEnding:  strings.TrimSpace(row[outWeekEnding]),
		Unit:        Unit(strings.TrimSpace(row[outUnit])),
		Category:    CategoryOf(desc),
	}
}

// LineItems converts parsed rows into LineItems.
func LineItems(rows []map[string]string) []LineItem {
	out := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, LineItemFromRow(row))
	}
	return out
}
