package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first sheet of an XLSX workbook into the same
// header -> value row maps StreamParse produces, so downstream code is
// indifferent to whether the agency exported CSV or a spreadsheet.
func ParseWorkbook(path string) (*ParseResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet: no header row found")
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	result := &ParseResult{}
	for i, row := range rows[1:] {
		// excelize drops trailing empty cells, so short rows are routine
		// here; only over-long rows are worth a warning.
		rowNum := i + 2
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			record := make(map[string]string, len(headers))
			for j, h := range headers {
				record[h] = padded[j]
			}
			result.Records = append(result.Records, record)
			continue
		}
		record, warn := assembleRow(headers, row, rowNum)
		if warn != nil {
			result.Warnings = append(result.Warnings, *warn)
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return nil, fmt.Errorf("sheet contains no data rows")
	}
	return result, nil
}
