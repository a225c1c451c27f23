package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseWarning represents a non-fatal issue encountered while parsing a
// tabular source file.
type ParseWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ParseResult contains the parsed records alongside any warnings.
type ParseResult struct {
	Records  []map[string]string `json:"records"`
	Warnings []ParseWarning      `json:"warnings"`
}

// StreamParse parses CSV bytes into a slice of maps (header -> value per row).
// It handles mismatched column counts (pad/truncate), empty files, and
// truncated rows.
func StreamParse(data []byte) ([]map[string]string, error) {
	result, err := StreamParseWithWarnings(data)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// StreamParseWithWarnings parses CSV bytes and returns both records and any
// warnings. A missing header row or an unreadable file is an error; a
// malformed data row is a warning.
func StreamParseWithWarnings(data []byte) (*ParseResult, error) {
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Variable field counts are handled here, not by encoding/csv.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row found")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	result := &ParseResult{}
	rowNum := 1 // header is row 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}
		record, warn := assembleRow(headers, row, rowNum)
		if warn != nil {
			result.Warnings = append(result.Warnings, *warn)
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return nil, fmt.Errorf("file contains no data rows")
	}
	return result, nil
}

// assembleRow zips one data row against the headers, padding short rows and
// truncating long ones, and reports a warning when either was needed.
func assembleRow(headers, row []string, rowNum int) (map[string]string, *ParseWarning) {
	var warn *ParseWarning
	if len(row) != len(headers) {
		if len(row) < len(headers) {
			warn = &ParseWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), len(headers)),
			}
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		} else {
			warn = &ParseWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), len(headers)),
			}
			row = row[:len(headers)]
		}
	}
	record := make(map[string]string, len(headers))
	for i, h := range headers {
		record[h] = row[i]
	}
	return record, warn
}
