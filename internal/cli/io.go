package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"payline/pkg/parser"
	"payline/pkg/schema"
)

// readRows loads a tabular source file into header -> value row maps,
// dispatching on extension: .xlsx goes through the workbook reader,
// everything else through the encoding-tolerant CSV parser. Parse warnings
// are logged, never fatal.
func readRows(path string) ([]map[string]string, error) {
	var result *parser.ParseResult
	var err error

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		result, err = parser.ParseWorkbook(path)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		result, err = parser.StreamParseWithWarnings(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, w := range result.Warnings {
		log.WithFields(logrus.Fields{
			"file": path,
			"row":  w.Row,
		}).Warn(w.Message)
	}
	return result.Records, nil
}

// writeLines writes line items as CSV in the fixed output column order.
func writeLines(path string, lines []schema.LineItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&lines, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
