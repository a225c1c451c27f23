package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"payline/pkg/engine"
	"payline/pkg/report"
	"payline/pkg/schema"
)

var verifyJSON bool

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Emit the full run report as JSON")
}

var verifyCmd = &cobra.Command{
	Use:   "verify INPUT ACTUAL",
	Short: "Verify an externally produced conversion against the input",
	Long: `Verify that a payroll line-item file produced by another process is
faithful to the timesheet input. The input is re-converted with the canonical
rules and the actual output is checked for extra, missing, zero-driven,
field-swapped and date-confused lines.`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := cfg.EngineOptions()

	inputRows, err := readRows(args[0])
	if err != nil {
		return err
	}
	actualRows, err := readRows(args[1])
	if err != nil {
		return err
	}

	records := schema.Records(inputRows)
	actual := schema.LineItems(actualRows)
	expected := engine.ExpectedLines(records, opts.Rules)
	anomalies := engine.Reconcile(records, actual, opts)
	rep := report.Build(records, expected, actual, anomalies)

	out := cmd.OutOrStdout()
	if verifyJSON {
		data, err := rep.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintf(out, "run %s: %d records, %d expected lines, %d actual lines\n",
			rep.RunID, rep.InputRecords, rep.ExpectedLines, rep.ActualLines)
		for _, a := range rep.Anomalies {
			fmt.Fprintf(out, "[%s] %s %s %s: %s\n", a.Kind, a.EmployeeID, a.WeekEnding, a.Category, a.Explanation)
			if a.Hint != "" {
				fmt.Fprintf(out, "    hint: %s\n", a.Hint)
			}
		}
	}

	if !rep.Clean {
		return fmt.Errorf("verification found %d anomalies", len(rep.Anomalies))
	}
	fmt.Fprintln(out, "no anomalies found")
	return nil
}
