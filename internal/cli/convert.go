package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"payline/pkg/engine"
	"payline/pkg/schema"
)

var convertOutput string

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "generated_output.csv", "Output CSV path")
}

var convertCmd = &cobra.Command{
	Use:   "convert INPUT",
	Short: "Convert a timesheet export into payroll line items",
	Long: `Convert a timesheet CSV or XLSX export into the payroll line-item CSV.
One output row is written per pay component (Expenses, Std Hrs, OT1 Hrs);
lines whose driving value is zero are never created.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows, err := readRows(args[0])
	if err != nil {
		return err
	}
	records := schema.Records(rows)
	lines := engine.ExpectedLines(records, cfg.EngineOptions().Rules)

	if err := writeLines(convertOutput, lines); err != nil {
		return err
	}

	log.WithField("records", len(records)).Info("converted input")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d line items from %d records to %s\n", len(lines), len(records), convertOutput)
	return nil
}
