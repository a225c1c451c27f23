package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"payline/pkg/config"
)

var log = logrus.New()

var (
	configPath string
	verbose    bool
)

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable info-level logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(verifyCmd)
}

var rootCmd = &cobra.Command{
	Use:   "payline",
	Short: "Convert and verify agency timesheet exports",
	Long: `payline converts semi-structured timesheet exports (one row per
candidate/contract/week) into normalized payroll line items, and verifies
that a conversion produced elsewhere is faithful to the same rule set.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.InfoLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
