package cmd

import (
	"fmt"
	"os"

	"lab-inventory/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lab-inventory",
	Short: "Lab Inventory Service",
	Long: `Lab Inventory tracks lab materials and their checkout/check-in activity.
It serves the materials catalog, the transaction ledger and bulk
spreadsheet imports over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config gives readable CLI error output
		// (ISO8601 timestamps instead of epoch).
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
