package cmd

import (
	"fmt"
	"os"

	"github.com/NovaUNL/Supernova-sub001/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "supernova-orderd",
	Short: "Supernova ordering service",
	Long: `Supernova-orderd keeps the portal's ordered parent/child relations
(synopsis topics, section trees, class materials) consistent, and serves
the section documents from object storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with "debug" level so CLI users get readable
		// ISO8601 output instead of the production epoch encoding.
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
