// Package main is the entry point for the cloudsift CLI.
// Cloudsift aggregates cloud security scan findings into grouped,
// risk-scored reports with AI-generated remediation guidance, either
// as a one-shot command or as an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudsift/cloudsift/cmd/serve"
	"github.com/cloudsift/cloudsift/cmd/summarize"
	"github.com/cloudsift/cloudsift/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var (
		debug     bool
		logFormat string
	)

	root := &cobra.Command{
		Use:     "cloudsift",
		Short:   "Summarize cloud security scan findings",
		Version: fmt.Sprintf("%s (built %s)", version, buildTime),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetupLogger(debug, logFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	root.AddCommand(serve.NewServeCommand())
	root.AddCommand(summarize.NewSummarizeCommand())

	if err := root.Execute(); err != nil {
		logger.GetGlobalLogger().Error("command failed", "error", err)
		os.Exit(1)
	}
}
