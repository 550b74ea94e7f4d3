// Package summarize implements the one-shot summarization command.
package summarize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudsift/cloudsift/internal/config"
	"github.com/cloudsift/cloudsift/internal/llm"
	"github.com/cloudsift/cloudsift/internal/models"
	"github.com/cloudsift/cloudsift/internal/report"
	"github.com/cloudsift/cloudsift/internal/source"
	"github.com/cloudsift/cloudsift/internal/summarize"
	"github.com/cloudsift/cloudsift/pkg/logger"
)

var (
	configFile    string
	inputPath     string
	outputFormat  string
	noRemediation bool
)

// NewSummarizeCommand creates the summarize command.
func NewSummarizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize scan findings from a file or S3 object",
		Long: `Summarize security scan findings into grouped, risk-scored reports.

The input may be a local JSON file or an s3://bucket/key object containing
either a full summarize request or a bare findings array.`,
		Example: `  # Summarize a local findings file
  cloudsift summarize --input findings.json

  # Summarize findings stored in S3, printed as JSON
  cloudsift summarize --input s3://scan-results/scan-7.json --output json

  # Skip AI remediation guidance
  cloudsift summarize --input findings.json --no-remediation`,
		RunE: runSummarize,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Findings file path or s3://bucket/key (required)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text or json)")
	cmd.Flags().BoolVar(&noRemediation, "no-remediation", false, "Skip AI-generated remediation guidance")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	log := logger.GetGlobalLogger()

	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	req, err := source.NewLoader().Load(cmd.Context(), inputPath)
	if err != nil {
		return err
	}
	if noRemediation {
		req.Options = &models.SummarizeOptions{IncludeRemediation: false}
	}
	log.Info("Loaded findings", "input", inputPath, "count", len(req.Findings))

	client := llm.NewClient(cfg.LLM.ClientConfig(), log)
	summarizer := summarize.NewSummarizer(client, log)
	summarizer.SetWorkers(cfg.LLM.Workers)

	result := summarizer.Summarize(cmd.Context(), req)

	switch outputFormat {
	case "json":
		out, err := report.RenderJSON(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	case "text":
		fmt.Fprint(cmd.OutOrStdout(), report.RenderText(result))
	default:
		return fmt.Errorf("unknown output format %q, expected text or json", outputFormat)
	}

	return nil
}
