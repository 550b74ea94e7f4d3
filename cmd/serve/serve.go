// Package serve implements the HTTP server command.
package serve

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cloudsift/cloudsift/internal/config"
	"github.com/cloudsift/cloudsift/internal/llm"
	"github.com/cloudsift/cloudsift/internal/server"
	"github.com/cloudsift/cloudsift/internal/summarize"
	"github.com/cloudsift/cloudsift/pkg/logger"
)

var (
	configFile string
	addr       string
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the findings summarization HTTP server",
		Long: `Run the HTTP server that accepts security scan findings and returns
summarized reports with risk scores, recommended actions, and AI-generated
remediation guidance.

Credentials for the completion provider are read from OPENAI_API_KEY. When
no credential is configured the server still runs, producing deterministic
summaries without AI enrichment.`,
		Example: `  # Serve on the default address
  cloudsift serve

  # Serve with a config file and custom address
  cloudsift serve --config configs/prod.yaml --addr :9090`,
		RunE: runServe,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.GetGlobalLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	client := llm.NewClient(cfg.LLM.ClientConfig(), log)
	summarizer := summarize.NewSummarizer(client, log)
	summarizer.SetWorkers(cfg.LLM.Workers)

	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, summarizer, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	return cfg, nil
}
