// Package llm issues text-generation requests to an OpenAI-compatible
// chat completions endpoint, with bounded retries across a rotation of
// candidate models and deterministic fallbacks when the provider is
// unavailable.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudsift/cloudsift/pkg/logger"
)

// Defaults applied by NewClient when the config leaves them zero.
const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "z-ai/glm-4.5-air:free"
	DefaultMaxAttempts = 6
	DefaultBackoffBase = 2 * time.Second

	maxSummaryFindings  = 50
	maxPromptResources  = 10
	summaryMaxTokens    = 500
	commandsMaxTokens   = 1000
	summaryTemperature  = 0.3
	commandsTemperature = 0.2
)

// Config holds everything the client needs. An empty APIKey puts the
// client permanently in fallback mode.
type Config struct {
	APIKey      string
	BaseURL     string
	Models      []string
	MaxAttempts int
	BackoffBase time.Duration
	HTTPTimeout time.Duration
}

// Client is a resilient completion client. It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	backoff    backoffPolicy
	sleep      func(ctx context.Context, d time.Duration) error
	logger     logger.Logger
}

// NewClient builds a client from the given config. Configuration is
// passed in explicitly; there is no process-wide client state.
func NewClient(cfg Config, log logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []string{DefaultModel}
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = DefaultBackoffBase
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}

	if cfg.APIKey == "" {
		log.Warn("No LLM credential configured, falling back to deterministic summaries")
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		backoff:    backoffPolicy{base: cfg.BackoffBase, jitter: defaultJitter},
		sleep:      sleepContext,
		logger:     log,
	}
}

// Enabled reports whether the client will call out to the provider.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// SummarizeIssues turns failing-finding snippets into a (summary, remedy)
// pair. It never fails: provider errors and unparsable output degrade to
// deterministic text.
func (c *Client) SummarizeIssues(ctx context.Context, service, region, accountID string, findings []string) (summary, remedy string) {
	if !c.Enabled() {
		return fallbackSummary(len(findings)), fallbackRemedy(service)
	}

	findingsText := strings.Join(firstN(findings, maxSummaryFindings), "\n")

	systemPrompt := fmt.Sprintf(
		"You are a cloud security expert analyzing AWS findings. "+
			"You will analyze findings from service %s in region %s for AWS account %s. "+
			"Provide concise, actionable security analysis.",
		service, region, accountID)

	userPrompt := fmt.Sprintf(`Analyze these security findings and provide:
1. A brief summary of the problems found (2-3 sentences)
2. A general description of remediation steps (2-3 sentences)

Findings:
%s

Respond in JSON format:
{"summary": "...", "remedy": "..."}`, findingsText)

	content, err := c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}, summaryTemperature, summaryMaxTokens)
	if err != nil {
		c.logger.Error("LLM summarization failed", "service", service, "error", err)
		return fallbackSummary(len(findings)), fallbackRemedy(service)
	}

	parsed, ok := decodeResponse[summaryPayload](content)
	if !ok {
		c.logger.Warn("Failed to parse LLM response as JSON", "content", content)
		return content, ""
	}
	return parsed.Summary, parsed.Remedy
}

// GenerateCommands turns a group's summary and remedy into candidate
// remediation commands. Provider errors degrade to built-in templates;
// unparsable output degrades to an empty list.
func (c *Client) GenerateCommands(ctx context.Context, service, region, accountID, summary, remedy string, resourceIDs []string) []string {
	if !c.Enabled() {
		return fallbackCommands(service, resourceIDs)
	}

	systemPrompt := fmt.Sprintf(
		"You are an AWS automation expert. "+
			"Generate AWS CLI commands to remediate security issues in %s for account %s in region %s. "+
			"Only provide valid, executable AWS CLI commands.",
		service, accountID, region)

	userPrompt := fmt.Sprintf(`Generate AWS CLI commands for remediation:

Summary: %s

Remedy: %s

Affected resources: %s

Respond with a JSON array of AWS CLI commands:
{"commands": ["aws ...", "aws ..."]}

Important:
- Use the correct region: %s
- Commands should be safe and follow best practices
- Include comments as separate strings if needed`,
		summary, remedy, strings.Join(firstN(resourceIDs, maxPromptResources), ", "), region)

	content, err := c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}, commandsTemperature, commandsMaxTokens)
	if err != nil {
		c.logger.Error("LLM command generation failed", "service", service, "error", err)
		return fallbackCommands(service, resourceIDs)
	}

	parsed, ok := decodeResponse[commandsPayload](content)
	if !ok {
		c.logger.Warn("Failed to parse commands JSON", "content", content)
		return []string{}
	}

	commands := make([]string, 0, len(parsed.Commands))
	for _, cmd := range parsed.Commands {
		if s := fmt.Sprint(cmd); s != "" && cmd != nil {
			commands = append(commands, s)
		}
	}
	return commands
}

// complete runs the attempt loop: up to MaxAttempts calls, rotating
// through the model list and backing off between failures. The last
// error is returned once attempts are exhausted.
func (c *Client) complete(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	var lastErr error

	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		model := modelForAttempt(c.cfg.Models, attempt)

		content, err := c.chatOnce(ctx, model, messages, temperature, maxTokens)
		if err == nil {
			if attempt > 0 {
				c.logger.Info("LLM call succeeded after retry", "model", model, "attempt", attempt+1)
			}
			return content, nil
		}
		lastErr = err

		if isRateLimited(err) {
			c.logger.Warn("LLM provider rate limited", "model", model, "attempt", attempt+1, "error", err)
		} else {
			c.logger.Warn("LLM call failed", "model", model, "attempt", attempt+1, "error", err)
		}

		if attempt < c.cfg.MaxAttempts-1 {
			if err := c.sleep(ctx, c.backoff.delay(attempt)); err != nil {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("exhausted %d attempts: %w", c.cfg.MaxAttempts, lastErr)
}

// chatOnce performs a single chat completion exchange.
func (c *Client) chatOnce(ctx context.Context, model string, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	reqBody := chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// isRateLimited classifies an error as a rate-limit signal. This only
// changes the log message; retry behavior is identical either way.
func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}

// sleepContext waits for d or until the context is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type summaryPayload struct {
	Summary string `json:"summary"`
	Remedy  string `json:"remedy"`
}

type commandsPayload struct {
	Commands []any `json:"commands"`
}
