package summarize

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/internal/models"
	"github.com/cloudsift/cloudsift/pkg/logger"
)

const (
	// defaultWorkers bounds concurrent outbound calls to the
	// text-generation provider.
	defaultWorkers = 3

	// maxGroupSnippets caps the failing-finding snippets sent per group.
	maxGroupSnippets = 20

	defaultRegion = "us-east-1"
)

// CompletionClient is the text-generation dependency of the summarizer.
// Implementations never fail; they degrade to deterministic output.
type CompletionClient interface {
	SummarizeIssues(ctx context.Context, service, region, accountID string, findings []string) (summary, remedy string)
	GenerateCommands(ctx context.Context, service, region, accountID, summary, remedy string, resourceIDs []string) []string
}

// Summarizer runs the aggregation pipeline and assembles reports.
type Summarizer struct {
	client  CompletionClient
	workers int
	logger  logger.Logger
}

// NewSummarizer creates a summarizer with the default worker budget.
func NewSummarizer(client CompletionClient, log logger.Logger) *Summarizer {
	return &Summarizer{
		client:  client,
		workers: defaultWorkers,
		logger:  log,
	}
}

// SetWorkers overrides the worker budget. Values below 1 are clamped.
func (s *Summarizer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

type groupTask struct {
	index int
	group Group
}

type groupResult struct {
	index  int
	group  models.FindingGroup
	action *models.ActionItem
}

// Summarize aggregates a scan's findings into a report: groups enriched
// concurrently under the worker budget, a scan-wide risk summary, and
// action items for failing groups. A failure while enriching one group
// drops only that group; the request always yields a best-effort report.
func (s *Summarizer) Summarize(ctx context.Context, req *models.SummarizeRequest) *models.Report {
	accountID := req.AccountID
	if accountID == "" {
		accountID = "unknown"
	}

	runID := uuid.New().String()
	log := s.logger.With("run_id", runID, "scan_id", req.ScanID)

	groups := GroupFindings(req.Findings)
	log.Info("Summarizing findings",
		"account_id", accountID,
		"finding_count", len(req.Findings),
		"group_count", len(groups),
	)

	jobs := make(chan groupTask, len(groups))
	results := make(chan groupResult, len(groups))

	var wg sync.WaitGroup
	workers := s.workers
	if workers > len(groups) {
		workers = len(groups)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range jobs {
				s.runTask(ctx, task, accountID, req.IncludeRemediation(), results, log)
			}
		}()
	}

	for i, g := range groups {
		jobs <- groupTask{index: i, group: g}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]groupResult, 0, len(groups))
	for r := range results {
		collected = append(collected, r)
	}

	// Tasks complete out of submission order; restore the original
	// group-iteration order before assembly.
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	report := &models.Report{
		ScanID:      req.ScanID,
		Groups:      make([]models.FindingGroup, 0, len(collected)),
		RiskSummary: ComputeRiskSummary(req.Findings),
		ActionItems: make([]models.ActionItem, 0),
	}
	for _, r := range collected {
		report.Groups = append(report.Groups, r.group)
		if r.action != nil {
			report.ActionItems = append(report.ActionItems, *r.action)
		}
	}

	log.Info("Finished summarizing findings",
		"groups", len(report.Groups),
		"action_items", len(report.ActionItems),
		"risk_level", report.RiskSummary.RiskLevel,
	)

	return report
}

// runTask enriches one group, isolating panics so a bad group never
// aborts its siblings.
func (s *Summarizer) runTask(ctx context.Context, task groupTask, accountID string, includeRemediation bool, results chan<- groupResult, log logger.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Dropping group after enrichment failure", "group", task.group.Key, "panic", r)
		}
	}()

	group, action := s.enrichGroup(ctx, task.group, accountID, includeRemediation)
	results <- groupResult{index: task.index, group: group, action: action}
}

// enrichGroup combines classification, scoring, and (for failing groups
// with remediation requested) completion-client output into a finished
// FindingGroup and at most one ActionItem.
func (s *Summarizer) enrichGroup(ctx context.Context, g Group, accountID string, includeRemediation bool) (models.FindingGroup, *models.ActionItem) {
	first := g.Findings[0]
	failed := g.FailedFindings()
	maxSeverity := g.MaxSeverity()

	region := first.Region
	if region == "" {
		region = defaultRegion
	}

	resourceIDs := make([]string, 0, len(g.Findings))
	complianceSet := make(map[string]struct{})
	for _, f := range g.Findings {
		resourceIDs = append(resourceIDs, f.ResourceID)
		for _, c := range f.Compliance {
			complianceSet[c] = struct{}{}
		}
	}
	compliance := make([]string, 0, len(complianceSet))
	for c := range complianceSet {
		compliance = append(compliance, c)
	}
	sort.Strings(compliance)

	group := models.FindingGroup{
		GroupID:           g.Key,
		Title:             groupTitle(g.Service, g.CheckID, len(g.Findings), len(failed)),
		Description:       first.Description,
		Severity:          maxSeverity,
		FindingCount:      len(g.Findings),
		ResourceIDs:       resourceIDs,
		CheckID:           g.CheckID,
		Service:           g.Service,
		Compliance:        compliance,
		RiskScore:         GroupRiskScore(maxSeverity, len(failed)),
		RecommendedAction: RecommendAction(maxSeverity, len(failed)),
	}

	if len(failed) == 0 || !includeRemediation {
		return group, nil
	}

	snippets := make([]string, 0, maxGroupSnippets)
	for _, f := range failed {
		if len(snippets) == maxGroupSnippets {
			break
		}
		snippets = append(snippets, f.Title+": "+f.Description)
	}

	group.Summary, group.Remedy = s.client.SummarizeIssues(ctx, g.Service, region, accountID, snippets)

	commands := s.client.GenerateCommands(ctx, g.Service, region, accountID, group.Summary, group.Remedy, resourceIDs)

	action := &models.ActionItem{
		ActionID:    "action_" + g.Key,
		ActionType:  group.RecommendedAction,
		Severity:    maxSeverity,
		Title:       "Fix: " + group.Title,
		Description: fmt.Sprintf("Address %d findings for %s", group.FindingCount, g.CheckID),
		GroupID:     g.Key,
		Commands:    commands,
	}

	return group, action
}

// groupTitle renders the group headline.
func groupTitle(service, checkID string, total, failed int) string {
	if failed > 0 {
		return fmt.Sprintf("%d %s resources failed %s", failed, strings.ToUpper(service), checkID)
	}
	return fmt.Sprintf("All %d %s resources passed %s", total, strings.ToUpper(service), checkID)
}
