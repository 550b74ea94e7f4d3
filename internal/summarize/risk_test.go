package summarize

import (
	"strings"
	"testing"

	"github.com/cloudsift/cloudsift/internal/models"
)

func TestGroupRiskScore(t *testing.T) {
	tests := []struct {
		name        string
		severity    models.Severity
		failedCount int
		want        int
	}{
		{"no failures scores zero even for critical", models.SeverityCritical, 0, 0},
		{"single low failure", models.SeverityLow, 1, 25},
		{"single medium failure", models.SeverityMedium, 1, 50},
		{"single high failure", models.SeverityHigh, 1, 75},
		{"single critical failure", models.SeverityCritical, 1, 100},
		{"two high failures scale by 1.1", models.SeverityHigh, 2, 82},
		{"three high failures scale by 1.2", models.SeverityHigh, 3, 90},
		{"scale caps at 1.5", models.SeverityLow, 100, 37},
		{"critical clamps at 100", models.SeverityCritical, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupRiskScore(tt.severity, tt.failedCount); got != tt.want {
				t.Errorf("GroupRiskScore(%v, %d) = %d, want %d", tt.severity, tt.failedCount, got, tt.want)
			}
		})
	}
}

func TestGroupRiskScoreMonotonic(t *testing.T) {
	for _, sev := range []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical} {
		prev := 0
		for failed := 1; failed <= 30; failed++ {
			score := GroupRiskScore(sev, failed)
			if score < prev {
				t.Errorf("score decreased for %v at failed=%d: %d < %d", sev, failed, score, prev)
			}
			if score > 100 {
				t.Errorf("score exceeds 100 for %v at failed=%d: %d", sev, failed, score)
			}
			prev = score
		}
	}
}

func TestComputeRiskSummary(t *testing.T) {
	findings := []models.Finding{
		{Status: models.StatusFail, Severity: models.SeverityHigh},
		{Status: models.StatusFail, Severity: models.SeverityHigh},
		{Status: models.StatusPass, Severity: models.SeverityLow},
	}

	summary := ComputeRiskSummary(findings)

	if summary.HighCount != 2 || summary.CriticalCount != 0 {
		t.Errorf("unexpected band counts: %+v", summary)
	}
	if summary.PassedCount != 1 {
		t.Errorf("expected 1 passed, got %d", summary.PassedCount)
	}
	if summary.RiskLevel != "HIGH" {
		t.Errorf("expected risk level HIGH, got %s", summary.RiskLevel)
	}
	if summary.OverallScore != 75 {
		t.Errorf("expected overall score 75, got %d", summary.OverallScore)
	}
	if !strings.Contains(summary.SummaryText, "2 high") {
		t.Errorf("expected summary text to enumerate the high band, got %q", summary.SummaryText)
	}
	if !strings.Contains(summary.SummaryText, "1 checks passed") {
		t.Errorf("expected summary text to report passed count, got %q", summary.SummaryText)
	}
}

func TestComputeRiskSummaryLevels(t *testing.T) {
	tests := []struct {
		name     string
		findings []models.Finding
		want     string
	}{
		{"no findings", nil, "LOW"},
		{"only passes", []models.Finding{{Status: models.StatusPass, Severity: models.SeverityCritical}}, "LOW"},
		{"low failures", []models.Finding{{Status: models.StatusFail, Severity: models.SeverityLow}}, "LOW"},
		{"medium beats low", []models.Finding{
			{Status: models.StatusFail, Severity: models.SeverityLow},
			{Status: models.StatusFail, Severity: models.SeverityMedium},
		}, "MEDIUM"},
		{"critical beats everything", []models.Finding{
			{Status: models.StatusFail, Severity: models.SeverityLow},
			{Status: models.StatusFail, Severity: models.SeverityCritical},
		}, "CRITICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRiskSummary(tt.findings).RiskLevel; got != tt.want {
				t.Errorf("RiskLevel = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeRiskSummaryEmpty(t *testing.T) {
	summary := ComputeRiskSummary(nil)

	if summary.OverallScore != 0 {
		t.Errorf("expected score 0, got %d", summary.OverallScore)
	}
	if summary.CriticalCount+summary.HighCount+summary.MediumCount+summary.LowCount+summary.PassedCount != 0 {
		t.Errorf("expected all counts zero, got %+v", summary)
	}
	if !strings.HasPrefix(summary.SummaryText, "All 0 security checks passed.") {
		t.Errorf("unexpected summary text %q", summary.SummaryText)
	}
}

func TestComputeRiskSummaryWeightedAverage(t *testing.T) {
	// (100 + 25) / 2 = 62 with integer division.
	findings := []models.Finding{
		{Status: models.StatusFail, Severity: models.SeverityCritical},
		{Status: models.StatusFail, Severity: models.SeverityLow},
	}
	if got := ComputeRiskSummary(findings).OverallScore; got != 62 {
		t.Errorf("expected weighted score 62, got %d", got)
	}
}
