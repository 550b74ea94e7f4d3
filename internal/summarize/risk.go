package summarize

import (
	"fmt"
	"strings"

	"github.com/cloudsift/cloudsift/internal/models"
)

// severityBaseScore maps a severity band to its base risk score.
func severityBaseScore(s models.Severity) int {
	switch s {
	case models.SeverityLow:
		return 25
	case models.SeverityMedium:
		return 50
	case models.SeverityHigh:
		return 75
	case models.SeverityCritical:
		return 100
	default:
		return 0
	}
}

// GroupRiskScore computes a group's 0-100 risk score. Groups with no
// failing members score 0 regardless of severity; otherwise the base
// score for the max severity is scaled by up to 1.5x as the failure
// count grows.
func GroupRiskScore(maxSeverity models.Severity, failedCount int) int {
	if failedCount == 0 {
		return 0
	}

	scale := 1.0 + float64(failedCount-1)*0.1
	if scale > 1.5 {
		scale = 1.5
	}

	score := int(float64(severityBaseScore(maxSeverity)) * scale)
	if score > 100 {
		score = 100
	}
	return score
}

// ComputeRiskSummary rolls the full finding set into one weighted score
// and severity band. It counts failing findings across all groups
// combined, independent of grouping.
func ComputeRiskSummary(findings []models.Finding) models.RiskSummary {
	var critical, high, medium, low, passed int

	for _, f := range findings {
		switch f.Status {
		case models.StatusPass:
			passed++
		case models.StatusFail:
			switch f.Severity {
			case models.SeverityCritical:
				critical++
			case models.SeverityHigh:
				high++
			case models.SeverityMedium:
				medium++
			default:
				low++
			}
		}
	}

	totalFailed := critical + high + medium + low

	score := 0
	level := models.SeverityLow.String()
	if totalFailed > 0 {
		weighted := critical*100 + high*75 + medium*50 + low*25
		score = weighted / totalFailed
		if score > 100 {
			score = 100
		}

		switch {
		case critical > 0:
			level = models.SeverityCritical.String()
		case high > 0:
			level = models.SeverityHigh.String()
		case medium > 0:
			level = models.SeverityMedium.String()
		}
	}

	return models.RiskSummary{
		OverallScore:  score,
		CriticalCount: critical,
		HighCount:     high,
		MediumCount:   medium,
		LowCount:      low,
		PassedCount:   passed,
		RiskLevel:     level,
		SummaryText:   riskSummaryText(critical, high, medium, low, passed),
	}
}

// riskSummaryText renders the human-readable scan summary, enumerating
// nonzero severity bands from critical down to low.
func riskSummaryText(critical, high, medium, low, passed int) string {
	totalFailed := critical + high + medium + low
	total := totalFailed + passed

	if totalFailed == 0 {
		return fmt.Sprintf("All %d security checks passed. No issues detected.", total)
	}

	var parts []string
	if critical > 0 {
		parts = append(parts, fmt.Sprintf("%d critical", critical))
	}
	if high > 0 {
		parts = append(parts, fmt.Sprintf("%d high", high))
	}
	if medium > 0 {
		parts = append(parts, fmt.Sprintf("%d medium", medium))
	}
	if low > 0 {
		parts = append(parts, fmt.Sprintf("%d low", low))
	}

	return fmt.Sprintf("Found %d security issues (%s severity) out of %d total checks. %d checks passed.",
		totalFailed, strings.Join(parts, ", "), total, passed)
}
