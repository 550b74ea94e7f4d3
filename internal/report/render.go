// Package report renders summarized scan reports for terminal and JSON output.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cloudsift/cloudsift/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(12)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	commandStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	titleCaser = cases.Title(language.English)
)

// severityStyle returns the badge style for a severity level.
func severityStyle(severity string) lipgloss.Style {
	base := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	switch strings.ToUpper(severity) {
	case "CRITICAL":
		return base.Background(lipgloss.Color("197")).Foreground(lipgloss.Color("15"))
	case "HIGH":
		return base.Background(lipgloss.Color("208")).Foreground(lipgloss.Color("15"))
	case "MEDIUM":
		return base.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("15"))
	case "LOW":
		return base.Background(lipgloss.Color("148")).Foreground(lipgloss.Color("15"))
	default:
		return base.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15"))
	}
}

// actionLabel converts an action type to a display label, e.g.
// "suggest_fix" becomes "Suggest Fix".
func actionLabel(action models.ActionType) string {
	return titleCaser.String(strings.ReplaceAll(string(action), "_", " "))
}

// RenderText renders a report for terminal display.
func RenderText(r *models.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Scan Report: %s", r.ScanID)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Risk Summary"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Level"))
	b.WriteString(severityStyle(r.RiskSummary.RiskLevel).Render(r.RiskSummary.RiskLevel))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Score"))
	b.WriteString(fmt.Sprintf("%d/100\n", r.RiskSummary.OverallScore))
	b.WriteString(labelStyle.Render("Failing"))
	b.WriteString(fmt.Sprintf("%d critical, %d high, %d medium, %d low (%d passed)\n",
		r.RiskSummary.CriticalCount,
		r.RiskSummary.HighCount,
		r.RiskSummary.MediumCount,
		r.RiskSummary.LowCount,
		r.RiskSummary.PassedCount,
	))
	b.WriteString(dimStyle.Render(r.RiskSummary.SummaryText))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Finding Groups (%d)", len(r.Groups))))
	b.WriteString("\n")
	for _, g := range r.Groups {
		renderGroup(&b, g)
	}

	if len(r.ActionItems) > 0 {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Action Items (%d)", len(r.ActionItems))))
		b.WriteString("\n")
		for _, item := range r.ActionItems {
			renderActionItem(&b, item)
		}
	}

	return b.String()
}

func renderGroup(b *strings.Builder, g models.FindingGroup) {
	badge := severityStyle(g.Severity.String()).Render(g.Severity.String())
	b.WriteString(fmt.Sprintf("%s %s\n", badge, g.Title))
	b.WriteString(labelStyle.Render("Group"))
	b.WriteString(g.GroupID)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Risk"))
	b.WriteString(fmt.Sprintf("%d/100", g.RiskScore))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  action: %s", actionLabel(g.RecommendedAction))))
	b.WriteString("\n")
	if len(g.Compliance) > 0 {
		b.WriteString(labelStyle.Render("Compliance"))
		b.WriteString(strings.Join(g.Compliance, ", "))
		b.WriteString("\n")
	}
	if g.Summary != "" {
		b.WriteString(labelStyle.Render("Summary"))
		b.WriteString(g.Summary)
		b.WriteString("\n")
	}
	if g.Remedy != "" {
		b.WriteString(labelStyle.Render("Remedy"))
		b.WriteString(g.Remedy)
		b.WriteString("\n")
	}
}

func renderActionItem(b *strings.Builder, item models.ActionItem) {
	badge := severityStyle(item.Severity.String()).Render(actionLabel(item.ActionType))
	b.WriteString(fmt.Sprintf("%s %s\n", badge, item.Title))
	if item.Description != "" {
		b.WriteString(dimStyle.Render(item.Description))
		b.WriteString("\n")
	}
	for _, cmd := range item.Commands {
		b.WriteString("  ")
		b.WriteString(commandStyle.Render(cmd))
		b.WriteString("\n")
	}
}

// RenderJSON renders a report as indented JSON.
func RenderJSON(r *models.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}
