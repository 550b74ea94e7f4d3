package summarize

import (
	"github.com/cloudsift/cloudsift/internal/models"
)

// RecommendAction maps a group's max severity and failure count to a
// recommended action. Groups with nothing failing get no action.
func RecommendAction(maxSeverity models.Severity, failedCount int) models.ActionType {
	if failedCount == 0 {
		return models.ActionNone
	}

	switch maxSeverity {
	case models.SeverityCritical:
		return models.ActionEscalate
	case models.SeverityHigh:
		return models.ActionAlert
	default:
		return models.ActionSuggestFix
	}
}
