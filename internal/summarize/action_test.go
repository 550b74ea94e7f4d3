package summarize

import (
	"testing"

	"github.com/cloudsift/cloudsift/internal/models"
)

func TestRecommendAction(t *testing.T) {
	tests := []struct {
		name        string
		severity    models.Severity
		failedCount int
		want        models.ActionType
	}{
		{"no failures means no action", models.SeverityCritical, 0, models.ActionNone},
		{"critical escalates", models.SeverityCritical, 1, models.ActionEscalate},
		{"high alerts", models.SeverityHigh, 3, models.ActionAlert},
		{"medium suggests fix", models.SeverityMedium, 1, models.ActionSuggestFix},
		{"low suggests fix", models.SeverityLow, 5, models.ActionSuggestFix},
		{"unknown severity suggests fix", models.SeverityUnknown, 1, models.ActionSuggestFix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecommendAction(tt.severity, tt.failedCount); got != tt.want {
				t.Errorf("RecommendAction(%v, %d) = %s, want %s", tt.severity, tt.failedCount, got, tt.want)
			}
		})
	}
}
