package models

// ActionType categorizes the recommended response to a failing group.
type ActionType string

// Recommended actions, from no-op to escalation.
const (
	ActionNone       ActionType = "none"
	ActionSuggestFix ActionType = "suggest_fix"
	ActionAlert      ActionType = "alert"
	ActionEscalate   ActionType = "escalate"
)

// FindingGroup aggregates all findings sharing a (service, check) pair.
// Groups are assembled once per request and never mutated afterwards.
type FindingGroup struct {
	GroupID           string     `json:"group_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Severity          Severity   `json:"severity"`
	FindingCount      int        `json:"finding_count"`
	ResourceIDs       []string   `json:"resource_ids"`
	CheckID           string     `json:"check_id"`
	Service           string     `json:"service"`
	Compliance        []string   `json:"compliance,omitempty"`
	RiskScore         int        `json:"risk_score"`
	RecommendedAction ActionType `json:"recommended_action"`
	Summary           string     `json:"summary,omitempty"`
	Remedy            string     `json:"remedy,omitempty"`
}

// RiskSummary rolls a whole scan into one weighted score and severity
// band, independent of grouping.
type RiskSummary struct {
	OverallScore  int    `json:"overall_score"`
	CriticalCount int    `json:"critical_count"`
	HighCount     int    `json:"high_count"`
	MediumCount   int    `json:"medium_count"`
	LowCount      int    `json:"low_count"`
	PassedCount   int    `json:"passed_count"`
	RiskLevel     string `json:"risk_level"`
	SummaryText   string `json:"summary_text"`
}

// ActionItem is a proposed remediation task derived from a failing group.
// At most one exists per group.
type ActionItem struct {
	ActionID    string     `json:"action_id"`
	ActionType  ActionType `json:"action_type"`
	Severity    Severity   `json:"severity"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	GroupID     string     `json:"group_id"`
	Commands    []string   `json:"commands,omitempty"`
}

// Report is the aggregated output for one scan.
type Report struct {
	ScanID      string         `json:"scan_id"`
	Groups      []FindingGroup `json:"groups"`
	RiskSummary RiskSummary    `json:"risk_summary"`
	ActionItems []ActionItem   `json:"action_items"`
}
