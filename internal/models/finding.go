// Package models contains the data structures cloudsift exchanges with
// callers: raw findings in, summarized reports out.
package models

// Finding is one pass/fail security check result against one cloud
// resource. Findings are owned by the caller and never mutated.
type Finding struct {
	Service     string   `json:"service"`
	CheckID     string   `json:"check_id"`
	Region      string   `json:"region,omitempty"`
	ResourceID  string   `json:"resource_id"`
	Status      Status   `json:"status"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Compliance  []string `json:"compliance,omitempty"`
}

// GroupKey returns the key findings are grouped under. A finding with an
// empty check id still groups, under "service:".
func (f Finding) GroupKey() string {
	return f.Service + ":" + f.CheckID
}

// Failed reports whether the check failed.
func (f Finding) Failed() bool {
	return f.Status == StatusFail
}

// SummarizeOptions carries per-request flags.
type SummarizeOptions struct {
	IncludeRemediation bool `json:"include_remediation"`
}

// SummarizeRequest is one summarization request: a scan's worth of
// findings plus identifiers echoed back in the report.
type SummarizeRequest struct {
	ScanID    string            `json:"scan_id"`
	AccountID string            `json:"account_id"`
	Findings  []Finding         `json:"findings"`
	Options   *SummarizeOptions `json:"options,omitempty"`
}

// IncludeRemediation reports whether the caller asked for remediation
// output. Absent options default to true.
func (r *SummarizeRequest) IncludeRemediation() bool {
	if r.Options == nil {
		return true
	}
	return r.Options.IncludeRemediation
}
