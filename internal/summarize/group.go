// Package summarize implements the findings aggregation pipeline:
// grouping, risk scoring, action classification, and concurrent group
// enrichment into a final report.
package summarize

import (
	"github.com/cloudsift/cloudsift/internal/models"
)

// Group is the ordered set of findings sharing one (service, check) key.
type Group struct {
	Key      string
	Service  string
	CheckID  string
	Findings []models.Finding
}

// GroupFindings partitions findings by their service:check_id key,
// preserving the order keys are first seen. No findings are dropped or
// deduplicated; an empty check id still groups under "service:".
func GroupFindings(findings []models.Finding) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, f := range findings {
		key := f.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Service: f.Service, CheckID: f.CheckID})
		}
		groups[i].Findings = append(groups[i].Findings, f)
	}

	return groups
}

// FailedFindings returns the group's failing members, in order.
func (g Group) FailedFindings() []models.Finding {
	var failed []models.Finding
	for _, f := range g.Findings {
		if f.Failed() {
			failed = append(failed, f)
		}
	}
	return failed
}

// MaxSeverity returns the highest severity across the group's members.
func (g Group) MaxSeverity() models.Severity {
	max := models.SeverityUnknown
	for _, f := range g.Findings {
		if f.Severity > max {
			max = f.Severity
		}
	}
	return max
}
