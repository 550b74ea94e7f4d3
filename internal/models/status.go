package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the pass/fail outcome of a single security check.
type Status int

// Check statuses.
const (
	StatusUnknown Status = iota
	StatusPass
	StatusFail
)

// String returns the canonical upper-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus converts a status name into a Status. Matching is
// case-insensitive.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PASS", "PASSED":
		return StatusPass, nil
	case "FAIL", "FAILED":
		return StatusFail, nil
	default:
		return StatusUnknown, fmt.Errorf("unknown status %q", s)
	}
}

// MarshalJSON encodes the status as its canonical name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
