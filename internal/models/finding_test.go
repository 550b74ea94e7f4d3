package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityLow < SeverityMedium && SeverityMedium < SeverityHigh && SeverityHigh < SeverityCritical) {
		t.Error("severity constants are not ordered LOW < MEDIUM < HIGH < CRITICAL")
	}
	if SeverityUnknown >= SeverityLow {
		t.Error("unknown severity must rank below LOW")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"LOW", SeverityLow, false},
		{"medium", SeverityMedium, false},
		{"High", SeverityHigh, false},
		{"CRITICAL", SeverityCritical, false},
		{" critical ", SeverityCritical, false},
		{"bogus", SeverityUnknown, true},
		{"", SeverityUnknown, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeverity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFindingJSONRoundTrip(t *testing.T) {
	in := `{
		"service": "s3",
		"check_id": "s3-bucket-encryption",
		"region": "us-east-1",
		"resource_id": "my-bucket",
		"status": "FAIL",
		"severity": "high",
		"title": "Bucket not encrypted",
		"description": "Default encryption is disabled",
		"compliance": ["CIS-2.1.1"]
	}`

	var f Finding
	if err := json.Unmarshal([]byte(in), &f); err != nil {
		t.Fatalf("unmarshal finding: %v", err)
	}

	if f.Severity != SeverityHigh {
		t.Errorf("expected HIGH severity, got %v", f.Severity)
	}
	if f.Status != StatusFail {
		t.Errorf("expected FAIL status, got %v", f.Status)
	}
	if !f.Failed() {
		t.Error("expected Failed() to be true")
	}
	if f.GroupKey() != "s3:s3-bucket-encryption" {
		t.Errorf("unexpected group key %q", f.GroupKey())
	}

	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal finding: %v", err)
	}
	if want := `"severity":"HIGH"`; !strings.Contains(string(out), want) {
		t.Errorf("expected marshalled finding to contain %s, got %s", want, out)
	}
}

func TestFindingGroupKeyEmptyCheckID(t *testing.T) {
	f := Finding{Service: "ec2"}
	if f.GroupKey() != "ec2:" {
		t.Errorf("expected key 'ec2:', got %q", f.GroupKey())
	}
}

func TestSummarizeRequestIncludeRemediation(t *testing.T) {
	tests := []struct {
		name    string
		options *SummarizeOptions
		want    bool
	}{
		{"absent options default true", nil, true},
		{"explicit true", &SummarizeOptions{IncludeRemediation: true}, true},
		{"explicit false", &SummarizeOptions{IncludeRemediation: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SummarizeRequest{Options: tt.options}
			if got := req.IncludeRemediation(); got != tt.want {
				t.Errorf("IncludeRemediation() = %v, want %v", got, tt.want)
			}
		})
	}
}
