package pathutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid yaml", path: "configs/prod.yaml"},
		{name: "valid yml", path: "configs/prod.yml"},
		{name: "uppercase extension", path: "configs/PROD.YAML"},
		{name: "wrong extension", path: "configs/prod.json", wantErr: ".yaml or .yml extension"},
		{name: "no extension", path: "configs/prod", wantErr: ".yaml or .yml extension"},
		{name: "traversal", path: "../configs/prod.yaml", wantErr: "directory traversal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateConfigPath(tt.path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("expected absolute path, got %s", got)
			}
		})
	}
}

func TestValidateInputPath(t *testing.T) {
	got, err := ValidateInputPath("findings.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}

	if _, err := ValidateInputPath("../../etc/passwd"); err == nil {
		t.Error("expected traversal rejection")
	}
}
