package templates

import (
	"strings"
	"testing"
)

func TestReadTemplate(t *testing.T) {
	data, err := Read("config.toml")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !strings.Contains(string(data), "index_url") {
		t.Fatalf("expected template content, got %q", data)
	}
}

func TestReadTemplateMissing(t *testing.T) {
	_, err := Read("missing.toml")
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
}
