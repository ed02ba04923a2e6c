package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestContainsString(t *testing.T) {
	values := []string{"chicago", "new york city", "washington"}

	if !ContainsString("washington", values) {
		t.Error("ContainsString should find washington")
	}

	if ContainsString("Washington", values) {
		t.Error("ContainsString should be case sensitive")
	}

	if ContainsString("montreal", nil) {
		t.Error("ContainsString should return false for a nil slice")
	}
}

func TestGetConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("page_size: 5\n"), 0644)

	content, err := GetConfigFile(path)
	if err != nil {
		t.Fatalf("GetConfigFile returned error: %v", err)
	}
	if string(content) != "page_size: 5\n" {
		t.Errorf("GetConfigFile = %q, want %q", string(content), "page_size: 5\n")
	}

	if _, err := GetConfigFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("GetConfigFile should fail for a missing file")
	}
}
