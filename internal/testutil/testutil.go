package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// CreateTestFile creates a file with specified content in the directory
func CreateTestFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)

	// Create parent directories if needed
	parentDir := filepath.Dir(filePath)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		t.Fatalf("Failed to create parent dir: %v", err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", filename, err)
	}

	return filePath
}

// WriteConfig writes settings as calc.yaml in dir and returns its path
func WriteConfig(t *testing.T, dir string, settings map[string]interface{}) string {
	t.Helper()

	data, err := yaml.Marshal(settings)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	return CreateTestFile(t, dir, "calc.yaml", string(data))
}

// AssertFileExists asserts that a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Expected file to exist: %s", path)
	}
}
