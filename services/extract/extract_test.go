package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTextFromPlainFile(t *testing.T) {
	dir := t.TempDir()
	service, err := NewService(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("NewService returned unexpected error: %v", err)
	}

	source := filepath.Join(dir, "notes.txt")
	content := "The mitochondria is the powerhouse of the cell."
	if err := os.WriteFile(source, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	file, err := os.Open(source)
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer file.Close()

	extracted, err := service.ExtractText(file, "notes.txt", "text/plain")
	if err != nil {
		t.Fatalf("ExtractText returned unexpected error: %v", err)
	}
	if extracted != content {
		t.Errorf("ExtractText returned %q, expected %q", extracted, content)
	}

	// The stored copy is cleaned up after extraction.
	entries, err := os.ReadDir(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected upload dir to be empty after extraction, found %d entries", len(entries))
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		fileName string
		fileType string
		expected bool
	}{
		{"slides.pdf", "", true},
		{"slides.PDF", "", true},
		{"slides", "application/pdf", true},
		{"notes.txt", "text/plain", false},
		{"photo.png", "image/png", false},
	}

	for _, tt := range tests {
		if result := isPDF(tt.fileName, tt.fileType); result != tt.expected {
			t.Errorf("isPDF(%q, %q) = %v, expected %v", tt.fileName, tt.fileType, result, tt.expected)
		}
	}
}
