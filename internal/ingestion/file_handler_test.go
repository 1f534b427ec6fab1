package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileHandler(t *testing.T) {
	fh := NewFileHandler("test_uploads")
	if fh == nil {
		t.Fatal("Expected non-nil FileHandler")
	}

	if fh.uploadsDir != "test_uploads" {
		t.Errorf("Expected uploadsDir 'test_uploads', got '%s'", fh.uploadsDir)
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.doc", false},
		{"photo.jpg", false},
		{"resume", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IsSupported(tt.filename); got != tt.want {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestSaveUploadedFile(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "uploads")

	fh := NewFileHandler(tmpDir)

	content := strings.NewReader("Test resume content")
	filename := "test_resume.txt"

	path, err := fh.SaveUploadedFile(filename, content)
	if err != nil {
		t.Fatalf("Failed to save file: %v", err)
	}

	expectedPath := filepath.Join(tmpDir, filename)
	if path != expectedPath {
		t.Errorf("Expected path %s, got %s", expectedPath, path)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File was not created at %s", path)
	}

	// Verify file content
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if string(data) != "Test resume content" {
		t.Errorf("Expected content 'Test resume content', got '%s'", string(data))
	}
}

func TestSaveUploadedFileRejectsUnsupported(t *testing.T) {
	fh := NewFileHandler(t.TempDir())

	_, err := fh.SaveUploadedFile("malware.exe", strings.NewReader("payload"))
	if err == nil {
		t.Fatal("Expected error for unsupported file type")
	}
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("error should match ErrUnsupportedType, got: %v", err)
	}
}

func TestSaveUploadedFileStripsPath(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "uploads")
	fh := NewFileHandler(tmpDir)

	path, err := fh.SaveUploadedFile("../escape/resume.txt", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Failed to save file: %v", err)
	}

	if path != filepath.Join(tmpDir, "resume.txt") {
		t.Errorf("Expected path inside uploads dir, got %s", path)
	}
}

func TestClearUploads(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "uploads")

	os.MkdirAll(tmpDir, 0755)
	os.WriteFile(filepath.Join(tmpDir, "test.txt"), []byte("test"), 0644)

	fh := NewFileHandler(tmpDir)
	err := fh.ClearUploads()
	if err != nil {
		t.Fatalf("Failed to clear uploads: %v", err)
	}

	// Directory should exist but be empty
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected empty directory, got %d entries", len(entries))
	}
}
