package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b-rules.md"), []byte("b"), 0644)
	os.WriteFile(filepath.Join(dir, "a-rules.md"), []byte("a"), 0644)
	os.Mkdir(filepath.Join(dir, "templates"), 0755)

	fs := NewOSFileSystem()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ReadDir() returned %d entries, want 3", len(entries))
	}
	if entries[0].Name() != "a-rules.md" || entries[1].Name() != "b-rules.md" {
		t.Errorf("ReadDir() not sorted: %s, %s", entries[0].Name(), entries[1].Name())
	}
	if !entries[2].IsDir() {
		t.Errorf("Expected templates to be a directory")
	}
}

func TestOSFileSystem_ReadDir_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadDir(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("ReadDir(nonexistent) should return error")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test-rules.md")
	expected := "<!-- title: T -->"
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	provider := NewOSFileSystem()

	_, err := provider.ReadFile(filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.md")
	os.WriteFile(filePath, []byte("x"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file).IsDir() = true, want false")
	}
	if info.Name() != "test.md" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "test.md")
	}
}

func TestOSFileSystem_WriteAndRename(t *testing.T) {
	dir := t.TempDir()
	staged := filepath.Join(dir, ".README.md.tmp")
	final := filepath.Join(dir, "README.md")
	os.WriteFile(final, []byte("old"), 0644)

	fs := NewOSFileSystem()

	if err := fs.WriteFile(staged, []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fs.Rename(staged, final); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	data, _ := os.ReadFile(final)
	if string(data) != "new" {
		t.Errorf("after Rename, content = %q, want %q", data, "new")
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Error("staged file should no longer exist")
	}
}

func TestOSFileSystem_Remove(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "gone.md")
	os.WriteFile(filePath, []byte("x"), 0644)

	fs := NewOSFileSystem()
	if err := fs.Remove(filePath); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Error("file should be removed")
	}
}
