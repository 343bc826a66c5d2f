// ABOUTME: Tests for recent request files
// ABOUTME: Validates YAML storage, ordering, the size cap and stale entry filtering

package recentfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeRequest creates a request file and returns its path
func writeRequest(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("service: [1]\nplacement: [0]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmpty(t *testing.T) {
	files, err := New(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty list, got %v", files)
	}
}

func TestAddOrdersMostRecentFirst(t *testing.T) {
	dir := t.TempDir()
	rf := New(dir)
	first := writeRequest(t, dir, "reference.yaml")
	second := writeRequest(t, dir, "overflow.json")

	for _, p := range []string{first, second, first} {
		if err := rf.Add(p); err != nil {
			t.Fatalf("Add(%s) error: %v", p, err)
		}
	}

	files, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff([]string{first, second}, files); diff != "" {
		t.Errorf("recent files mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCapsList(t *testing.T) {
	dir := t.TempDir()
	rf := New(dir)

	var last string
	for i := 1; i <= MaxRecentFiles+2; i++ {
		last = writeRequest(t, dir, fmt.Sprintf("req%d.yaml", i))
		if err := rf.Add(last); err != nil {
			t.Fatal(err)
		}
	}

	files, _ := rf.Load()
	if len(files) != MaxRecentFiles {
		t.Errorf("expected %d files, got %d", MaxRecentFiles, len(files))
	}
	if files[0] != last {
		t.Errorf("expected %s first, got %s", last, files[0])
	}
}

func TestAddRejectsOtherFiles(t *testing.T) {
	rf := New(t.TempDir())

	if err := rf.Add("/tmp/notes.txt"); err == nil {
		t.Error("expected an error for a non-request file")
	}
}

func TestAddMakesPathAbsolute(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "rel.yml")
	t.Chdir(dir)

	rf := New(filepath.Join(dir, "config"))
	if err := rf.Add("rel.yml"); err != nil {
		t.Fatal(err)
	}

	files, _ := rf.Load()
	if len(files) != 1 || !filepath.IsAbs(files[0]) {
		t.Errorf("expected one absolute path, got %v", files)
	}
}

func TestLoadDropsStaleAndForeignEntries(t *testing.T) {
	dir := t.TempDir()
	kept := writeRequest(t, dir, "kept.yaml")
	foreign := filepath.Join(dir, "notes.txt")
	os.WriteFile(foreign, []byte("x"), 0o644)

	rf := New(dir)
	if err := rf.Save([]string{"/nonexistent/gone.yaml", foreign, kept, kept}); err != nil {
		t.Fatal(err)
	}

	files, err := rf.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff([]string{kept}, files); diff != "" {
		t.Errorf("recent files mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveCreatesConfigDir(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), AppDirName)

	if err := New(configDir).Save([]string{"/path/to/req.yaml"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(configDir, "recent.yaml"))
	if err != nil {
		t.Fatalf("expected recent.yaml to be written: %v", err)
	}
	if !strings.Contains(string(data), "files:") || !strings.Contains(string(data), "/path/to/req.yaml") {
		t.Errorf("expected YAML list, got %q", data)
	}
}

func TestLoadCorruptListStartsFresh(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "recent.yaml"), []byte("files: [unterminated"), 0o644)

	files, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty list, got %v", files)
	}
}

func TestIsRequestFile(t *testing.T) {
	tests := map[string]bool{
		"req.yaml": true,
		"req.YML":  true,
		"req.json": true,
		"req.txt":  false,
		"Makefile": false,
	}
	for path, want := range tests {
		if got := IsRequestFile(path); got != want {
			t.Errorf("IsRequestFile(%q) = %t, want %t", path, got, want)
		}
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppDirName) {
		t.Errorf("expected XDG config dir, got %s", got)
	}
}
