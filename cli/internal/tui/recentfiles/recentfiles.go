// ABOUTME: Recently evaluated request files for the TUI file picker
// ABOUTME: Stored as a YAML list under the XDG config directory

package recentfiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MaxRecentFiles caps the stored list
	MaxRecentFiles = 5
	// AppDirName is created under the user config directory
	AppDirName = "vnf-placement"

	listFile = "recent.yaml"
)

// requestExtensions are the file types the request loader understands
var requestExtensions = []string{".yaml", ".yml", ".json"}

// RecentFiles tracks request files, most recent first
type RecentFiles struct {
	configDir string
	files     []string
}

type recentData struct {
	Files []string `yaml:"files"`
}

// New creates a manager storing its list in configDir
func New(configDir string) *RecentFiles {
	return &RecentFiles{configDir: configDir}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/vnf-placement, falling back to
// ~/.config/vnf-placement. It is empty when no home directory is known.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppDirName)
}

// IsRequestFile reports whether path has an extension the request loader reads
func IsRequestFile(path string) bool {
	return slices.Contains(requestExtensions, strings.ToLower(filepath.Ext(path)))
}

// Load reads the stored list, keeping only request files that still exist.
// A missing or unreadable list yields an empty one.
func (rf *RecentFiles) Load() ([]string, error) {
	rf.files = []string{}

	data, err := os.ReadFile(filepath.Join(rf.configDir, listFile))
	if errors.Is(err, fs.ErrNotExist) {
		return rf.files, nil
	}
	if err != nil {
		return nil, err
	}

	var stored recentData
	if yaml.Unmarshal(data, &stored) != nil {
		return rf.files, nil
	}

	for _, path := range stored.Files {
		if !IsRequestFile(path) || slices.Contains(rf.files, path) {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			rf.files = append(rf.files, path)
		}
	}
	return rf.files, nil
}

// Save writes files, truncated to MaxRecentFiles
func (rf *RecentFiles) Save(files []string) error {
	if err := os.MkdirAll(rf.configDir, 0o755); err != nil {
		return err
	}

	rf.files = files[:min(len(files), MaxRecentFiles)]

	data, err := yaml.Marshal(recentData{Files: rf.files})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(rf.configDir, listFile), data, 0o644)
}

// Add moves path, made absolute, to the front of the list
func (rf *RecentFiles) Add(path string) error {
	if !IsRequestFile(path) {
		return fmt.Errorf("not a request file: %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if rf.files == nil {
		if _, err := rf.Load(); err != nil {
			rf.files = []string{}
		}
	}

	files := []string{abs}
	for _, f := range rf.files {
		if f != abs {
			files = append(files, f)
		}
	}
	return rf.Save(files)
}
