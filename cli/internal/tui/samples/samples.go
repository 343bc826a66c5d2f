// ABOUTME: Built-in and on-disk sample evaluation requests
// ABOUTME: Embeds a few request files and discovers more in VNF_PLACEMENT_SAMPLES_PATH

package samples

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// EnvSamplesPath names a directory with extra sample request files
const EnvSamplesPath = "VNF_PLACEMENT_SAMPLES_PATH"

//go:embed requests/*.yaml
var builtin embed.FS

// SampleFile represents a discovered sample request
type SampleFile struct {
	Name string // Filename (e.g., "overflow.yaml")
	Path string // Full path on disk, or "builtin:<name>" for embedded samples
	Data []byte // Set for embedded samples only
}

// Builtin returns the embedded sample requests sorted by name
func Builtin() []SampleFile {
	entries, err := fs.ReadDir(builtin, "requests")
	if err != nil {
		return nil
	}

	files := make([]SampleFile, 0, len(entries))
	for _, entry := range entries {
		data, err := builtin.ReadFile(path.Join("requests", entry.Name()))
		if err != nil {
			continue
		}
		files = append(files, SampleFile{
			Name: entry.Name(),
			Path: "builtin:" + entry.Name(),
			Data: data,
		})
	}
	return files
}

// isRequestFile reports whether name has a request file extension
func isRequestFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Discover finds all request files in the given directory
func Discover(dir string) ([]SampleFile, error) {
	if dir == "" {
		return []SampleFile{}, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SampleFile{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []SampleFile
	for _, entry := range entries {
		if entry.IsDir() || !isRequestFile(entry.Name()) {
			continue
		}
		files = append(files, SampleFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// All returns the built-in samples followed by those in VNF_PLACEMENT_SAMPLES_PATH
func All() []SampleFile {
	files := Builtin()
	extra, err := Discover(os.Getenv(EnvSamplesPath))
	if err == nil {
		files = append(files, extra...)
	}
	return files
}
