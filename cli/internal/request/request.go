// ABOUTME: Builds evaluation requests from flag strings or request files
// ABOUTME: Request files are YAML or JSON, chosen by file extension

package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// ErrNoRequest is returned when neither lists nor a file were given
var ErrNoRequest = errors.New("no request: give --service and --placement, or --file")

// ParseIntList parses a comma or space separated list such as "4,8,1" or "4 8 1"
func ParseIntList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty list")
	}

	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("item %d: %q is not an integer", i, f)
		}
		out[i] = v
	}
	return out, nil
}

// FormatIntList renders a list the way ParseIntList reads it
func FormatIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// FromLists builds a request from flag strings. A zero length evaluates the whole service.
func FromLists(service, placement string, length int) (*models.EvaluationRequest, error) {
	svc, err := ParseIntList(service)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	pl, err := ParseIntList(placement)
	if err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}
	return &models.EvaluationRequest{
		ServiceLength: length,
		Service:       svc,
		Placement:     pl,
	}, nil
}

// LoadFile reads a request from a .yaml, .yml or .json file
func LoadFile(path string) (*models.EvaluationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses request data in the format named by ext
func Decode(data []byte, ext string) (*models.EvaluationRequest, error) {
	var req models.EvaluationRequest

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("parsing YAML request: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, fmt.Errorf("parsing JSON request: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported request file extension %q (want .yaml, .yml or .json)", ext)
	}

	if len(req.Service) == 0 {
		return nil, fmt.Errorf("request has no service entries")
	}
	return &req, nil
}

// Build picks the request source. Lists and a file are mutually exclusive;
// a positive length overrides the one in the file.
func Build(service, placement, file string, length int) (*models.EvaluationRequest, error) {
	hasLists := service != "" || placement != ""

	switch {
	case file != "" && hasLists:
		return nil, fmt.Errorf("--file cannot be combined with --service or --placement")
	case file != "":
		req, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		if length > 0 {
			req.ServiceLength = length
		}
		return req, nil
	case hasLists:
		return FromLists(service, placement, length)
	default:
		return nil, ErrNoRequest
	}
}
