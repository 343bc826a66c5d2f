// ABOUTME: Root command for the vnf-placement CLI
// ABOUTME: Handles global flags and picks the in-process or remote evaluator

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/client"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/local"
)

var (
	apiURL     string
	jsonOutput bool
	remote     bool
)

const (
	defaultAPIURL = "http://localhost:8080"
	// EnvAPIURL selects the backend URL and implies remote mode
	EnvAPIURL = "VNF_PLACEMENT_API_URL"
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "vnf-placement",
	Short: "Evaluate VNF service chain placements",
	Long: `vnf-placement evaluates where the VNFs of a network service chain are placed
and reports occupancy, link bandwidth and latency constraint violations.

Evaluations run in-process against the reference capacity model unless a
backend is selected with --remote, --api-url or VNF_PLACEMENT_API_URL.

Environment Variables:
  VNF_PLACEMENT_API_URL       Backend API URL (default: http://localhost:8080)
  VNF_PLACEMENT_SAMPLES_PATH  Extra sample requests offered by the TUI
  VNF_PLACEMENT_NERD_FONTS    Force Nerd Font icons on (1) or off (0)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides VNF_PLACEMENT_API_URL, implies --remote)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&remote, "remote", false, "Evaluate through the backend API instead of in-process")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv(EnvAPIURL); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// IsRemote reports whether commands talk to the backend API
func IsRemote() bool {
	return remote || apiURL != "" || os.Getenv(EnvAPIURL) != ""
}

// evaluator is what the commands need from either the local runner or the API client
type evaluator interface {
	Capacity(ctx context.Context) (*models.CapacityTables, error)
	Evaluate(ctx context.Context, req *models.EvaluationRequest) (*models.EvaluationResponse, error)
	Sample(ctx context.Context, req *models.SampleRequest) (*models.SampleSummary, error)
}

// newEvaluator returns the configured evaluator and a label naming it
func newEvaluator() (evaluator, string) {
	if IsRemote() {
		url := GetAPIURL()
		return client.New(url), url
	}
	return local.New(nil), "local"
}
