// ABOUTME: Check command for the vnf-placement CLI
// ABOUTME: Gates CI/CD pipelines on a placement satisfying every constraint

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a placement satisfies every constraint",
	Long: `Evaluate a placement and exit non-zero if any constraint is violated.

Exit codes:
  0 - Occupancy, bandwidth and latency all within limits
  1 - One or more constraints violated
  2 - Error (invalid request, connectivity)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addRequestFlags(checkCmd)
}

// checkResult represents the outcome of a single constraint
type checkResult struct {
	name   string
	value  float64 // amount by which the constraint is exceeded
	unit   string
	passed bool
}

// runCheck evaluates the placement and returns exit code
func runCheck(ctx context.Context, w io.Writer) int {
	req, err := loadRequest()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	ev, _ := newEvaluator()
	resp, err := ev.Evaluate(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := constraintChecks(resp.Result)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	_, failed := countResults(results)
	if failed > 0 {
		return 1
	}
	return 0
}

// constraintChecks turns the violation flags of a result into check results
func constraintChecks(r models.EvaluationResult) []checkResult {
	return []checkResult{
		{name: "occupancy", value: float64(r.ConstraintOccupancy), unit: "slots", passed: !r.InvalidOccupancy},
		{name: "bandwidth", value: r.ConstraintBandwidth, unit: "Mbps", passed: !r.InvalidBandwidth},
		{name: "latency", value: r.ConstraintLatency, unit: "ms", passed: !r.InvalidLatency},
	}
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var output string

	for _, r := range results {
		if r.passed {
			output += fmt.Sprintf("✓ %s: within limits\n", r.name)
		} else {
			output += fmt.Sprintf("✗ %s: exceeded by %s %s\n", r.name, formatNumber(r.value), r.unit)
		}
	}

	passed, failed := countResults(results)
	if failed > 0 {
		output += fmt.Sprintf("\nFAILED: %d constraint(s) violated", failed)
	} else {
		output += fmt.Sprintf("\nPASSED: All %d constraint(s) satisfied", passed)
	}

	return output
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		checks[i] = map[string]interface{}{
			"name":   r.name,
			"excess": r.value,
			"unit":   r.unit,
			"passed": r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status": status,
		"checks": checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
