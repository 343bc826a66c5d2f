// ABOUTME: Evaluate command for the vnf-placement CLI
// ABOUTME: Evaluates one placement and prints usage, latency and constraint violations

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui/render"
)

var renderGrid bool

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a service chain placement",
	Long: `Evaluate where the VNFs of a service chain are placed.

The request comes from --service and --placement, or from a YAML/JSON --file
with service, placement and an optional service_length.

Exit codes:
  0 - Evaluated (feasible or not)
  2 - Error (invalid request, connectivity)`,
	Example: `  vnf-placement evaluate -s 4,8,1,4,3,6,6,8 -p 3,3,2,1,1,0,0,0
  vnf-placement evaluate -f request.yaml --render`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runEvaluate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	addRequestFlags(evaluateCmd)
	evaluateCmd.Flags().BoolVar(&renderGrid, "render", false, "Draw the VM slot grid of every node")
}

// runEvaluate evaluates the requested placement and returns exit code
func runEvaluate(ctx context.Context, w io.Writer) int {
	req, err := loadRequest()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	ev, label := newEvaluator()
	resp, err := ev.Evaluate(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatEvaluationHuman(label, resp))

	if renderGrid {
		tables, err := ev.Capacity(ctx)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, render.Grid(*tables, resp.Result))
	}
	return 0
}

// formatEvaluationHuman formats an evaluation for human readability
func formatEvaluationHuman(label string, resp *models.EvaluationResponse) string {
	r := resp.Result
	var sb strings.Builder

	fmt.Fprintf(&sb, "Evaluated:     %d entries (%s)\n", r.ServiceLength, label)
	fmt.Fprintf(&sb, "Service:       %s\n", joinInts(r.Service))
	fmt.Fprintf(&sb, "Placement:     %s\n", joinInts(r.Placement))
	fmt.Fprintf(&sb, "First VM:      %s\n", joinInts(r.FirstVMIndex))
	fmt.Fprintf(&sb, "Bandwidth:     %s Mbps\n", formatNumber(r.Bandwidth))
	fmt.Fprintf(&sb, "Link latency:  %s ms\n", formatNumber(r.LinkLatency))
	fmt.Fprintf(&sb, "CPU latency:   %s ms\n", formatNumber(r.CPULatency))
	sb.WriteString("\n")

	for _, c := range constraintChecks(r) {
		symbol := "✓"
		status := "ok"
		if !c.passed {
			symbol = "✗"
			status = fmt.Sprintf("exceeded by %s %s", formatNumber(c.value), c.unit)
		}
		fmt.Fprintf(&sb, "%s %-10s %s\n", symbol, c.name, status)
	}

	sb.WriteString("\n")
	if r.Feasible() {
		sb.WriteString("FEASIBLE")
	} else {
		fmt.Fprintf(&sb, "VIOLATED: %s", strings.Join(r.Violations(), ", "))
	}
	if resp.Bottleneck.Summary != "" {
		fmt.Fprintf(&sb, "\n%s", resp.Bottleneck.Summary)
	}
	return sb.String()
}

// joinInts prints infeasible VM markers as "-"
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v == models.InfeasibleVM {
			parts[i] = "-"
			continue
		}
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
