// ABOUTME: Sample command for the vnf-placement CLI
// ABOUTME: Evaluates random placements and reports how often each constraint fails

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

var (
	sampleRuns   int
	sampleLength int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Evaluate random placements",
	Long: `Draw random service chains and placements and report how many of them
satisfy every constraint. Zero values use the defaults: 1000 runs of a chain
with one entry per VNF type.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSample(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntVarP(&sampleRuns, "runs", "n", 0, "Number of random placements (default 1000)")
	sampleCmd.Flags().IntVarP(&sampleLength, "length", "l", 0, "Chain length (default one entry per VNF type)")
}

// runSample runs the random baseline and returns exit code
func runSample(ctx context.Context, w io.Writer) int {
	if sampleLength < 0 || sampleLength > models.MaxSampleLength {
		fmt.Fprintf(w, "Error: --length must be between 1 and %d\n", models.MaxSampleLength)
		return 2
	}

	ev, _ := newEvaluator()
	summary, err := ev.Sample(ctx, &models.SampleRequest{Runs: sampleRuns, ServiceLength: sampleLength})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatSampleHuman(summary))
	return 0
}

// formatSampleHuman formats a sample summary for human readability
func formatSampleHuman(s *models.SampleSummary) string {
	pct := func(n int) float64 {
		if s.Runs == 0 {
			return 0
		}
		return float64(n) / float64(s.Runs) * 100
	}

	return fmt.Sprintf(`Runs:               %d (chain length %d)
Feasible:           %d (%.1f%%)
Occupancy invalid:  %d (%.1f%%)
Bandwidth invalid:  %d (%.1f%%)
Latency invalid:    %d (%.1f%%)
Mean link latency:  %.1f ms
Mean CPU latency:   %.1f ms`,
		s.Runs, s.ServiceLength,
		s.Feasible, s.FeasibleRatio*100,
		s.InvalidOccupancy, pct(s.InvalidOccupancy),
		s.InvalidBandwidth, pct(s.InvalidBandwidth),
		s.InvalidLatency, pct(s.InvalidLatency),
		s.MeanLinkLatency, s.MeanCPULatency)
}
