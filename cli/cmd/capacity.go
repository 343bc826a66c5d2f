// ABOUTME: Capacity command for the vnf-placement CLI
// ABOUTME: Prints the node, link and VNF type tables of the capacity model

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
	"gopkg.in/yaml.v3"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

var yamlOutput bool

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Show the capacity model",
	Long:  `Show the VM capacity and link of every node and the footprint of every VNF type.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCapacity(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
	capacityCmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output YAML instead of human-readable text")
}

// runCapacity fetches the capacity tables and returns exit code
func runCapacity(ctx context.Context, w io.Writer) int {
	ev, _ := newEvaluator()
	tables, err := ev.Capacity(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	switch {
	case IsJSONOutput():
		data, _ := json.MarshalIndent(tables, "", "  ")
		fmt.Fprintln(w, string(data))
	case yamlOutput:
		data, err := yaml.Marshal(tables)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprint(w, string(data))
	default:
		fmt.Fprint(w, formatCapacityHuman(tables))
	}
	return 0
}

// formatCapacityHuman renders the tables as two aligned text tables
func formatCapacityHuman(t *models.CapacityTables) string {
	var sb strings.Builder

	sb.WriteString("NODE  VMS  LINK MBPS  LINK MS\n")
	for n := 0; n < t.NumNodes(); n++ {
		fmt.Fprintf(&sb, "%4d  %3d  %9s  %7s\n", n,
			t.Nodes[n].VMCapacity, formatNumber(t.Links[n].Bandwidth), formatNumber(t.Links[n].Latency))
	}

	sb.WriteString("\nTYPE  VM SIZE  MBPS  LATENCY MS\n")
	for v := 1; v < len(t.VNFs); v++ {
		fmt.Fprintf(&sb, "%4d  %7d  %4s  %10s\n", v,
			t.VNFs[v].VMSize, formatNumber(t.VNFs[v].BandwidthDemand), formatNumber(t.VNFs[v].LatencyBudget))
	}

	fmt.Fprintf(&sb, "\nLargest node: %d VMs\n", t.MaxVMCapacity)
	return sb.String()
}
