// ABOUTME: Health command for the vnf-placement CLI
// ABOUTME: Checks backend connectivity, model scale and cache statistics

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

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the placement evaluator backend and report its capacity model and cache status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *client.HealthResponse) string {
	out := fmt.Sprintf(`Backend:    %s
Status:     %s
Nodes:      %d
VNF types:  %d
Metrics:    %t`, url, resp.Status, resp.Nodes, resp.VNFTypes, resp.Metrics)

	if resp.Cache != nil {
		out += fmt.Sprintf("\nCache:      %d entries, %d hits, %d misses",
			resp.Cache.Entries, resp.Cache.Hits, resp.Cache.Misses)
	} else {
		out += "\nCache:      disabled"
	}
	return out
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *client.HealthResponse) string {
	output := map[string]interface{}{
		"backend":   url,
		"status":    resp.Status,
		"nodes":     resp.Nodes,
		"vnf_types": resp.VNFTypes,
		"metrics":   resp.Metrics,
	}
	if resp.Cache != nil {
		output["cache"] = resp.Cache
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
