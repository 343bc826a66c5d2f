// ABOUTME: Interactive command for the vnf-placement CLI
// ABOUTME: Launches the terminal UI on the configured evaluator

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore placements interactively",
	Long: `Launch the interactive evaluator. Requests come from the reference
scenario, a request file, the manual entry wizard or, in local mode, a
random draw.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, label := newEvaluator()
		return tui.Run(ev, label)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
