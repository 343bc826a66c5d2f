// ABOUTME: Entry point for the vnf-placement CLI
// ABOUTME: Evaluates VNF placements locally or against the evaluator API

package main

import (
	"fmt"
	"os"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
