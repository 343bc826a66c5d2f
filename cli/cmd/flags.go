// ABOUTME: Request flags shared by the evaluate and check commands
// ABOUTME: Builds an evaluation request from inline lists or a request file

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/cli/internal/request"
)

var (
	serviceFlag   string
	placementFlag string
	requestFile   string
	lengthFlag    int
)

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&serviceFlag, "service", "s", "", "VNF types in chain order, e.g. 4,8,1")
	cmd.Flags().StringVarP(&placementFlag, "placement", "p", "", "Node for each VNF, e.g. 3,3,2")
	cmd.Flags().StringVarP(&requestFile, "file", "f", "", "YAML or JSON request file")
	cmd.Flags().IntVarP(&lengthFlag, "length", "l", 0, "Evaluate only the first N entries of the chain")
}

func resetRequestFlags() {
	serviceFlag, placementFlag, requestFile, lengthFlag = "", "", "", 0
}

func loadRequest() (*models.EvaluationRequest, error) {
	return request.Build(serviceFlag, placementFlag, requestFile, lengthFlag)
}
