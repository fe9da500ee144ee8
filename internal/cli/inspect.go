package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var contractName string

	cmd := &cobra.Command{
		Use:   "inspect <artifact|Name>",
		Short: "Show what an artifact deploys without contacting the node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InspectArtifact.Run(cmd.Context(), usecase.InspectArtifactParams{
				ArtifactRef:  args[0],
				ContractName: contractName,
			})
			if err != nil {
				return err
			}

			return render.NewInspectRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Contract to pick from a multi-contract artifact")

	return cmd
}
