package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/cli/render"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var contractName string

	cmd := &cobra.Command{
		Use:   "deploy <artifact|Name> [args...]",
		Short: "Deploy a compiled contract artifact",
		Long: `Deploy a compiled contract in a single contract-creation transaction.

The artifact is given as a path to its JSON file or as a contract name, which
is looked up as <Name>.json below the artifacts directory. Remaining arguments
are passed to the constructor. Arrays are written as JSON, e.g. '["0x01","0x02"]'.

The sender is the account of --private-key (signed locally), else --from,
else the node's only or first account. With several node accounts and an
interactive terminal you are asked to pick one.

Gas defaults to 1500000 and the gas price to 30 gwei. Pass "auto" to let the
node estimate either of them.

Examples:
  sling deploy Storage --rpc-url http://localhost:8545
  sling deploy artifacts/Token.json 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 1000000
  sling deploy Token --network sepolia --gas auto --gas-price 2gwei
  sling deploy combined.json --contract Vault --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				ArtifactRef:  args[0],
				ContractName: contractName,
				Args:         args[1:],
			})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Contract to pick from a multi-contract artifact")
	cmd.Flags().String("from", "", "Sender address (must be managed by the node unless --private-key is set)")
	cmd.Flags().String("private-key", "", "Hex private key to sign with locally (or SLING_PRIVATE_KEY)")
	cmd.Flags().String("gas", "", `Gas limit, or "auto" (default 1500000)`)
	cmd.Flags().String("gas-price", "", `Gas price in wei, with a gwei/ether suffix, or "auto" (default 30gwei)`)
	cmd.Flags().String("value", "", "Value sent to the constructor, e.g. 1ether (payable constructors only)")
	cmd.Flags().Bool("dry-run", false, "Build the transaction without sending it")

	return cmd
}
