package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/sling/internal/app"
	"github.com/trebuchet-org/sling/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sling",
		Short: "Deploy compiled contract artifacts to an EVM node",
		Long: `sling reads a compiled contract artifact (Remix, Foundry, Hardhat, Truffle or
solc --combined-json), asks the node for its accounts and sends a single
contract-creation transaction, then prints the address of the new contract.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")
			if projectRoot == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				projectRoot = config.FindProjectRoot(cwd)
			}

			// Set up viper with every flag of the command bound
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, cleanup, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, appKey, appInstance)

			// Add timeout if configured
			cancel := context.CancelFunc(func() {})
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}

			// PostRun is skipped when RunE fails, so release resources around RunE itself
			if run := cmd.RunE; run != nil {
				cmd.RunE = func(cmd *cobra.Command, args []string) error {
					defer cleanup()
					defer cancel()
					return run(cmd, args)
				}
			} else {
				cleanup()
				cancel()
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("rpc-url", "", "Node JSON-RPC URL (overrides --network)")
	flags.StringP("network", "n", "", "Network name from foundry.toml [rpc_endpoints]")
	flags.String("artifacts-dir", "", "Directory holding compiled artifacts (default: foundry out dir or ./artifacts)")
	flags.String("project-root", "", "Project root (default: nearest directory with foundry.toml or .sling/)")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("non-interactive", false, "Disable interactive prompts")
	flags.Duration("timeout", 0, "Overall timeout for the command (default 5m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspection",
		Title: "Inspection Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	for _, cmd := range []*cobra.Command{
		NewAccountsCmd(),
		NewInspectCmd(),
		NewArtifactsCmd(),
		NewNetworksCmd(),
	} {
		cmd.GroupID = "inspection"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
