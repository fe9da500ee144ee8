package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// DefaultArtifactsDir is used when neither the flag nor foundry.toml names one
const DefaultArtifactsDir = "artifacts"

// ConfigSet provides the runtime config and everything derived from it
var ConfigSet = wire.NewSet(
	Provider,
	ProvideNetworkResolver,
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectRoot = FindProjectRoot(cwd)
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	output := config.OutputFormat(strings.ToLower(v.GetString("output")))
	switch output {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q (text, json, yaml)", output)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		From:           v.GetString("from"),
		PrivateKey:     v.GetString("private_key"),
		Gas:            v.GetString("gas"),
		GasPrice:       v.GetString("gas_price"),
		Value:          v.GetString("value"),
		DryRun:         v.GetBool("dry_run"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive") || isNonInteractiveEnv(),
		Output:         output,
		Timeout:        v.GetDuration("timeout"),
		PollInterval:   v.GetDuration("poll_interval"),
	}

	// Load foundry config
	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.FoundryConfig = foundryConfig

	artifactsDir := v.GetString("artifacts_dir")
	if !v.IsSet("artifacts_dir") || artifactsDir == "" {
		artifactsDir = foundryConfig.OutDir()
	}
	if artifactsDir == "" {
		artifactsDir = DefaultArtifactsDir
	}
	if !filepath.IsAbs(artifactsDir) {
		artifactsDir = filepath.Join(projectRoot, artifactsDir)
	}
	cfg.ArtifactsDir = artifactsDir

	// An explicit URL wins over a named network
	if rpcURL := v.GetString("rpc_url"); rpcURL != "" {
		cfg.Network = &config.Network{RPCURL: rpcURL}
	} else if networkName := v.GetString("network"); networkName != "" {
		network, err := NewNetworkResolver(foundryConfig).Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// isNonInteractiveEnv reports environments where nobody can answer a prompt
func isNonInteractiveEnv() bool {
	return os.Getenv("CI") == "true"
}

// FindProjectRoot walks up from start to the nearest directory holding
// foundry.toml or .sling/, falling back to start itself.
func FindProjectRoot(start string) string {
	dir := start
	for {
		for _, marker := range []string{"foundry.toml", ".sling"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	loadDotEnv(projectRoot)

	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".sling"))

	// Set up environment variables
	v.SetEnvPrefix("SLING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", 5*time.Minute)
	v.SetDefault("poll_interval", time.Second)
	v.SetDefault("output", string(config.OutputText))
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.FoundryConfig)
}
