package config

import (
	"time"
)

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactsDir string // absolute

	// Node settings
	Network *Network // nil when neither --rpc-url nor --network is given

	// Sender settings
	From       string
	PrivateKey string //nolint:gosec // resolved from flag or env, never persisted

	// Transaction settings (raw, parsed by the deploy use case)
	Gas      string
	GasPrice string
	Value    string
	DryRun   bool

	// Execution settings
	Debug          bool
	NonInteractive bool
	Output         OutputFormat
	Timeout        time.Duration
	PollInterval   time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig // nil when the project has no foundry.toml
}

// Network represents network configuration
type Network struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	RPCURL string `json:"rpcUrl" yaml:"rpcUrl"`
}

// RPCURL returns the configured node URL or ""
func (c *RuntimeConfig) RPCURL() string {
	if c == nil || c.Network == nil {
		return ""
	}
	return c.Network.RPCURL
}
