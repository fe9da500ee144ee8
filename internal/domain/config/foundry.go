package config

// FoundryConfig is the part of foundry.toml sling reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a foundry profile
type ProfileConfig struct {
	SrcPath     string `toml:"src,omitempty"`
	OutPath     string `toml:"out,omitempty"`
	SolcVersion string `toml:"solc_version,omitempty"`
}

// DefaultOutDir is where forge writes artifacts when foundry.toml does not set out
const DefaultOutDir = "out"

// OutDir returns the artifacts directory of the default profile. Without a
// foundry.toml it returns "".
func (f *FoundryConfig) OutDir() string {
	if f == nil {
		return ""
	}
	if p, ok := f.Profile["default"]; ok && p.OutPath != "" {
		return p.OutPath
	}
	return DefaultOutDir
}
