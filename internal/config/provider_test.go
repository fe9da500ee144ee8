package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

const testFoundryToml = `
[profile.default]
src = "src"
out = "out"

[rpc_endpoints]
local = "http://127.0.0.1:8545"
sepolia = "https://sepolia.example.org/${SLING_TEST_SEPOLIA_KEY}"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindProjectRoot(t *testing.T) {
	t.Run("finds foundry.toml in ancestor", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), testFoundryToml)
		nested := filepath.Join(root, "src", "tokens")
		require.NoError(t, os.MkdirAll(nested, 0755))

		assert.Equal(t, root, FindProjectRoot(nested))
	})

	t.Run("finds .sling directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".sling"), 0755))
		nested := filepath.Join(root, "contracts")
		require.NoError(t, os.MkdirAll(nested, 0755))

		assert.Equal(t, root, FindProjectRoot(nested))
	})

	t.Run("falls back to start", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, dir, FindProjectRoot(dir))
	})
}

func TestProvider(t *testing.T) {
	t.Run("defaults without foundry.toml", func(t *testing.T) {
		root := t.TempDir()
		v := SetupViper(root, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, DefaultArtifactsDir), cfg.ArtifactsDir)
		assert.Nil(t, cfg.FoundryConfig)
		assert.Nil(t, cfg.Network)
		assert.Equal(t, config.OutputText, cfg.Output)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.Equal(t, time.Second, cfg.PollInterval)
	})

	t.Run("foundry out dir is the artifacts dir", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), testFoundryToml)
		v := SetupViper(root, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)

		require.NotNil(t, cfg.FoundryConfig)
		assert.Equal(t, filepath.Join(root, "out"), cfg.ArtifactsDir)
	})

	t.Run("foundry without out uses forge default", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default]\nsrc = \"src\"\n")
		v := SetupViper(root, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)

		require.NotNil(t, cfg.FoundryConfig)
		assert.Equal(t, filepath.Join(root, config.DefaultOutDir), cfg.ArtifactsDir)
	})

	t.Run("custom foundry out dir", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default]\nout = \"build/forge\"\n")
		v := SetupViper(root, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "build/forge"), cfg.ArtifactsDir)
	})

	t.Run("explicit artifacts dir wins", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), testFoundryToml)
		v := SetupViper(root, nil)
		v.Set("artifacts_dir", "browser/contracts/artifacts")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "browser/contracts/artifacts"), cfg.ArtifactsDir)
	})

	t.Run("rpc url wins over network", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), testFoundryToml)
		v := SetupViper(root, nil)
		v.Set("rpc_url", "http://10.0.0.1:8545")
		v.Set("network", "local")

		cfg, err := Provider(v)
		require.NoError(t, err)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "http://10.0.0.1:8545", cfg.RPCURL())
		assert.Empty(t, cfg.Network.Name)
	})

	t.Run("named network resolves from rpc_endpoints", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), testFoundryToml)
		v := SetupViper(root, nil)
		v.Set("network", "local")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.Network.Name)
		assert.Equal(t, "http://127.0.0.1:8545", cfg.RPCURL())
	})

	t.Run("unknown network fails", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), testFoundryToml)
		v := SetupViper(root, nil)
		v.Set("network", "mainnet")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mainnet")
	})

	t.Run("env file feeds settings", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".env"), "SLING_FROM=0x1B3FEA07590E63Ce68Cb21951f3C133a35032473\n")
		t.Cleanup(func() { os.Unsetenv("SLING_FROM") })

		v := SetupViper(root, nil)
		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "0x1B3FEA07590E63Ce68Cb21951f3C133a35032473", cfg.From)
	})

	t.Run("config file feeds settings", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".sling", "config.json"), `{"gas_price": "2gwei", "output": "json"}`)

		v := SetupViper(root, nil)
		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "2gwei", cfg.GasPrice)
		assert.Equal(t, config.OutputJSON, cfg.Output)
	})

	t.Run("CI implies non-interactive", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("CI", "true")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("interactive outside CI", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("CI", "")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.False(t, cfg.NonInteractive)
	})

	t.Run("rejects unknown output format", func(t *testing.T) {
		v := viper.New()
		v.Set("project_root", t.TempDir())
		v.Set("output", "xml")

		_, err := Provider(v)
		require.Error(t, err)
	})
}

func TestNetworkResolver(t *testing.T) {
	foundryConfig := &config.FoundryConfig{
		RpcEndpoints: map[string]string{
			"local":   "http://127.0.0.1:8545",
			"sepolia": "https://sepolia.example.org/${SLING_TEST_SEPOLIA_KEY}",
		},
	}
	r := NewNetworkResolver(foundryConfig)

	t.Run("lists sorted names", func(t *testing.T) {
		assert.Equal(t, []string{"local", "sepolia"}, r.Networks())
	})

	t.Run("literal url passes through", func(t *testing.T) {
		network, err := r.Resolve("ws://node:8546")
		require.NoError(t, err)
		assert.Equal(t, "ws://node:8546", network.RPCURL)
	})

	t.Run("unset env var is an error", func(t *testing.T) {
		os.Unsetenv("SLING_TEST_SEPOLIA_KEY")
		_, err := r.Resolve("sepolia")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLING_TEST_SEPOLIA_KEY")
	})

	t.Run("env var expands", func(t *testing.T) {
		t.Setenv("SLING_TEST_SEPOLIA_KEY", "abc123")
		network, err := r.Resolve("sepolia")
		require.NoError(t, err)
		assert.Equal(t, "https://sepolia.example.org/abc123", network.RPCURL)
	})

	t.Run("nil foundry config has no networks", func(t *testing.T) {
		assert.Empty(t, NewNetworkResolver(nil).Networks())
	})
}
