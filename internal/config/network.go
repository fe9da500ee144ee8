package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} references in rpc_endpoints values
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// NetworkResolver resolves network names to node URLs
type NetworkResolver struct {
	endpoints map[string]string // raw, unexpanded
}

// NewNetworkResolver creates a resolver over foundry.toml [rpc_endpoints]
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	endpoints := map[string]string{}
	if foundryConfig != nil && foundryConfig.RpcEndpoints != nil {
		endpoints = foundryConfig.RpcEndpoints
	}
	return &NetworkResolver{endpoints: endpoints}
}

// Networks returns the configured network names, sorted
func (r *NetworkResolver) Networks() []string {
	names := lo.Keys(r.endpoints)
	sort.Strings(names)
	return names
}

// Resolve turns a network name or a literal URL into a Network
func (r *NetworkResolver) Resolve(nameOrURL string) (*config.Network, error) {
	if IsURL(nameOrURL) {
		return &config.Network{RPCURL: nameOrURL}, nil
	}

	raw, ok := r.endpoints[nameOrURL]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not in foundry.toml [rpc_endpoints]", domain.ErrNetworkNotFound, nameOrURL)
	}

	url, err := expandEndpoint(raw)
	if err != nil {
		return nil, fmt.Errorf("network %s: %w", nameOrURL, err)
	}

	return &config.Network{Name: nameOrURL, RPCURL: url}, nil
}

// IsURL reports whether s looks like a node URL rather than a network name
func IsURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasSuffix(s, ".ipc")
}

// expandEndpoint expands ${VAR} references, failing on unset variables
func expandEndpoint(raw string) (string, error) {
	missing := lo.Filter(envVarPattern.FindAllStringSubmatch(raw, -1), func(m []string, _ int) bool {
		_, set := os.LookupEnv(m[1])
		return !set
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("environment variable %s is not set", missing[0][1])
	}
	return os.ExpandEnv(raw), nil
}
