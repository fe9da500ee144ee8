package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrArtifactNotFound is returned when no artifact matches a reference
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidArtifact is returned when an artifact file can't be interpreted
	ErrInvalidArtifact = errors.New("invalid artifact")

	// ErrNoBytecode is returned for artifacts without creation bytecode (interfaces, abstract contracts)
	ErrNoBytecode = errors.New("artifact has no creation bytecode")

	// ErrUnlinkedBytecode is returned when bytecode still contains library placeholders
	ErrUnlinkedBytecode = errors.New("bytecode contains unlinked library references")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNoSender is returned when neither a key nor a node account is available
	ErrNoSender = errors.New("no sender available")

	// ErrSenderNotAvailable is returned when the requested sender is not managed by the node
	ErrSenderNotAvailable = errors.New("sender not available on node")

	// ErrNotConnected is returned when a node operation runs without an RPC URL
	ErrNotConnected = errors.New("not connected to a node")

	// ErrDeploymentReverted is returned when the creation transaction failed on-chain
	ErrDeploymentReverted = errors.New("deployment transaction reverted")

	// ErrNoContractAddress is returned when the receipt carries no created address
	ErrNoContractAddress = errors.New("receipt has no contract address")

	// ErrNoCode is returned when no code exists at the created address
	ErrNoCode = errors.New("no code at contract address")

	// ErrNetworkNotFound is returned for unknown network names
	ErrNetworkNotFound = errors.New("network not found")
)

// ArgumentCountErr reports a constructor argument count mismatch
type ArgumentCountErr struct {
	Signature string
	Expected  int
	Got       int
}

func (e ArgumentCountErr) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Signature, e.Expected, e.Got)
}

// AmbiguousArtifactErr is returned when a contract name matches several artifacts
type AmbiguousArtifactErr struct {
	Ref     string
	Matches []ArtifactRef
}

func (e AmbiguousArtifactErr) Error() string {
	sorted := make([]ArtifactRef, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var suggestions []string
	for _, ref := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s (%s)", ref.Name, ref.Path))
	}

	return fmt.Sprintf("multiple artifacts found for %q - pass the artifact path instead:\n%s",
		e.Ref, strings.Join(suggestions, "\n"))
}
