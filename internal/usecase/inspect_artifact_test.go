package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/usecase"
)

const tokenABI = `[
	{"type":"constructor","stateMutability":"payable","inputs":[{"name":"owner","type":"address"},{"name":"supply","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"who","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

func TestInspectArtifact(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)

	artifact := &domain.Artifact{
		Name:     "Token",
		Path:     "/project/out/Token.sol/Token.json",
		Format:   domain.FormatFoundry,
		ABI:      parsed,
		Bytecode: make([]byte, 42),
	}

	repo := &MockArtifactRepository{}
	repo.On("Resolve", mock.Anything, "Token").Return(artifact.Path, nil)
	repo.On("Load", mock.Anything, artifact.Path, "").Return(artifact, nil)

	result, err := usecase.NewInspectArtifact(repo).Run(context.Background(), usecase.InspectArtifactParams{ArtifactRef: "Token"})
	require.NoError(t, err)

	assert.Equal(t, "constructor(address owner, uint256 supply)", result.Constructor)
	assert.Equal(t, []usecase.ConstructorInput{
		{Name: "owner", Type: "address"},
		{Name: "supply", Type: "uint256"},
	}, result.Inputs)
	assert.True(t, result.Payable)
	assert.Equal(t, 42, result.BytecodeSize)
	assert.Equal(t, []string{"balanceOf(address)", "transfer(address,uint256)"}, result.Functions)
	assert.Equal(t, []string{"Transfer(address,address,uint256)"}, result.Events)
}
