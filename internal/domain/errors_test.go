package domain

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmbiguousArtifactErr(t *testing.T) {
	err := AmbiguousArtifactErr{
		Ref: "Token",
		Matches: []ArtifactRef{
			{Name: "Token", Path: "out/b/Token.json"},
			{Name: "Token", Path: "out/a/Token.json"},
		},
	}

	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"Token"`)
	assert.Equal(t, "  - Token (out/a/Token.json)", lines[1])
	assert.Equal(t, "  - Token (out/b/Token.json)", lines[2])
	assert.Equal(t, "out/b/Token.json", err.Matches[0].Path, "matches are not reordered in place")
}

func TestConstructorSignature(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(`[{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"owner","type":"address"},{"name":"","type":"uint256[]"}]}]`))
	require.NoError(t, err)

	a := &Artifact{ABI: parsed}
	assert.True(t, a.HasConstructor())
	assert.Equal(t, "constructor(address owner, uint256[])", a.ConstructorSignature())

	empty := &Artifact{}
	assert.False(t, empty.HasConstructor())
	assert.Equal(t, "constructor()", empty.ConstructorSignature())

	countErr := ArgumentCountErr{Signature: a.ConstructorSignature(), Expected: 2, Got: 1}
	assert.Equal(t, "constructor(address owner, uint256[]) expects 2 argument(s), got 1", countErr.Error())
}
