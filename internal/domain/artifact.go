package domain

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ArtifactFormat identifies the compiler output layout an artifact was read from
type ArtifactFormat string

const (
	FormatRemixMetadata ArtifactFormat = "remix-metadata"
	FormatRemix         ArtifactFormat = "remix"
	FormatFoundry       ArtifactFormat = "foundry"
	FormatHardhat       ArtifactFormat = "hardhat"
	FormatSolcCombined  ArtifactFormat = "solc-combined"
)

// Artifact is a compiled contract ready to be deployed
type Artifact struct {
	Name     string          `json:"name"`
	Path     string          `json:"path"`
	Format   ArtifactFormat  `json:"format"`
	Compiler string          `json:"compiler,omitempty"`
	ABI      abi.ABI         `json:"-"`
	RawABI   json.RawMessage `json:"abi"`
	Bytecode []byte          `json:"-"`
}

// HasConstructor reports whether the ABI declares a constructor with inputs
func (a *Artifact) HasConstructor() bool {
	return len(a.ABI.Constructor.Inputs) > 0
}

// ConstructorSignature renders the constructor as "constructor(type name, ...)"
func (a *Artifact) ConstructorSignature() string {
	return ConstructorSignature(a.ABI)
}

// ConstructorSignature renders the constructor of an ABI
func ConstructorSignature(parsed abi.ABI) string {
	params := ""
	for i, input := range parsed.Constructor.Inputs {
		if i > 0 {
			params += ", "
		}
		params += input.Type.String()
		if input.Name != "" {
			params += " " + input.Name
		}
	}
	return fmt.Sprintf("constructor(%s)", params)
}

// ArtifactRef points at an artifact file without loading it
type ArtifactRef struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
