package usecase

import (
	"context"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
)

// InspectArtifactParams contains parameters for inspecting an artifact
type InspectArtifactParams struct {
	ArtifactRef  string
	ContractName string
}

// ConstructorInput describes one constructor parameter
type ConstructorInput struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// InspectArtifactResult describes a loaded artifact
type InspectArtifactResult struct {
	Artifact     *domain.Artifact
	Constructor  string
	Inputs       []ConstructorInput
	Payable      bool
	BytecodeSize int
	Functions    []string
	Events       []string
}

// InspectArtifact is a use case for describing an artifact without touching the node
type InspectArtifact struct {
	artifacts ArtifactRepository
}

// NewInspectArtifact creates a new InspectArtifact use case
func NewInspectArtifact(artifacts ArtifactRepository) *InspectArtifact {
	return &InspectArtifact{artifacts: artifacts}
}

// Run executes the use case
func (uc *InspectArtifact) Run(ctx context.Context, params InspectArtifactParams) (*InspectArtifactResult, error) {
	path, err := uc.artifacts.Resolve(ctx, params.ArtifactRef)
	if err != nil {
		return nil, err
	}
	artifact, err := uc.artifacts.Load(ctx, path, params.ContractName)
	if err != nil {
		return nil, err
	}

	inputs := lo.Map(artifact.ABI.Constructor.Inputs, func(arg abi.Argument, _ int) ConstructorInput {
		return ConstructorInput{Name: arg.Name, Type: arg.Type.String()}
	})

	functions := lo.MapToSlice(artifact.ABI.Methods, func(_ string, m abi.Method) string {
		return m.Sig
	})
	sort.Strings(functions)

	events := lo.MapToSlice(artifact.ABI.Events, func(_ string, e abi.Event) string {
		return e.Sig
	})
	sort.Strings(events)

	return &InspectArtifactResult{
		Artifact:     artifact,
		Constructor:  artifact.ConstructorSignature(),
		Inputs:       inputs,
		Payable:      artifact.ABI.Constructor.Payable || artifact.ABI.Constructor.StateMutability == "payable",
		BytecodeSize: len(artifact.Bytecode),
		Functions:    functions,
		Events:       events,
	}, nil
}
