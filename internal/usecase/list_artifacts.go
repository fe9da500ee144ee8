package usecase

import (
	"context"

	"github.com/trebuchet-org/sling/internal/domain"
)

// ListArtifacts is a use case for listing deployable artifacts
type ListArtifacts struct {
	artifacts ArtifactRepository
}

// NewListArtifacts creates a new ListArtifacts use case
func NewListArtifacts(artifacts ArtifactRepository) *ListArtifacts {
	return &ListArtifacts{artifacts: artifacts}
}

// Run executes the use case
func (uc *ListArtifacts) Run(ctx context.Context) ([]domain.ArtifactRef, error) {
	return uc.artifacts.List(ctx)
}
