package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// ArtifactsRenderer renders the artifacts found in the artifacts directory
type ArtifactsRenderer struct {
	out         io.Writer
	format      config.OutputFormat
	projectRoot string
}

// NewArtifactsRenderer creates a new artifacts renderer; paths are shown relative to projectRoot
func NewArtifactsRenderer(out io.Writer, format config.OutputFormat, projectRoot string) Renderer[[]domain.ArtifactRef] {
	return &ArtifactsRenderer{out: out, format: format, projectRoot: projectRoot}
}

// Render writes the artifact list in the configured format
func (r *ArtifactsRenderer) Render(refs []domain.ArtifactRef) error {
	if r.format != config.OutputText {
		return writeStructured(r.out, r.format, nonNil(refs))
	}

	if len(refs) == 0 {
		fmt.Fprintln(r.out, "No artifacts found")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"Name", "Path"})
	t.AppendRows(lo.Map(refs, func(ref domain.ArtifactRef, _ int) table.Row {
		return table.Row{ref.Name, r.relative(ref.Path)}
	}))
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func (r *ArtifactsRenderer) relative(path string) string {
	if r.projectRoot == "" {
		return path
	}
	if rel, err := filepath.Rel(r.projectRoot, path); err == nil {
		return rel
	}
	return path
}
