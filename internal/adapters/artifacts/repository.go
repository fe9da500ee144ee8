package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// maxSuggestions caps the "did you mean" list on a miss
const maxSuggestions = 3

// metadataSuffix marks Remix metadata files beside their compile artifacts
const metadataSuffix = "_metadata.json"

// Repository reads compiled artifacts from a file system
type Repository struct {
	fs          afero.Fs
	projectRoot string
	dir         string
	log         *slog.Logger
}

// NewRepository creates an artifact repository rooted at the configured artifacts directory
func NewRepository(fsys afero.Fs, cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		fs:          fsys,
		projectRoot: cfg.ProjectRoot,
		dir:         cfg.ArtifactsDir,
		log:         log,
	}
}

// ProvideFs returns the OS file system for Wire
func ProvideFs() afero.Fs {
	return afero.NewOsFs()
}

// Resolve turns a path or contract name into an artifact file path
func (r *Repository) Resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: empty artifact reference", domain.ErrArtifactNotFound)
	}

	if isPathRef(ref) {
		return r.resolvePath(ref)
	}

	refs, err := r.List(ctx)
	if err != nil {
		return "", err
	}

	matches := lo.Filter(refs, func(a domain.ArtifactRef, _ int) bool {
		return a.Name == ref
	})
	switch len(matches) {
	case 1:
		r.log.Debug("resolved artifact", "ref", ref, "path", matches[0].Path)
		return matches[0].Path, nil
	case 0:
		return "", r.notFound(ref, refs)
	default:
		return "", domain.AmbiguousArtifactErr{Ref: ref, Matches: matches}
	}
}

// Load reads and decodes an artifact file
func (r *Repository) Load(ctx context.Context, path string, contractName string) (*domain.Artifact, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	artifact, err := decodeArtifact(path, data, contractName)
	if errors.Is(err, domain.ErrNoBytecode) && strings.HasSuffix(path, metadataSuffix) {
		artifact, err = r.loadCompiledSibling(path, contractName, err)
	}
	if err != nil {
		return nil, err
	}
	r.log.Debug("decoded artifact", "path", path, "format", artifact.Format, "bytecode", len(artifact.Bytecode))
	return artifact, nil
}

// loadCompiledSibling reads X.json next to a Remix X_metadata.json, which
// carries the ABI but no bytecode. metaErr is returned when there is none.
func (r *Repository) loadCompiledSibling(metadataPath, contractName string, metaErr error) (*domain.Artifact, error) {
	sibling := strings.TrimSuffix(metadataPath, metadataSuffix) + ".json"
	data, err := afero.ReadFile(r.fs, sibling)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, metaErr
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", sibling, err)
	}

	r.log.Debug("metadata has no bytecode, using compile artifact", "metadata", metadataPath, "artifact", sibling)
	return decodeArtifact(sibling, data, contractName)
}

// List enumerates deployable artifacts below the artifacts directory. A
// missing directory yields an empty list.
func (r *Repository) List(ctx context.Context) ([]domain.ArtifactRef, error) {
	exists, err := afero.DirExists(r.fs, r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", r.dir, err)
	}
	if !exists {
		r.log.Debug("artifacts directory does not exist", "dir", r.dir)
		return []domain.ArtifactRef{}, nil
	}

	var refs []domain.ArtifactRef
	err = afero.Walk(r.fs, r.dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if !isArtifactFile(info.Name()) {
			return nil
		}
		refs = append(refs, domain.ArtifactRef{
			Name: strings.TrimSuffix(info.Name(), ".json"),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.dir, err)
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Path < refs[j].Path
	})
	return refs, nil
}

// resolvePath checks a path reference, relative to the working directory
// first and the project root second
func (r *Repository) resolvePath(ref string) (string, error) {
	candidates := []string{ref}
	if !filepath.IsAbs(ref) {
		candidates = append(candidates, filepath.Join(r.projectRoot, ref))
	}

	for _, candidate := range candidates {
		ok, err := afero.Exists(r.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
		if ok {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, ref)
}

// notFound builds the miss error with fuzzy suggestions
func (r *Repository) notFound(ref string, refs []domain.ArtifactRef) error {
	names := lo.Uniq(lo.Map(refs, func(a domain.ArtifactRef, _ int) string {
		return a.Name
	}))

	found := fuzzy.Find(ref, names)
	suggestions := lo.Map(found, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	if len(suggestions) == 0 {
		return fmt.Errorf("%w: no artifact named %s in %s", domain.ErrArtifactNotFound, ref, r.dir)
	}
	return fmt.Errorf("%w: no artifact named %s in %s (did you mean %s?)",
		domain.ErrArtifactNotFound, ref, r.dir, strings.Join(suggestions, ", "))
}

func isPathRef(ref string) bool {
	return strings.HasSuffix(ref, ".json") || strings.ContainsRune(ref, '/') || strings.ContainsRune(ref, filepath.Separator)
}

// isArtifactFile filters out metadata and debug companions of compile artifacts
func isArtifactFile(name string) bool {
	return strings.HasSuffix(name, ".json") &&
		!strings.HasSuffix(name, metadataSuffix) &&
		!strings.HasSuffix(name, ".dbg.json") &&
		!strings.HasSuffix(name, ".metadata.json")
}

// Ensure the repository implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
