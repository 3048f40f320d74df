package tsmodel

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"specforge/internal/analyzer"
	"specforge/internal/javaparser"
	"specforge/internal/logger"
)

// Tracker receives per-model progress. Increment is called from workers.
type Tracker interface {
	SetTotal(total int)
	Increment() error
}

// Generator writes one TypeScript interface per @Entity class
type Generator struct {
	fs       afero.Fs
	workers  int
	excludes []string
	tracker  Tracker
}

// NewGenerator creates a generator with a bounded worker pool
func NewGenerator(fs afero.Fs, workers int) *Generator {
	if workers < 1 {
		workers = 1
	}
	return &Generator{fs: fs, workers: workers}
}

// WithExcludes sets directory patterns skipped while scanning
func (g *Generator) WithExcludes(patterns []string) *Generator {
	g.excludes = patterns
	return g
}

// WithTracker sets the progress receiver
func (g *Generator) WithTracker(t Tracker) *Generator {
	g.tracker = t
	return g
}

// Generate scans root for entities, then renders them in parallel below
// outDir/<package dirs>/<Class>.ts. Returns the written paths, sorted.
func (g *Generator) Generate(ctx context.Context, root, outDir string) ([]string, error) {
	entities, err := analyzer.FindEntities(ctx, g.fs, root, g.excludes)
	if err != nil {
		return nil, err
	}

	// name -> package, read-only once the workers start
	packages := make(map[string]string, len(entities))
	for _, e := range entities {
		if prev, ok := packages[e.Name]; ok && prev != e.Package {
			logger.Warn("Entity %s declared in %s and %s, imports use %s", e.Name, prev, e.Package, e.Package)
		}
		packages[e.Name] = e.Package
	}

	if g.tracker != nil {
		g.tracker.SetTotal(len(entities))
	}

	p := pool.NewWithResults[string]().
		WithContext(ctx).
		WithMaxGoroutines(g.workers)

	for _, e := range entities {
		p.Go(func(ctx context.Context) (string, error) {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			path := filepath.Join(outDir, filepath.Join(strings.Split(e.Package, ".")...), e.Name+".ts")
			if err := analyzer.WriteFile(g.fs, path, []byte(Render(e, packages))); err != nil {
				return "", fmt.Errorf("failed to write model %s: %w", e.Name, err)
			}
			logger.Debug("[TSMODEL] Created %s", path)
			if g.tracker != nil {
				g.tracker.Increment()
			}
			return path, nil
		})
	}

	written, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.Strings(written)
	return written, nil
}

// Render produces the TypeScript source for one entity
func Render(e *analyzer.Entity, packages map[string]string) string {
	imports := map[string]bool{}
	var body strings.Builder

	for _, f := range e.Fields {
		ref := javaparser.ParseTypeRef(f.Type)
		for _, name := range referencedEntities(ref, packages) {
			if name != e.Name {
				imports[fmt.Sprintf("import type { %s } from '%s/%s';", name, relativeDir(e.Package, packages[name]), name)] = true
			}
		}
		fmt.Fprintf(&body, "  %s: %s;\n", f.Name, TSType(ref, packages))
	}

	var sb strings.Builder
	if len(imports) > 0 {
		lines := make([]string, 0, len(imports))
		for line := range imports {
			lines = append(lines, line)
		}
		sort.Strings(lines)
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "export interface %s {\n%s}\n", e.Name, body.String())
	return sb.String()
}

// relativeDir returns the import directory of package to as seen from
// package from: "." for the same package, "../../billing" across branches.
func relativeDir(from, to string) string {
	if from == to {
		return "."
	}
	fromParts := strings.Split(from, ".")
	toParts := strings.Split(to, ".")

	common := 0
	for common < len(fromParts) && common < len(toParts) && fromParts[common] == toParts[common] {
		common++
	}

	up := len(fromParts) - common
	down := strings.Join(toParts[common:], "/")
	if up == 0 {
		return "./" + down
	}
	rel := strings.Repeat("../", up) + down
	return strings.TrimSuffix(rel, "/")
}
