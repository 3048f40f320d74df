package dto

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"specforge/internal/analyzer"
	"specforge/internal/javaparser"
	"specforge/internal/logger"
)

// Kinds of companion classes written next to each entity
var Kinds = []string{"Request", "Response"}

// Result lists the companion files touched by a run
type Result struct {
	Created  []string
	Existing []string // left untouched because overwrite is off
}

// Generator writes lombok {Entity}Request / {Entity}Response classes
type Generator struct {
	fs        afero.Fs
	overwrite bool
	excludes  []string
}

// NewGenerator creates a generator. Existing files are kept unless overwrite is set.
func NewGenerator(fs afero.Fs, overwrite bool) *Generator {
	return &Generator{fs: fs, overwrite: overwrite}
}

// WithExcludes sets directory patterns skipped while scanning
func (g *Generator) WithExcludes(patterns []string) *Generator {
	g.excludes = patterns
	return g
}

// Generate writes both companions for every entity found under root
func (g *Generator) Generate(ctx context.Context, root string) (*Result, error) {
	entities, err := analyzer.FindEntities(ctx, g.fs, root, g.excludes)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, e := range entities {
		for _, kind := range Kinds {
			path := filepath.Join(filepath.Dir(e.Path), e.Name+kind+".java")

			exists, err := analyzer.FileExists(g.fs, path)
			if err != nil {
				return nil, err
			}
			if exists && !g.overwrite {
				logger.Info("%s already exists: %s", kind, path)
				result.Existing = append(result.Existing, path)
				continue
			}

			if err := analyzer.WriteFile(g.fs, path, []byte(Render(e, kind))); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("Created %s: %s", kind, path)
			result.Created = append(result.Created, path)
		}
	}

	return result, nil
}

// Render produces the companion class source. The entity's imports are
// carried over when a field type refers to them.
func Render(e *analyzer.Entity, kind string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "package %s;\n\n", e.Package)
	for _, imp := range companionImports(e) {
		fmt.Fprintf(&sb, "import %s;\n", imp)
	}
	fmt.Fprintf(&sb, "\n@Data\npublic class %s%s {\n", e.Name, kind)
	for _, f := range e.Fields {
		fmt.Fprintf(&sb, "    private %s %s;\n", f.Type, f.Name)
	}
	sb.WriteString("}\n")

	return sb.String()
}

func companionImports(e *analyzer.Entity) []string {
	used := map[string]bool{}
	for _, f := range e.Fields {
		javaparser.ParseTypeRef(f.Type).Walk(func(r *javaparser.TypeRef) {
			used[r.SimpleName()] = true
		})
	}

	imports := []string{"lombok.Data", "java.util.UUID"}
	seen := map[string]bool{"lombok.Data": true, "java.util.UUID": true}
	var carried []string
	for _, imp := range e.Imports {
		if seen[imp] {
			continue
		}
		_, class := analyzer.SplitPackageAndClass(imp)
		if used[class] {
			seen[imp] = true
			carried = append(carried, imp)
		}
	}
	sort.Strings(carried)
	return append(imports, carried...)
}
