package analyzer

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/afero"

	"specforge/internal/javaparser"
	"specforge/internal/logger"
)

// Entity is a JPA @Entity class found under a source root
type Entity struct {
	Name    string
	Package string
	Path    string
	Imports []string
	Fields  []javaparser.Field // private fields in declaration order
}

// FindEntities scans root for @Entity classes that declare a package and at
// least one private field. Files that fail to parse are logged and skipped.
func FindEntities(ctx context.Context, fsys afero.Fs, root string, excludePatterns []string) ([]*Entity, error) {
	files, err := ScanDirectory(fsys, root, excludePatterns, IsJavaFile)
	if err != nil {
		return nil, err
	}

	var entities []*Entity
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := ReadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(content, "@Entity") {
			continue
		}

		javaClass, err := javaparser.ParseJavaFile(content)
		if err != nil {
			var parseErr *javaparser.ParseError
			if errors.As(err, &parseErr) {
				logger.Warn("Skipping %s: %v", path, err)
				continue
			}
			return nil, err
		}
		if !javaClass.IsEntity() || javaClass.Package == "" {
			continue
		}

		fields := javaClass.PrivateFields()
		if len(fields) == 0 {
			continue
		}

		entities = append(entities, &Entity{
			Name:    javaClass.Name,
			Package: javaClass.Package,
			Path:    path,
			Imports: javaClass.Imports,
			Fields:  fields,
		})
	}

	logger.Debug("[ANALYZER] Found %d entities under %s", len(entities), root)
	return entities, nil
}
