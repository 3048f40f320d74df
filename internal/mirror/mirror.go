package mirror

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"specforge/internal/analyzer"
	"specforge/internal/logger"
)

// Result lists the target directories, split by whether the run created them
type Result struct {
	Created  []string
	Existing []string
}

// Tree recreates the directory layout of source below target. The source
// root itself maps to target. Files are not copied.
func Tree(ctx context.Context, fsys afero.Fs, source, target string) (*Result, error) {
	dirs, err := analyzer.ScanDirs(fsys, source)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, dir := range append([]string{source}, dirs...) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(source, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", dir, err)
		}
		dest := filepath.Join(target, rel)

		exists, err := afero.DirExists(fsys, dest)
		if err != nil {
			return nil, err
		}
		if exists {
			logger.Debug("[MIRROR] Already exists: %s", dest)
			result.Existing = append(result.Existing, dest)
			continue
		}

		if err := fsys.MkdirAll(dest, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dest, err)
		}
		logger.Info("Creating: %s", dest)
		result.Created = append(result.Created, dest)
	}

	return result, nil
}
