package cleanup

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"specforge/internal/analyzer"
	"specforge/internal/logger"
)

// Rewrite transforms file content and reports whether it changed
type Rewrite func(src string) (string, bool)

// Ticker receives one tick per processed file
type Ticker interface {
	Tick()
}

// Result summarizes a directory pass
type Result struct {
	Scanned  int
	Modified []string
	Failed   map[string]error
}

// ProcessDirectory applies rewrite to every file under root with one of the
// given extensions. Files are read and written as raw bytes. A file that
// cannot be read or written is logged and skipped.
func ProcessDirectory(ctx context.Context, fsys afero.Fs, root string, extensions []string, rewrite Rewrite, ticker Ticker) (*Result, error) {
	files, err := analyzer.ScanDirectory(fsys, root, nil, func(path string) bool {
		return analyzer.HasExtension(path, extensions)
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Failed: map[string]error{}}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Scanned++
		if ticker != nil {
			ticker.Tick()
		}

		changed, err := rewriteFile(fsys, path, rewrite)
		if err != nil {
			logger.Error("Error processing %s: %v", path, err)
			result.Failed[path] = err
			continue
		}
		if changed {
			logger.Info("Modified: %s", path)
			result.Modified = append(result.Modified, path)
		}
	}

	logger.Success("Completed! Modified %d files.", len(result.Modified))
	return result, nil
}

func rewriteFile(fsys afero.Fs, path string, rewrite Rewrite) (bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return false, fmt.Errorf("read: %w", err)
	}

	out, changed := rewrite(string(data))
	if !changed {
		return false, nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat: %w", err)
	}
	if err := afero.WriteFile(fsys, path, []byte(out), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write: %w", err)
	}
	return true, nil
}
