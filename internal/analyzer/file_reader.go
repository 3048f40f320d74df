package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ScanDirectory walks the root directory and returns the files accepted by accept,
// sorted by path. Directories matching excludePatterns are skipped.
// A nil accept keeps every file.
func ScanDirectory(fsys afero.Fs, root string, excludePatterns []string, accept func(path string) bool) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Check exclusion for directories
		if info.IsDir() {
			// Skip .git always
			if info.Name() == ".git" || info.Name() == ".svn" {
				return filepath.SkipDir
			}

			// Normalize path for matching (forward slashes)
			relPath, _ := filepath.Rel(root, path)
			relPath = filepath.ToSlash(relPath)

			for _, pat := range excludePatterns {
				if matchGlob(relPath, pat) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if accept == nil || accept(path) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// ScanDirs returns every directory below root (root excluded), sorted
func ScanDirs(fsys afero.Fs, root string) ([]string, error) {
	var dirs []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(dirs)
	return dirs, nil
}

// matchGlob matches a slash-separated relative path against "**/name/**" style patterns
func matchGlob(path, pattern string) bool {
	if path == "." || path == "" {
		return false
	}
	clean := strings.Trim(strings.ReplaceAll(filepath.ToSlash(pattern), "**", ""), "/")
	if clean == "" {
		return false
	}
	if !strings.Contains(pattern, "**") {
		return path == clean
	}

	padded := "/" + path + "/"
	return strings.Contains(padded, "/"+clean+"/")
}
