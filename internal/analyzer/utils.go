package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"specforge/internal/logger"
)

// ReadFile reads a whole file with automatic encoding detection.
// Supports UTF-8 and EUC-KR/CP949 encoding.
func ReadFile(fsys afero.Fs, path string) (string, error) {
	rawBytes, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if !utf8.Valid(rawBytes) {
		logger.Debug("[READER] %s is not UTF-8, decoding as %s", path, DetectEncoding(rawBytes))
	}

	content, err := BytesToString(rawBytes)
	if err != nil {
		// If EUC-KR fails, fall back to original (might be corrupted)
		return string(rawBytes), nil
	}
	return content, nil
}

// WriteFile writes data to path, creating parent directories as needed
func WriteFile(fsys afero.Fs, path string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// IsJavaFile checks if a file is a Java source file
func IsJavaFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".java")
}

// HasExtension checks the file extension against a list such as [".ts", ".vue"]
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// SplitPackageAndClass splits a fully qualified class name
// Example: "com.company.UserController" -> ("com.company", "UserController")
func SplitPackageAndClass(fqcn string) (pkg, class string) {
	lastDot := strings.LastIndex(fqcn, ".")
	if lastDot == -1 {
		return "", fqcn
	}
	return fqcn[:lastDot], fqcn[lastDot+1:]
}

// DetectEncoding attempts to detect if content is UTF-8 or EUC-KR
func DetectEncoding(data []byte) string {
	if utf8.Valid(data) {
		return "UTF-8"
	}
	return "EUC-KR"
}

// BytesToString safely converts bytes to string with encoding detection
func BytesToString(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Try EUC-KR
	decoder := korean.EUCKR.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data), fmt.Errorf("encoding detection failed: %w", err)
	}

	return string(decoded), nil
}
