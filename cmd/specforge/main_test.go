package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := "log:\n  file: " + filepath.Join(dir, "logs", "specforge.log") + "\n" +
		"project:\n  root_dir: " + dir + "\n"
	path := filepath.Join(dir, "specforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func TestRunVersion(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
}

func TestBannerCarriesVersion(t *testing.T) {
	banner := bannerText()
	assert.Contains(t, banner, "SPECFORGE v"+appVersion)

	lines := strings.Split(strings.TrimSpace(banner), "\n")
	for _, line := range lines {
		assert.Equal(t, bannerWidth+2, utf8.RuneCountInString(line), "misaligned banner line %q", line)
	}
}

func TestCentered(t *testing.T) {
	assert.Equal(t, " ab  ", centered("ab", 5))
	assert.Equal(t, "toolong", centered("toolong", 3))
}

func TestRunUnknownCommand(t *testing.T) {
	assert.Equal(t, 1, run([]string{"frobnicate"}))
}

func TestRunSqueeze(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	src := filepath.Join(dir, "web")
	require.NoError(t, os.MkdirAll(src, 0755))
	file := filepath.Join(src, "App.ts")
	require.NoError(t, os.WriteFile(file, []byte("a\n\n\n\nb\n"), 0644))

	code := run([]string{"squeeze", "-q", "-c", cfgPath, "--dir", src, "--ext", ".ts"})
	require.Equal(t, 0, code)

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", string(got))

	_, err = os.Stat(filepath.Join(dir, "logs", "specforge.log"))
	assert.NoError(t, err, "log file should be created under log.file")
}

func TestRunMirror(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	source := filepath.Join(dir, "pages")
	target := filepath.Join(dir, "e2e")
	require.NoError(t, os.MkdirAll(filepath.Join(source, "admin", "users"), 0755))

	code := run([]string{"mirror", "-q", "-c", cfgPath, "--source", source, "--target", target})
	require.Equal(t, 0, code)

	info, err := os.Stat(filepath.Join(target, "admin", "users"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
