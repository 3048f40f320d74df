package analyzer

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func TestScanDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := []string{
		"/src/com/acme/WidgetController.java",
		"/src/com/acme/WidgetRequest.java",
		"/src/com/acme/notes.txt",
		"/src/target/generated/GhostController.java",
		"/src/.git/HEAD",
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0644))
	}

	got, err := ScanDirectory(fs, "/src", []string{"**/target/**"}, IsJavaFile)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/src/com/acme/WidgetController.java",
		"/src/com/acme/WidgetRequest.java",
	}, got)

	all, err := ScanDirectory(fs, "/src", nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4, ".git is always skipped")
}

func TestScanDirectoryMissingRoot(t *testing.T) {
	_, err := ScanDirectory(afero.NewMemMapFs(), "/nope", nil, nil)
	assert.Error(t, err)
}

func TestScanDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/pages/admin/users", 0755))
	require.NoError(t, fs.MkdirAll("/pages/home", 0755))

	dirs, err := ScanDirs(fs, "/pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"/pages/admin", "/pages/admin/users", "/pages/home"}, dirs)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path, pattern string
		want          bool
	}{
		{"target", "**/target/**", true},
		{"module/target", "**/target/**", true},
		{"module/targets", "**/target/**", false},
		{"build", "build", true},
		{".", "**/target/**", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern), "%s vs %s", tt.path, tt.pattern)
	}
}

func TestReadFileEncoding(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(fs, "/utf8.java", []byte("class 위젯 {}"), 0644))
	content, err := ReadFile(fs, "/utf8.java")
	require.NoError(t, err)
	assert.Equal(t, "class 위젯 {}", content)

	encoded, err := korean.EUCKR.NewEncoder().String("// 사용자\nclass User {}")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/euckr.java", []byte(encoded), 0644))
	content, err = ReadFile(fs, "/euckr.java")
	require.NoError(t, err)
	assert.Equal(t, "// 사용자\nclass User {}", content)

	_, err = ReadFile(fs, "/missing.java")
	assert.Error(t, err)
}

func TestWriteFileCreatesParents(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/out", "a", "b", "file.yaml")

	require.NoError(t, WriteFile(fs, path, []byte("openapi: 3.0.0\n")))

	ok, err := FileExists(fs, path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(fs, "/out/a")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")
}

func TestHasExtension(t *testing.T) {
	exts := []string{".ts", ".tsx", ".vue"}
	assert.True(t, HasExtension("src/App.vue", exts))
	assert.True(t, HasExtension("src/index.TS", exts))
	assert.False(t, HasExtension("src/main.js", exts))
}

func TestSplitPackageAndClass(t *testing.T) {
	pkg, class := SplitPackageAndClass("com.company.UserController")
	assert.Equal(t, "com.company", pkg)
	assert.Equal(t, "UserController", class)

	pkg, class = SplitPackageAndClass("Standalone")
	assert.Empty(t, pkg)
	assert.Equal(t, "Standalone", class)
}
