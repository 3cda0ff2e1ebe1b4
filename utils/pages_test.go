package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestPageResolver(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "home")
	writeFile(t, filepath.Join(dir, "admin.html"), "admin")
	writeFile(t, filepath.Join(dir, "status-check.html"), "status")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a page")
	writeFile(t, filepath.Join(dir, "static", "hidden.html"), "nested")
	writeFile(t, filepath.Join(filepath.Dir(dir), "outside.html"), "outside")

	r, err := NewPageResolver(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "index", "status-check"}, r.Names())

	cases := []struct {
		path string
		want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/admin", "admin.html"},
		{"/admin.html", "admin.html"},
		{"/status-check", "status-check.html"},
		{"/admin/", "admin.html"},
	}
	for _, tc := range cases {
		t.Run("resolves "+tc.path, func(t *testing.T) {
			file, ok := r.Resolve(tc.path)
			require.True(t, ok)
			assert.Equal(t, tc.want, filepath.Base(file))
		})
	}

	for _, p := range []string{
		"/missing",
		"/notes.txt",
		"/notes",
		"/static/hidden",
		"/static/hidden.html",
		"/../outside",
		"/..%2Foutside",
		"/admin.js",
	} {
		t.Run("rejects "+p, func(t *testing.T) {
			_, ok := r.Resolve(p)
			assert.False(t, ok)
		})
	}
}

func TestPageResolver_MissingDir(t *testing.T) {
	r, err := NewPageResolver(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, r.Names())

	_, ok := r.Resolve("/")
	assert.False(t, ok)
}
