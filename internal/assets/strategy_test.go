package assets

import (
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/web-shell/internal/platform"
)

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"build/index.html":    {Data: []byte("<html>index</html>")},
		"build/assets/app.js": {Data: []byte("console.log('app')")},
	}
}

func TestSelectStrategy(t *testing.T) {
	docs := t.TempDir()

	tests := []struct {
		goos     string
		expected string
	}{
		{platform.OSIOS, StrategyDirect},
		{platform.OSAndroid, StrategyCopy},
		{platform.OSLinux, StrategyCopy},
		{platform.OSDarwin, StrategyCopy},
		{platform.OSWindows, StrategyCopy},
	}

	for _, test := range tests {
		t.Run(test.goos, func(t *testing.T) {
			s := SelectStrategy(test.goos, testBundle(), "build", docs, discardLogger())
			assert.Equal(t, test.expected, s.Name())
		})
	}
}

func TestCopyThenAccess_EnsureReady(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "documents")
	s := NewCopyThenAccess(testBundle(), "build", docs, discardLogger())

	require.NoError(t, s.EnsureReady())

	root, err := s.ResolveDocumentRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(docs, "build"), root.Path)

	data, err := fs.ReadFile(root.FS, "assets/app.js")
	require.NoError(t, err)
	assert.Equal(t, "console.log('app')", string(data))
}

func TestCopyThenAccess_RecopiesOnEveryCall(t *testing.T) {
	docs := t.TempDir()
	bundle := testBundle()
	s := NewCopyThenAccess(bundle, "build", docs, discardLogger())

	require.NoError(t, s.EnsureReady())
	bundle["build/index.html"] = &fstest.MapFile{Data: []byte("<html>v2</html>")}
	require.NoError(t, s.EnsureReady())

	root, err := s.ResolveDocumentRoot()
	require.NoError(t, err)
	data, err := fs.ReadFile(root.FS, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html>v2</html>", string(data))
}

func TestDirectAssetAccess(t *testing.T) {
	s := NewDirectAssetAccess(testBundle(), "build")

	require.NoError(t, s.EnsureReady())

	root, err := s.ResolveDocumentRoot()
	require.NoError(t, err)
	assert.Equal(t, "build", root.Path)

	s.BaseDir = "/bundle"
	root, err = s.ResolveDocumentRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/bundle", "build"), root.Path)

	data, err := fs.ReadFile(root.FS, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html>index</html>", string(data))
}

func TestStrategies_NoBundle(t *testing.T) {
	direct := NewDirectAssetAccess(nil, "build")
	assert.ErrorIs(t, direct.EnsureReady(), ErrNoSource)

	_, err := direct.ResolveDocumentRoot()
	assert.ErrorIs(t, err, ErrNoSource)

	cp := NewCopyThenAccess(nil, "build", t.TempDir(), discardLogger())
	assert.ErrorIs(t, cp.EnsureReady(), ErrNoSource)
}
