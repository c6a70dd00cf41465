package model

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestNewAssetEntry(t *testing.T) {
	fsys := fstest.MapFS{
		"index.html":    {Data: []byte("<html></html>")},
		"assets/app.js": {Data: []byte("console.log('app')")},
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	got := make(map[string]AssetKind)
	for _, d := range entries {
		e := NewAssetEntry(d)
		got[e.Name] = e.Kind
	}

	if got["assets"] != AssetKindDirectory {
		t.Errorf("expected assets to be a directory, got %q", got["assets"])
	}
	if got["index.html"] != AssetKindFile {
		t.Errorf("expected index.html to be a file, got %q", got["index.html"])
	}
}

func TestAssetEntry_IsDir(t *testing.T) {
	if !(AssetEntry{Name: "assets", Kind: AssetKindDirectory}).IsDir() {
		t.Error("directory entry should report IsDir")
	}
	if (AssetEntry{Name: "index.html", Kind: AssetKindFile}).IsDir() {
		t.Error("file entry should not report IsDir")
	}
}
