package model

import "io/fs"

// AssetKind distinguishes files from directories in the bundled asset tree
type AssetKind string

const (
	AssetKindFile      AssetKind = "file"
	AssetKindDirectory AssetKind = "directory"
)

// String returns the string representation of AssetKind
func (k AssetKind) String() string {
	return string(k)
}

// AssetEntry is one node of the bundled asset tree. Entries live only for the
// duration of a copy pass.
type AssetEntry struct {
	Name string
	Kind AssetKind
}

// IsDir returns true if the entry is a directory
func (e AssetEntry) IsDir() bool {
	return e.Kind == AssetKindDirectory
}

// NewAssetEntry converts a directory listing entry into an AssetEntry
func NewAssetEntry(d fs.DirEntry) AssetEntry {
	kind := AssetKindFile
	if d.IsDir() {
		kind = AssetKindDirectory
	}
	return AssetEntry{Name: d.Name(), Kind: kind}
}
