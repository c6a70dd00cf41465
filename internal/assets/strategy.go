package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ytget/web-shell/internal/platform"
)

// Strategy names
const (
	StrategyDirect = "DirectAssetAccess"
	StrategyCopy   = "CopyThenAccess"
)

// DocumentRoot is the directory a static server exposes. Path identifies the
// location for logs and callers; FS is what gets served.
type DocumentRoot struct {
	Path string
	FS   fs.FS
}

// Strategy prepares the bundle for serving on one platform
type Strategy interface {
	// Name identifies the strategy in logs
	Name() string
	// EnsureReady makes the document root servable. It returns once assets are
	// in place or with the first failure.
	EnsureReady() error
	// ResolveDocumentRoot returns the directory to serve
	ResolveDocumentRoot() (DocumentRoot, error)
}

// DirectAssetAccess serves the bundle where it already is. Nothing is copied.
type DirectAssetAccess struct {
	// BaseDir is where the bundle lives on disk. It only names the document
	// root; files are served from the bundle itself.
	BaseDir string

	bundle fs.FS
	folder string
}

// NewDirectAssetAccess creates a strategy serving folder straight out of bundle
func NewDirectAssetAccess(bundle fs.FS, folder string) *DirectAssetAccess {
	return &DirectAssetAccess{bundle: bundle, folder: folder}
}

func (d *DirectAssetAccess) Name() string { return StrategyDirect }

// EnsureReady succeeds immediately when a bundle is present
func (d *DirectAssetAccess) EnsureReady() error {
	if d.bundle == nil {
		return ErrNoSource
	}
	return nil
}

func (d *DirectAssetAccess) ResolveDocumentRoot() (DocumentRoot, error) {
	if d.bundle == nil {
		return DocumentRoot{}, ErrNoSource
	}
	sub, err := fs.Sub(d.bundle, d.folder)
	if err != nil {
		return DocumentRoot{}, fmt.Errorf("failed to open bundle folder %s: %w", d.folder, err)
	}
	return DocumentRoot{Path: filepath.Join(d.BaseDir, d.folder), FS: sub}, nil
}

// CopyThenAccess copies the bundle into <documentDir>/<folder> and serves the copy
type CopyThenAccess struct {
	bundle       fs.FS
	folder       string
	documentDir  string
	materializer *Materializer
	logger       *slog.Logger
}

// NewCopyThenAccess creates a strategy materializing folder under documentDir
func NewCopyThenAccess(bundle fs.FS, folder, documentDir string, logger *slog.Logger) *CopyThenAccess {
	return &CopyThenAccess{
		bundle:       bundle,
		folder:       folder,
		documentDir:  documentDir,
		materializer: NewMaterializer(bundle, logger),
		logger:       logger,
	}
}

func (c *CopyThenAccess) Name() string { return StrategyCopy }

// TargetDir returns the writable directory the bundle is copied into
func (c *CopyThenAccess) TargetDir() string {
	return filepath.Join(c.documentDir, c.folder)
}

// EnsureReady copies the bundle. There is no staleness check: every call
// copies every file again.
func (c *CopyThenAccess) EnsureReady() error {
	if c.bundle == nil {
		return ErrNoSource
	}
	if err := platform.CreateDirectoryIfNotExists(c.documentDir); err != nil {
		return &CopyError{Op: OpMkdir, Path: c.documentDir, Err: err}
	}

	stats, err := c.materializer.Materialize(c.folder, c.TargetDir())
	if err != nil {
		return fmt.Errorf("failed to copy bundle contents: %w", err)
	}

	c.logger.Info("bundle contents copied",
		"target", c.TargetDir(),
		"files", stats.Files,
		"directories", stats.Directories,
		"bytes", stats.Bytes,
	)
	return nil
}

func (c *CopyThenAccess) ResolveDocumentRoot() (DocumentRoot, error) {
	target := c.TargetDir()
	return DocumentRoot{Path: target, FS: os.DirFS(target)}, nil
}

// SelectStrategy picks the strategy for the given platform. iOS bundles are
// directly addressable; every other platform copies into documentDir.
func SelectStrategy(goos string, bundle fs.FS, folder, documentDir string, logger *slog.Logger) Strategy {
	if goos == platform.OSIOS {
		direct := NewDirectAssetAccess(bundle, folder)
		if base, err := platform.BundleDir(); err == nil {
			direct.BaseDir = base
		} else {
			logger.Warn("failed to locate application bundle", "error", err)
		}
		return direct
	}
	return NewCopyThenAccess(bundle, folder, documentDir, logger)
}
