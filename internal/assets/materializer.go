package assets

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ytget/web-shell/internal/model"
	"github.com/ytget/web-shell/internal/platform"
)

// Stats summarizes one materialization pass
type Stats struct {
	Files       int
	Directories int
	Bytes       int64
}

// Materializer copies a bundled tree into a writable directory
type Materializer struct {
	src    fs.FS
	logger *slog.Logger
}

// NewMaterializer creates a materializer reading from src
func NewMaterializer(src fs.FS, logger *slog.Logger) *Materializer {
	return &Materializer{src: src, logger: logger}
}

// Materialize ensures every file under sourcePath in the bundle exists at the
// same relative path under targetPath. Files are copied unconditionally, so an
// existing target is overwritten on every pass. The first failure aborts the
// rest of the walk; files copied before it stay in place.
func (m *Materializer) Materialize(sourcePath, targetPath string) (Stats, error) {
	var stats Stats
	err := m.copyDir(sourcePath, targetPath, &stats)
	return stats, err
}

func (m *Materializer) copyDir(sourcePath, targetPath string, stats *Stats) error {
	dirEntries, err := fs.ReadDir(m.src, sourcePath)
	if err != nil {
		return &CopyError{Op: OpEnumerate, Path: sourcePath, Err: err}
	}

	// Parent directories are created by the enclosing call, one level is enough.
	if _, err := os.Stat(targetPath); os.IsNotExist(err) {
		if err := os.Mkdir(targetPath, platform.DefaultDirPermissions); err != nil {
			return &CopyError{Op: OpMkdir, Path: targetPath, Err: err}
		}
	}
	stats.Directories++

	for _, d := range dirEntries {
		entry := model.NewAssetEntry(d)
		sourceItemPath := path.Join(sourcePath, entry.Name)
		targetItemPath := filepath.Join(targetPath, entry.Name)

		if entry.IsDir() {
			if err := m.copyDir(sourceItemPath, targetItemPath, stats); err != nil {
				return err
			}
			continue
		}

		n, err := m.copyFile(sourceItemPath, targetItemPath)
		if err != nil {
			return &CopyError{Op: OpCopy, Path: sourceItemPath, Err: err}
		}
		stats.Files++
		stats.Bytes += n
		m.logger.Debug("asset copied", "source", sourceItemPath, "target", targetItemPath, "bytes", n)
	}

	return nil
}

func (m *Materializer) copyFile(sourcePath, targetPath string) (n int64, err error) {
	in, err := m.src.Open(sourcePath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return io.Copy(out, in)
}
