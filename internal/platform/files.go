package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"fyne.io/fyne/v2"
	"github.com/adrg/xdg"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Fyne Android apps run as libdist.so
const androidExecutableName = "libdist.so"

// Current returns the platform the shell is running on. Android is detected
// through its environment as well, since GOOS alone is not reliable for
// binaries packaged by the Fyne tooling.
func Current() string {
	if IsAndroid() {
		return OSAndroid
	}
	return runtime.GOOS
}

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == androidExecutableName
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DocumentDir returns the application's private writable directory. The
// storage root provided by the app is used when it is a local file URI;
// otherwise the XDG data directory for appID is used.
func DocumentDir(root fyne.URI, appID string) string {
	if root != nil && root.Scheme() == "file" && root.Path() != "" {
		return root.Path()
	}
	return filepath.Join(xdg.DataHome, appID)
}

// AppDocumentDir resolves DocumentDir for a running app
func AppDocumentDir(app fyne.App) string {
	var root fyne.URI
	if s := app.Storage(); s != nil {
		root = s.RootURI()
	}
	return DocumentDir(root, app.UniqueID())
}

// BundleDir returns the directory holding the application executable, which is
// the application bundle root on iOS.
func BundleDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}
