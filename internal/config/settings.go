package config

import (
	"log/slog"

	"fyne.io/fyne/v2"
)

// Application identity
const (
	AppID   = "com.ytget.web-shell"
	AppName = "Web Shell"
)

// Local server constants. The port and folder name are fixed for the life of
// the installation; the bundle is served from <base>/<AssetsFolderName>.
const (
	ServerPort       = 9090
	AssetsFolderName = "build"
	LoopbackHost     = "127.0.0.1"
)

// Settings keys for Fyne preferences
const (
	KeyDebugLogging   = "debug_logging"
	KeyLanguage       = "app_language"
	KeyMaxConnections = "max_connections"
)

// Default values
const (
	DefaultDebugLogging   = true
	DefaultLanguage       = "system"
	DefaultMaxConnections = 32

	MinMaxConnections = 1
	MaxMaxConnections = 256
)

// BrowserConfig is the fixed configuration bundle handed to the browser view.
//
// OriginWhitelist and AllowFileAccess are checked before navigation and
// DebuggingEnabled turns on per-event debug logs. JavaScriptEnabled is carried
// for the platform browser, which always runs scripts; the shell does not
// read it.
type BrowserConfig struct {
	JavaScriptEnabled bool
	OriginWhitelist   []string
	AllowFileAccess   bool
	DebuggingEnabled  bool
}

// DefaultBrowserConfig returns the configuration used by the shell
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		JavaScriptEnabled: true,
		OriginWhitelist:   []string{"*"},
		AllowFileAccess:   true,
		DebuggingEnabled:  true,
	}
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDebugLogging returns whether debug instrumentation is enabled
func (s *Settings) GetDebugLogging() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugLogging, DefaultDebugLogging)
}

// SetDebugLogging enables or disables debug instrumentation
func (s *Settings) SetDebugLogging(enabled bool) {
	s.app.Preferences().SetBool(KeyDebugLogging, enabled)
}

// GetLogLevel maps the debug setting onto a slog level
func (s *Settings) GetLogLevel() slog.Level {
	if s.GetDebugLogging() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMaxConnections returns the cap on concurrent loopback connections
func (s *Settings) GetMaxConnections() int {
	value := s.app.Preferences().Int(KeyMaxConnections)
	if value <= 0 {
		s.SetMaxConnections(DefaultMaxConnections)
		return DefaultMaxConnections
	}
	return value
}

// SetMaxConnections sets the cap on concurrent loopback connections
func (s *Settings) SetMaxConnections(count int) {
	if count < MinMaxConnections {
		count = MinMaxConnections
	}
	if count > MaxMaxConnections {
		count = MaxMaxConnections
	}
	s.app.Preferences().SetInt(KeyMaxConnections, count)
}
