package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconGlobe = "🌐"
)

// Layout sizing
const (
	WindowWidth  float32 = 390
	WindowHeight float32 = 844

	MobileSafeAreaPadding  float32 = 20
	DesktopSafeAreaPadding float32 = 0
)

// Browser view behaviour
const (
	// NavigationProbeTimeout bounds the HTTP request issued before handing the
	// URL to the platform browser.
	NavigationProbeTimeout = 10 * time.Second

	// OriginWildcard allows every origin
	OriginWildcard = "*"
)
