package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// GetSafeAreaPadding returns the inset kept around the shell content
func (m *MobileUI) GetSafeAreaPadding() float32 {
	if m.IsMobileDevice() {
		return MobileSafeAreaPadding
	}
	return DesktopSafeAreaPadding
}

// SafeArea wraps content so it stays clear of system bars on mobile
func (m *MobileUI) SafeArea(content fyne.CanvasObject) fyne.CanvasObject {
	pad := m.GetSafeAreaPadding()
	if pad == 0 {
		return content
	}
	return container.New(layout.NewCustomPaddedLayout(pad, 0, 0, 0), content)
}
