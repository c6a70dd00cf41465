package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/ytget/web-shell/internal/config"
	"github.com/ytget/web-shell/internal/model"
)

// StateSource is the part of the shell controller the UI depends on
type StateSource interface {
	SetUpdateCallback(callback func(model.ShellState))
	State() model.ShellState
	Unmount()
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	controller   StateSource
	settings     *config.Settings
	localization *Localization
	view         *ShellView
	browser      *BrowserView
	logger       *slog.Logger
}

// NewRootUI creates the shell UI, subscribes it to controller updates and
// installs it into the window
func NewRootUI(window fyne.Window, app fyne.App, controller StateSource, settings *config.Settings, logger *slog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	browserConfig := config.DefaultBrowserConfig()
	browser := NewBrowserView(browserConfig, app.OpenURL, NewLogEvents(logger, browserConfig.DebuggingEnabled), localization)

	ui := &RootUI{
		window:       window,
		controller:   controller,
		settings:     settings,
		localization: localization,
		browser:      browser,
		view:         NewShellView(browser, localization),
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetContent(NewMobileUI(app).SafeArea(ui.view.Content()))
	window.SetOnClosed(controller.Unmount)

	controller.SetUpdateCallback(ui.onStateUpdate)
	ui.view.Render(controller.State())

	return ui
}

// View returns the shell view
func (ui *RootUI) View() *ShellView {
	return ui.view
}

// onStateUpdate is called from the bootstrap goroutine
func (ui *RootUI) onStateUpdate(state model.ShellState) {
	if state.Phase == model.PhaseFailed {
		ui.logger.Warn("shell view stays in loading state", "error", state.Err)
	}
	fyne.Do(func() {
		ui.view.Render(state)
	})
}
