package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/web-shell/internal/model"
)

// ShellView shows the loading indicator until a base URL exists, then the
// browser view. Exactly one of the two is visible at any time.
type ShellView struct {
	browser *BrowserView

	activity *widget.Activity
	message  *widget.Label
	loading  *fyne.Container
	content  *fyne.Container
}

// NewShellView creates a view in the loading state
func NewShellView(browser *BrowserView, loc *Localization) *ShellView {
	v := &ShellView{browser: browser}

	v.activity = widget.NewActivity()
	v.message = widget.NewLabel(loc.GetText(KeyLoading))
	v.message.Alignment = fyne.TextAlignCenter
	v.loading = container.NewCenter(container.NewVBox(v.activity, v.message))

	v.content = container.NewStack(v.loading, browser.Container())
	v.showLoading()
	return v
}

// Content returns the view's canvas object
func (v *ShellView) Content() fyne.CanvasObject {
	return v.content
}

// IsLoading reports whether the loading indicator is shown
func (v *ShellView) IsLoading() bool {
	return v.loading.Visible()
}

// IsBrowserVisible reports whether the browser view is shown
func (v *ShellView) IsBrowserVisible() bool {
	return v.browser.Container().Visible()
}

// Render applies a shell state. It must be called on the UI goroutine.
func (v *ShellView) Render(state model.ShellState) {
	if state.IsLoading() {
		v.showLoading()
		return
	}

	if v.browser.Source() != state.BaseURL {
		v.browser.Load(state.BaseURL)
	}
	v.showBrowser()
}

func (v *ShellView) showLoading() {
	v.browser.Container().Hide()
	v.loading.Show()
	v.activity.Start()
}

func (v *ShellView) showBrowser() {
	v.activity.Stop()
	v.loading.Hide()
	v.browser.Container().Show()
}
