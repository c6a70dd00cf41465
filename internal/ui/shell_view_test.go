package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/web-shell/internal/config"
	"github.com/ytget/web-shell/internal/model"
)

func newTestShellView() (*ShellView, *BrowserView) {
	browser := NewBrowserView(config.DefaultBrowserConfig(), nil, &recordedEvents{}, NewLocalization())
	return NewShellView(browser, NewLocalization()), browser
}

func TestShellView_InitiallyLoading(t *testing.T) {
	test.NewApp()
	view, browser := newTestShellView()

	if !view.IsLoading() {
		t.Error("Expected loading indicator on a new view")
	}
	if view.IsBrowserVisible() {
		t.Error("Expected browser view hidden on a new view")
	}
	if browser.Source() != "" {
		t.Errorf("Expected empty source, got %q", browser.Source())
	}
}

func TestShellView_LoadingAndBrowserExclusive(t *testing.T) {
	test.NewApp()
	view, browser := newTestShellView()

	states := []model.ShellState{
		model.AwaitingAssets(),
		model.StartingServer(),
		model.Failed(errors.New("copy failed")),
		model.Ready("http://127.0.0.1:9"),
	}

	for _, state := range states {
		view.Render(state)
		if view.IsLoading() == view.IsBrowserVisible() {
			t.Fatalf("state %s: loading=%v browser=%v", state, view.IsLoading(), view.IsBrowserVisible())
		}
		if view.IsLoading() != state.IsLoading() {
			t.Errorf("state %s: expected loading=%v", state, state.IsLoading())
		}
		if view.IsBrowserVisible() && browser.Source() == "" {
			t.Errorf("state %s: browser visible with empty URL", state)
		}
	}

	if browser.Source() != "http://127.0.0.1:9" {
		t.Errorf("Expected source set from ready state, got %q", browser.Source())
	}
}

func TestShellView_ReadyWithEmptyURLStaysLoading(t *testing.T) {
	test.NewApp()
	view, _ := newTestShellView()

	view.Render(model.ShellState{Phase: model.PhaseReady})
	if !view.IsLoading() {
		t.Error("Expected loading indicator for an empty base URL")
	}
}
