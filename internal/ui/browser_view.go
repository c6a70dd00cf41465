package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/web-shell/internal/config"
	"github.com/ytget/web-shell/internal/model"
)

// BrowserEvents receives the observability events of a browser view. None of
// them affect the shell state.
type BrowserEvents interface {
	OnLoadStart(url string)
	OnLoad(url string)
	OnError(err *model.NavigationError)
	OnHTTPError(err *model.HTTPError)
}

const schemeFile = "file"

// URLOpener hands a URL to the platform browser
type URLOpener func(*url.URL) error

// Browser event names used in debug logs
const (
	EventLoadStart = "load_start"
	EventLoad      = "load"
	EventError     = "error"
	EventHTTPError = "http_error"
)

// LogEvents reports browser events to the log. With debugging on, every event
// also logs its full payload at debug level.
type LogEvents struct {
	logger    *slog.Logger
	debugging bool
}

// NewLogEvents creates a log-only event sink
func NewLogEvents(logger *slog.Logger, debugging bool) *LogEvents {
	return &LogEvents{logger: logger, debugging: debugging}
}

func (e *LogEvents) OnLoadStart(url string) {
	e.logger.Info("browser view started loading", "url", url)
	e.debug(EventLoadStart, "url", url)
}

func (e *LogEvents) OnLoad(url string) {
	e.logger.Info("browser view loaded", "url", url)
	e.debug(EventLoad, "url", url)
}

func (e *LogEvents) OnError(err *model.NavigationError) {
	e.logger.Error("browser view error", "url", err.URL, "error", err)
	e.debug(EventError, "url", err.URL, "description", err.Description, "cause", err.Err)
}

func (e *LogEvents) OnHTTPError(err *model.HTTPError) {
	e.logger.Error("browser view HTTP error", "url", err.URL, "status", err.StatusCode)
	e.debug(EventHTTPError, "url", err.URL, "status", err.StatusCode, "description", err.Description)
}

func (e *LogEvents) debug(event string, args ...any) {
	if !e.debugging {
		return
	}
	e.logger.Debug("browser event", append([]any{"event", event}, args...)...)
}

// BrowserView shows the page served by the shell and navigates the platform
// browser to it
type BrowserView struct {
	config config.BrowserConfig
	client *http.Client
	open   URLOpener
	events BrowserEvents

	mu     sync.Mutex
	source string

	link    *widget.Hyperlink
	caption *widget.Label
	content *fyne.Container
}

// NewBrowserView creates a browser view with no source
func NewBrowserView(cfg config.BrowserConfig, open URLOpener, events BrowserEvents, loc *Localization) *BrowserView {
	b := &BrowserView{
		config: cfg,
		client: &http.Client{Timeout: NavigationProbeTimeout},
		open:   open,
		events: events,
	}

	b.caption = widget.NewLabel(IconGlobe + " " + loc.GetText(KeyServingAt))
	b.link = widget.NewHyperlink(loc.GetText(KeyOpenInBrowser), nil)
	b.link.OnTapped = func() {
		go b.Navigate(context.Background())
	}
	b.content = container.NewCenter(container.NewVBox(b.caption, b.link))
	return b
}

// Container returns the view's canvas object
func (b *BrowserView) Container() *fyne.Container {
	return b.content
}

// Source returns the URL the view points at
func (b *BrowserView) Source() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.source
}

// Config returns the configuration bundle of the view
func (b *BrowserView) Config() config.BrowserConfig {
	return b.config
}

// SetSource points the view at rawURL. It must be called on the UI goroutine.
func (b *BrowserView) SetSource(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid source %q: %w", rawURL, err)
	}

	b.mu.Lock()
	b.source = rawURL
	b.mu.Unlock()

	b.link.SetText(rawURL)
	b.link.SetURL(u)
	return nil
}

// Load points the view at rawURL and navigates in the background
func (b *BrowserView) Load(rawURL string) {
	if err := b.SetSource(rawURL); err != nil {
		b.events.OnError(&model.NavigationError{URL: rawURL, Description: "invalid source", Err: err})
		return
	}
	go b.Navigate(context.Background())
}

// Navigate loads the current source and hands it to the platform browser.
// Failures are reported through the events and returned for callers that
// want them.
func (b *BrowserView) Navigate(ctx context.Context) error {
	source := b.Source()
	u, err := url.Parse(source)
	if err != nil || source == "" {
		navErr := &model.NavigationError{URL: source, Description: "invalid source", Err: err}
		b.events.OnError(navErr)
		return navErr
	}

	if !OriginAllowed(b.config.OriginWhitelist, u) {
		navErr := &model.NavigationError{URL: source, Description: "origin not in whitelist"}
		b.events.OnError(navErr)
		return navErr
	}

	if u.Scheme == schemeFile && !b.config.AllowFileAccess {
		navErr := &model.NavigationError{URL: source, Description: "file access disabled"}
		b.events.OnError(navErr)
		return navErr
	}

	b.events.OnLoadStart(source)
	if u.Scheme != schemeFile {
		if err := b.probe(ctx, source); err != nil {
			return err
		}
	}
	b.events.OnLoad(source)

	if b.open != nil {
		if err := b.open(u); err != nil {
			navErr := &model.NavigationError{URL: source, Description: "failed to open browser", Err: err}
			b.events.OnError(navErr)
			return navErr
		}
	}
	return nil
}

func (b *BrowserView) probe(ctx context.Context, source string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		navErr := &model.NavigationError{URL: source, Description: "failed to build request", Err: err}
		b.events.OnError(navErr)
		return navErr
	}

	resp, err := b.client.Do(req)
	if err != nil {
		navErr := &model.NavigationError{URL: source, Description: "request failed", Err: err}
		b.events.OnError(navErr)
		return navErr
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		httpErr := &model.HTTPError{URL: source, StatusCode: resp.StatusCode, Description: http.StatusText(resp.StatusCode)}
		b.events.OnHTTPError(httpErr)
		return httpErr
	}
	return nil
}

// OriginAllowed reports whether the origin of u matches the whitelist.
// Patterns use path.Match syntax; "*" allows everything.
func OriginAllowed(whitelist []string, u *url.URL) bool {
	origin := u.Scheme + "://" + u.Host
	for _, pattern := range whitelist {
		if pattern == OriginWildcard {
			return true
		}
		if ok, err := path.Match(pattern, origin); err == nil && ok {
			return true
		}
	}
	return false
}
