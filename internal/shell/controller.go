package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/web-shell/internal/assets"
	"github.com/ytget/web-shell/internal/model"
)

var (
	// ErrAlreadyMounted is returned by Mount on a controller that was mounted before
	ErrAlreadyMounted = errors.New("shell already mounted")

	// ErrUnmounted is returned when bootstrap ends because the shell was unmounted
	ErrUnmounted = errors.New("shell unmounted")

	// ErrEmptyBaseURL is returned when a server starts without a usable URL
	ErrEmptyBaseURL = errors.New("server returned an empty base URL")
)

// LocalServer is the part of the static server the controller drives
type LocalServer interface {
	Start(ctx context.Context) (string, error)
	Stop()
}

// ServerFactory creates an unstarted server for a document root
type ServerFactory func(root assets.DocumentRoot) LocalServer

// Controller owns the bootstrap state of one shell mount
type Controller struct {
	strategy  assets.Strategy
	newServer ServerFactory
	logger    *slog.Logger

	mu        sync.Mutex
	state     model.ShellState
	ready     bool
	mounted   bool
	unmounted bool
	mountID   string
	cancel    context.CancelFunc
	group     *errgroup.Group
	scope     *scope
	onUpdate  func(model.ShellState)
}

// NewController creates a controller in the AwaitingAssets state
func NewController(strategy assets.Strategy, newServer ServerFactory, logger *slog.Logger) *Controller {
	return &Controller{
		strategy:  strategy,
		newServer: newServer,
		logger:    logger,
		state:     model.AwaitingAssets(),
		scope:     &scope{},
	}
}

// SetUpdateCallback sets the callback invoked after every state transition
func (c *Controller) SetUpdateCallback(callback func(model.ShellState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// State returns the current shell state
func (c *Controller) State() model.ShellState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Ready reports whether the readiness flag is set
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Mount starts the bootstrap sequence in the background. The sequence ends in
// Ready or Failed; Wait returns its result.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return ErrAlreadyMounted
	}
	c.mounted = true
	c.mountID = uuid.NewString()

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	c.cancel = cancel
	c.group = g
	c.logger = c.logger.With("mount_id", c.mountID)
	c.mu.Unlock()

	c.logger.Info("shell mounted", "strategy", c.strategy.Name())
	c.publish(model.AwaitingAssets())

	g.Go(func() error {
		return c.bootstrap(gctx)
	})
	return nil
}

// Wait blocks until the bootstrap sequence finishes and returns its error
func (c *Controller) Wait() error {
	c.mu.Lock()
	g := c.group
	c.mu.Unlock()

	if g == nil {
		return nil
	}
	return g.Wait()
}

// Unmount releases every resource acquired by the mount, stopping the server
// if it was started. It is safe to call more than once.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if !c.mounted || c.unmounted {
		c.mu.Unlock()
		return
	}
	c.unmounted = true
	cancel, logger := c.cancel, c.logger
	c.mu.Unlock()

	c.scope.close()
	cancel()
	logger.Info("shell unmounted")
}

func (c *Controller) bootstrap(ctx context.Context) error {
	if err := c.strategy.EnsureReady(); err != nil {
		c.logger.Error("failed to prepare assets", "strategy", c.strategy.Name(), "error", err)
		c.fail(err)
		return err
	}
	c.logger.Info("assets ready", "strategy", c.strategy.Name())
	c.setReady()

	return c.activateServer(ctx)
}

// setReady flips the readiness flag. The flag is never reset.
func (c *Controller) setReady() {
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()

	c.publish(model.StartingServer())
}

// activateServer starts the local server once readiness is set. It is the
// only place a server is created.
func (c *Controller) activateServer(ctx context.Context) error {
	c.mu.Lock()
	ready, unmounted := c.ready, c.unmounted
	c.mu.Unlock()

	if !ready {
		return nil
	}
	if unmounted {
		return ErrUnmounted
	}

	root, err := c.strategy.ResolveDocumentRoot()
	if err != nil {
		c.logger.Error("failed to resolve document root", "error", err)
		c.fail(err)
		return err
	}

	srv := c.newServer(root)
	if !c.scope.add(srv.Stop) {
		return ErrUnmounted
	}

	url, err := srv.Start(ctx)
	if err == nil && url == "" {
		err = ErrEmptyBaseURL
	}
	if err != nil {
		err = fmt.Errorf("failed to start server: %w", err)
		c.logger.Error("failed to start server", "document_root", root.Path, "error", err)
		c.fail(err)
		return err
	}

	c.mu.Lock()
	unmounted = c.unmounted
	c.mu.Unlock()
	if unmounted {
		return ErrUnmounted
	}

	c.logger.Info("server ready", "url", url, "document_root", root.Path)
	c.publish(model.Ready(url))
	return nil
}

func (c *Controller) fail(err error) {
	c.publish(model.Failed(err))
}

// publish applies a transition and notifies the callback. Terminal states are
// final for the mount.
func (c *Controller) publish(next model.ShellState) {
	c.mu.Lock()
	if c.state.Phase.IsTerminal() {
		c.mu.Unlock()
		return
	}
	c.state = next
	callback := c.onUpdate
	c.mu.Unlock()

	c.logger.Debug("shell state changed", "state", next.String())
	if callback != nil {
		callback(next)
	}
}
