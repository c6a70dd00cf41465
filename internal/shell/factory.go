package shell

import (
	"log/slog"

	"github.com/ytget/web-shell/internal/assets"
	"github.com/ytget/web-shell/internal/server"
)

// NewLocalServerFactory returns a factory for loopback-only static servers on port
func NewLocalServerFactory(port, maxConnections int, logger *slog.Logger) ServerFactory {
	return func(root assets.DocumentRoot) LocalServer {
		return server.New(server.Config{
			Port:           port,
			RootPath:       root.Path,
			RootFS:         root.FS,
			LocalOnly:      true,
			MaxConnections: maxConnections,
		}, logger)
	}
}
