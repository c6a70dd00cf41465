package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/web-shell/internal/assets"
	"github.com/ytget/web-shell/internal/bundle"
	"github.com/ytget/web-shell/internal/config"
	"github.com/ytget/web-shell/internal/logging"
	"github.com/ytget/web-shell/internal/platform"
	"github.com/ytget/web-shell/internal/shell"
	"github.com/ytget/web-shell/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	myApp := app.NewWithID(config.AppID)
	myApp.Settings().SetTheme(ui.NewShellTheme())

	settings := config.NewSettings(myApp)
	logger := logging.New(os.Stderr, settings.GetLogLevel())
	logger.Info("starting", "app", config.AppName, "version", version, "os", platform.Current())

	windowTitle := fmt.Sprintf("%s v%s", config.AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	strategy := assets.SelectStrategy(
		platform.Current(),
		bundle.FS(),
		config.AssetsFolderName,
		platform.AppDocumentDir(myApp),
		logging.Component(logger, "assets"),
	)
	controller := shell.NewController(
		strategy,
		shell.NewLocalServerFactory(config.ServerPort, settings.GetMaxConnections(), logging.Component(logger, "server")),
		logging.Component(logger, "shell"),
	)

	ui.NewRootUI(myWindow, myApp, controller, settings, logging.Component(logger, "ui"))

	myApp.Lifecycle().SetOnStarted(func() {
		if err := controller.Mount(context.Background()); err != nil {
			logger.Error("failed to mount shell", "error", err)
			return
		}
		go func() {
			if err := controller.Wait(); err != nil {
				logger.Error("shell bootstrap ended with error", "error", err)
			}
		}()
	})
	myApp.Lifecycle().SetOnStopped(controller.Unmount)

	myWindow.ShowAndRun()
}
