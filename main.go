package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/lang"

	"github.com/ytget/qvideo/internal/config"
	"github.com/ytget/qvideo/internal/library"
	"github.com/ytget/qvideo/internal/platform"
	"github.com/ytget/qvideo/internal/storage"
	"github.com/ytget/qvideo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.qvideo"
	AppName = "QVideoPlayer"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	store := library.NewStore(storage.NewPreferences(myApp))
	store.SetDateLayout(settings.ResolveDateLayout(string(lang.SystemLocale())))

	// The list must be loaded before the first persist can happen
	if err := store.Load(context.Background()); err != nil {
		log.Printf("failed to load video list: %v", err)
	}
	store.BindLifecycle(myApp.Lifecycle())
	log.Printf("video store session %s", store.Session())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, platform.NewLauncher(myApp), version)

	// Show and run
	myWindow.ShowAndRun()
}
