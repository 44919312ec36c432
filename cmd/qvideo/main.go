package main

import (
	"context"
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

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.qvideo")
	myWindow := myApp.NewWindow("QVideoPlayer")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	store := library.NewStore(storage.NewPreferences(myApp))
	store.SetDateLayout(settings.ResolveDateLayout(string(lang.SystemLocale())))
	if err := store.Load(context.Background()); err != nil {
		log.Printf("failed to load video list: %v", err)
	}
	store.BindLifecycle(myApp.Lifecycle())
	log.Printf("video store session %s", store.Session())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, platform.NewLauncher(myApp), "dev")

	// Show and run
	myWindow.ShowAndRun()
}
