package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/voicedesk/voice-desk/internal/api"
	"github.com/voicedesk/voice-desk/internal/config"
	"github.com/voicedesk/voice-desk/internal/platform"
	"github.com/voicedesk/voice-desk/internal/record"
	"github.com/voicedesk/voice-desk/internal/speech"
	"github.com/voicedesk/voice-desk/internal/transcribe"
	"github.com/voicedesk/voice-desk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.voicedesk.voice-desk"
	AppName = "Voice Desk"

	WindowWidth  = 860
	WindowHeight = 640

	MaxParallelTranscriptions = 2
)

func main() {
	// Log version information
	fmt.Printf("Voice Desk v%s starting...\n", version)

	// Optional .env file for server URL and voice overrides
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment overrides from .env")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	captureDir := settings.GetCaptureDirectory()
	if err := platform.CreateDirectoryIfNotExists(captureDir); err != nil {
		fmt.Printf("failed to ensure capture dir: %v\n", err)
	}

	client := api.New(settings.GetServerURL(), http.DefaultClient,
		api.WithObserver(func(endpoint string, status int, duration time.Duration) {
			log.Printf("Backend call: endpoint=%s status=%d duration=%s", endpoint, status, duration)
		}))

	recordSvc := record.NewService(captureDir, settings.GetSampleRate(), settings.GetChannels())
	recordSvc.SetChunkInterval(settings.GetChunkIntervalMs())
	transcribeSvc := transcribe.NewService(client, MaxParallelTranscriptions)
	speechSvc := speech.NewService(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, recordSvc, transcribeSvc, speechSvc)

	// Show and run
	myWindow.ShowAndRun()
}
