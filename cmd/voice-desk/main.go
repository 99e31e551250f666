package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/voicedesk/voice-desk/internal/api"
	"github.com/voicedesk/voice-desk/internal/config"
	"github.com/voicedesk/voice-desk/internal/record"
	"github.com/voicedesk/voice-desk/internal/speech"
	"github.com/voicedesk/voice-desk/internal/transcribe"
	"github.com/voicedesk/voice-desk/internal/ui"
)

func main() {
	_ = godotenv.Load()

	// Create new Fyne app
	myApp := app.NewWithID("com.voicedesk.voice-desk")
	myWindow := myApp.NewWindow("Voice Desk")
	myWindow.Resize(fyne.NewSize(860, 640))

	settings := config.NewSettings(myApp)
	client := api.New(settings.GetServerURL(), nil)

	recordSvc := record.NewService(settings.GetCaptureDirectory(), settings.GetSampleRate(), settings.GetChannels())
	recordSvc.SetChunkInterval(settings.GetChunkIntervalMs())
	transcribeSvc := transcribe.NewService(client, 2)
	speechSvc := speech.NewService(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, recordSvc, transcribeSvc, speechSvc)

	// Show and run
	myWindow.ShowAndRun()
}
