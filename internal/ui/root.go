package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/voicedesk/voice-desk/internal/api"
	"github.com/voicedesk/voice-desk/internal/config"
	"github.com/voicedesk/voice-desk/internal/model"
	"github.com/voicedesk/voice-desk/internal/platform"
	"github.com/voicedesk/voice-desk/internal/record"
	"github.com/voicedesk/voice-desk/internal/speech"
	"github.com/voicedesk/voice-desk/internal/transcribe"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	client        *api.Client
	recordSvc     record.Recorder
	transcribeSvc transcribe.Transcriber
	speechSvc     speech.Synthesizer

	// Backend status panel
	healthTitleLabel *widget.Label
	healthLabel      *widget.Label
	murfLabel        *widget.Label
	assemblyLabel    *widget.Label
	refreshBtn       *widget.Button

	// Speech panel
	speechEntry       *widget.Entry
	voiceSelect       *widget.Select
	generateBtn       *widget.Button
	playAudioBtn      *widget.Button
	copyURLBtn        *widget.Button
	audioLink         *widget.Hyperlink
	speechStatusLabel *widget.Label

	// Capture panel
	captureBtn           *widget.Button
	uploadBtn            *widget.Button
	transcribeCaptureBtn *widget.Button
	playCaptureBtn       *widget.Button
	revealCaptureBtn     *widget.Button
	captureInfoLabel     *widget.Label

	// Transcription panel
	addFileBtn    *widget.Button
	dropHintLabel *widget.Label
	taskList      *widget.List
	listedTasks   []*model.TranscriptionTask
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client,
	recordSvc record.Recorder, transcribeSvc transcribe.Transcriber, speechSvc speech.Synthesizer) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		app:           app,
		settings:      settings,
		localization:  localization,
		client:        client,
		recordSvc:     recordSvc,
		transcribeSvc: transcribeSvc,
		speechSvc:     speechSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Route service updates to the UI
	ui.recordSvc.SetUpdateCallback(ui.onSessionUpdate)
	ui.transcribeSvc.SetUpdateCallback(ui.onTranscriptionUpdate)
	ui.speechSvc.SetUpdateCallback(ui.onSpeechUpdate)

	ui.setupUI()
	ui.refreshHealth()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	statusPanel := ui.buildStatusPanel()
	speechPanel := ui.buildSpeechPanel()
	capturePanel := ui.buildCapturePanel()
	transcriptionPanel := ui.buildTranscriptionPanel()

	top := container.NewVBox(
		statusPanel,
		widget.NewSeparator(),
		speechPanel,
		widget.NewSeparator(),
		capturePanel,
		widget.NewSeparator(),
	)

	content := container.NewBorder(
		top,                // top
		nil,                // bottom
		nil,                // left
		nil,                // right
		transcriptionPanel, // center
	)

	ui.window.SetContent(content)

	// Drag and drop of audio files onto the window queues them for transcription
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		for _, uri := range uris {
			ui.addTranscriptionFile(uri.Path())
		}
	})

	log.Printf("UI setup completed successfully")
}

// buildStatusPanel creates the backend status panel
func (ui *RootUI) buildStatusPanel() fyne.CanvasObject {
	ui.healthTitleLabel = widget.NewLabel(ui.localization.GetText(KeyServerStatus) + ":")
	ui.healthTitleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.healthLabel = widget.NewLabel(ui.localization.GetText(KeyChecking))
	ui.murfLabel = widget.NewLabel("")
	ui.assemblyLabel = widget.NewLabel("")

	ui.refreshBtn = widget.NewButton(ui.localization.GetText(KeyRefresh), ui.refreshHealth)
	ui.refreshBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Logo if available, text title otherwise
	var left fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	} else {
		left = container.NewHBox(settingsBtn)
	}

	status := container.NewHBox(
		ui.healthTitleLabel,
		ui.healthLabel,
		ui.murfLabel,
		ui.assemblyLabel,
	)

	return container.NewBorder(nil, nil, left, ui.refreshBtn, status)
}

// buildSpeechPanel creates the text-to-speech panel
func (ui *RootUI) buildSpeechPanel() fyne.CanvasObject {
	ui.speechEntry = widget.NewMultiLineEntry()
	ui.speechEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.speechEntry.Wrapping = fyne.TextWrapWord
	ui.speechEntry.SetMinRowsVisible(3)

	ui.voiceSelect = widget.NewSelect(ui.settings.GetVoiceOptions(), func(selected string) {
		ui.settings.SetVoiceID(selected)
	})
	ui.voiceSelect.SetSelected(ui.settings.GetVoiceID())

	ui.generateBtn = widget.NewButton(IconSpeaker+" "+ui.localization.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	ui.playAudioBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyPlayAudio), ui.onPlayAudio)
	ui.playAudioBtn.Disable()

	ui.copyURLBtn = widget.NewButton(IconCopy+" "+ui.localization.GetText(KeyCopyAudioURL), ui.onCopyAudioURL)
	ui.copyURLBtn.Disable()

	ui.audioLink = widget.NewHyperlink("", nil)
	ui.audioLink.Truncation = fyne.TextTruncateEllipsis
	ui.audioLink.Hide()

	ui.speechStatusLabel = widget.NewLabel("")

	controls := container.NewHBox(ui.voiceSelect, ui.generateBtn, ui.playAudioBtn, ui.copyURLBtn)
	resultRow := container.NewBorder(nil, nil, nil, ui.speechStatusLabel, ui.audioLink)

	return container.NewVBox(ui.speechEntry, controls, resultRow)
}

// buildCapturePanel creates the microphone capture panel
func (ui *RootUI) buildCapturePanel() fyne.CanvasObject {
	ui.captureBtn = widget.NewButton(IconRecord+" "+ui.localization.GetText(KeyStartCapture), ui.onCaptureClick)
	ui.captureBtn.Importance = widget.HighImportance

	ui.uploadBtn = widget.NewButton(ui.localization.GetText(KeyUpload), ui.onUploadCapture)
	ui.uploadBtn.Disable()

	ui.transcribeCaptureBtn = widget.NewButton(ui.localization.GetText(KeyTranscribeIt), ui.onTranscribeCapture)
	ui.transcribeCaptureBtn.Disable()

	ui.playCaptureBtn = widget.NewButton(IconPlay, ui.onPlayCapture)
	ui.playCaptureBtn.Disable()

	ui.revealCaptureBtn = widget.NewButton(IconFolder, ui.onRevealCapture)
	ui.revealCaptureBtn.Disable()

	ui.captureInfoLabel = widget.NewLabel(ui.localization.GetText(KeyNoCapture))
	ui.captureInfoLabel.Truncation = fyne.TextTruncateEllipsis

	buttons := container.NewHBox(ui.captureBtn, ui.uploadBtn, ui.transcribeCaptureBtn, ui.playCaptureBtn, ui.revealCaptureBtn)
	return container.NewVBox(buttons, ui.captureInfoLabel)
}

// buildTranscriptionPanel creates the file transcription panel
func (ui *RootUI) buildTranscriptionPanel() fyne.CanvasObject {
	ui.addFileBtn = widget.NewButton(IconFile+" "+ui.localization.GetText(KeyAddFile), ui.onAddFileClick)

	ui.dropHintLabel = widget.NewLabel(ui.localization.GetText(KeyDropHint))
	ui.dropHintLabel.TextStyle = fyne.TextStyle{Italic: true}

	toolbar := container.NewBorder(nil, nil, ui.addFileBtn, nil, ui.dropHintLabel)

	ui.taskList = widget.NewList(
		func() int {
			return len(ui.listedTasks)
		},
		func() fyne.CanvasObject { return ui.createTranscriptItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTranscriptItem(id, obj) },
	)

	return container.NewBorder(toolbar, nil, nil, nil, ui.taskList)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	cleanupItem := fyne.NewMenuItem(ui.localization.GetText(KeyCleanupUploads), ui.onCleanupUploads)
	maintenanceMenu := fyne.NewMenu(ui.localization.GetText(KeyMaintenance), cleanupItem)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
		maintenanceMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.healthTitleLabel.SetText(ui.localization.GetText(KeyServerStatus) + ":")
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
	ui.speechEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.generateBtn.SetText(IconSpeaker + " " + ui.localization.GetText(KeyGenerate))
	ui.playAudioBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPlayAudio))
	ui.copyURLBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopyAudioURL))
	ui.uploadBtn.SetText(ui.localization.GetText(KeyUpload))
	ui.transcribeCaptureBtn.SetText(ui.localization.GetText(KeyTranscribeIt))
	ui.addFileBtn.SetText(IconFile + " " + ui.localization.GetText(KeyAddFile))
	ui.dropHintLabel.SetText(ui.localization.GetText(KeyDropHint))

	if session, ok := ui.recordSvc.Current(); ok && session.Status.IsActive() {
		ui.captureBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStopCapture))
	} else {
		ui.captureBtn.SetText(IconRecord + " " + ui.localization.GetText(KeyStartCapture))
	}

	ui.taskList.Refresh()
}

// Backend status

// refreshHealth fetches backend health in the background and updates the panel
func (ui *RootUI) refreshHealth() {
	ui.healthLabel.SetText(ui.localization.GetText(KeyChecking))
	ui.murfLabel.SetText("")
	ui.assemblyLabel.SetText("")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), HealthCheckTimeout)
		defer cancel()

		status, err := ui.client.Health(ctx)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Health check failed: %v", err)
				ui.healthLabel.Importance = widget.DangerImportance
				ui.healthLabel.SetText(IconError + " " + ui.localization.GetText(KeyOffline))
				ui.healthLabel.Refresh()
				return
			}

			ui.healthLabel.Importance = widget.SuccessImportance
			ui.healthLabel.SetText(IconOK + " " + ui.localization.GetText(KeyOnline))
			ui.healthLabel.Refresh()

			ui.murfLabel.SetText("Murf: " + ui.configuredText(status.MurfConfigured))
			ui.assemblyLabel.SetText("AssemblyAI: " + ui.configuredText(status.AssemblyAIConfigured))
		})
	}()
}

func (ui *RootUI) configuredText(configured bool) string {
	if configured {
		return ui.localization.GetText(KeyConfigured)
	}
	return ui.localization.GetText(KeyNotConfigured)
}

// Speech generation

// onGenerateClick handles the generate button click
func (ui *RootUI) onGenerateClick() {
	text := ui.speechEntry.Text
	voiceID := ui.voiceSelect.Selected
	if voiceID == "" {
		voiceID = ui.settings.GetVoiceID()
	}

	task, err := ui.speechSvc.Generate(text, voiceID)
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterText)), ui.window.Canvas())
		return
	}

	log.Printf("Speech generation started: id=%s voice=%s", task.ID, task.VoiceID)
	ui.speechStatusLabel.SetText(ui.localization.GetText(KeyGenerating))
	ui.generateBtn.Disable()
}

// onSpeechUpdate handles speech task updates from the speech service
func (ui *RootUI) onSpeechUpdate(task *model.SpeechTask) {
	log.Printf("Speech task update: id=%s status=%s url=%s", task.ID, task.Status, task.AudioURL)

	fyne.Do(func() {
		switch task.Status {
		case model.TaskStatusCompleted:
			ui.generateBtn.Enable()
			ui.speechStatusLabel.SetText(ui.localization.GetText(KeyGenerationDone))
			ui.audioLink.SetText(task.AudioURL)
			_ = ui.audioLink.SetURLFromString(task.AudioURL)
			ui.audioLink.Show()
			ui.playAudioBtn.Enable()
			ui.copyURLBtn.Enable()
			showToast(ui.window, ui.localization.GetText(KeyGenerationDone))
		case model.TaskStatusError:
			ui.generateBtn.Enable()
			ui.speechStatusLabel.SetText("")
			ShowErrorModal(ui.window, ui.localization.GetText(KeyGenerationFailed), task.LastError)
		default:
			ui.speechStatusLabel.SetText(ui.localization.GetText(KeyGenerating))
		}
	})
}

// onPlayAudio opens the generated audio URL with the system handler
func (ui *RootUI) onPlayAudio() {
	task, ok := ui.speechSvc.Latest()
	if !ok || task.AudioURL == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoGeneratedAudio)), ui.window.Canvas())
		return
	}

	parsed, err := url.Parse(task.AudioURL)
	if err != nil {
		ShowErrorModal(ui.window, ui.localization.GetText(KeyErrorOpeningAudio), err.Error())
		return
	}
	if err := ui.app.OpenURL(parsed); err != nil {
		ShowErrorModal(ui.window, ui.localization.GetText(KeyErrorOpeningAudio), err.Error())
	}
}

// onCopyAudioURL copies the generated audio URL to the clipboard
func (ui *RootUI) onCopyAudioURL() {
	task, ok := ui.speechSvc.Latest()
	if !ok || task.AudioURL == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoGeneratedAudio)), ui.window.Canvas())
		return
	}

	ui.app.Clipboard().SetContent(task.AudioURL)
	showToast(ui.window, ui.localization.GetText(KeyAudioURLCopied))
}

// Capture

// onCaptureClick toggles the capture session
func (ui *RootUI) onCaptureClick() {
	if session, ok := ui.recordSvc.Current(); ok && session.Status.IsActive() {
		ui.captureBtn.Disable()
		go func() {
			if err := ui.recordSvc.Stop(); err != nil {
				log.Printf("Failed to stop capture: %v", err)
			}
			fyne.Do(func() {
				ui.captureBtn.Enable()
			})
		}()
		return
	}

	if _, err := ui.recordSvc.Start(); err != nil {
		ShowErrorModal(ui.window, ui.localization.GetText(KeyCaptureFailed), err.Error())
	}
}

// onSessionUpdate handles capture session updates from the record service
func (ui *RootUI) onSessionUpdate(session *model.CaptureSession) {
	log.Printf("Capture session update: id=%s status=%s path=%s", session.ID, session.Status, session.OutputPath)

	fyne.Do(func() {
		switch session.Status {
		case model.TaskStatusRunning:
			ui.captureBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStopCapture))
			ui.captureInfoLabel.SetText(IconMic + " " + ui.localization.GetText(KeyCapturing))
			ui.uploadBtn.Disable()
			ui.transcribeCaptureBtn.Disable()
			ui.playCaptureBtn.Disable()
			ui.revealCaptureBtn.Disable()
		case model.TaskStatusCompleted:
			ui.captureBtn.SetText(IconRecord + " " + ui.localization.GetText(KeyStartCapture))
			info := fmt.Sprintf("%s%s%s%s%s",
				session.OutputPath,
				MiddleDotSeparator, session.GetDurationString(),
				MiddleDotSeparator, session.GetSizeString())
			ui.captureInfoLabel.SetText(info)
			ui.uploadBtn.Enable()
			ui.transcribeCaptureBtn.Enable()
			ui.playCaptureBtn.Enable()
			ui.revealCaptureBtn.Enable()
			showToast(ui.window, ui.localization.GetText(KeyCaptureSaved))
		case model.TaskStatusError:
			ui.captureBtn.SetText(IconRecord + " " + ui.localization.GetText(KeyStartCapture))
			ui.captureInfoLabel.SetText(ui.localization.GetText(KeyNoCapture))
			ShowErrorModal(ui.window, ui.localization.GetText(KeyCaptureFailed), session.LastError)
		}
	})
}

// onUploadCapture uploads the finalized capture to the backend
func (ui *RootUI) onUploadCapture() {
	session, ok := ui.recordSvc.Current()
	if !ok || !session.IsFinalized() || session.OutputPath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoCapture)), ui.window.Canvas())
		return
	}

	outputPath := session.OutputPath
	ui.uploadBtn.Disable()
	ui.captureInfoLabel.SetText(ui.localization.GetText(KeyUploading))

	go func() {
		result, err := ui.uploadFile(outputPath)

		fyne.Do(func() {
			ui.uploadBtn.Enable()
			if err != nil {
				log.Printf("Upload failed for %s: %v", outputPath, err)
				ui.captureInfoLabel.SetText(outputPath)
				ShowErrorModal(ui.window, ui.localization.GetText(KeyUploadFailed), err.Error())
				return
			}

			log.Printf("Upload completed: filename=%s size=%d", result.Filename, result.Size)
			ui.captureInfoLabel.SetText(outputPath)
			showToast(ui.window, fmt.Sprintf("%s: %s (%s)",
				ui.localization.GetText(KeyUploadDone), result.Filename, formatFileSize(result.Size)))
		})
	}()
}

// uploadFile sends one local audio file to the backend upload endpoint
func (ui *RootUI) uploadFile(path string) (api.UploadResult, error) {
	mimeType, ok := platform.DetectAudioMIME(path)
	if !ok {
		return api.UploadResult{}, fmt.Errorf("%s: %s", ui.localization.GetText(KeyUnsupportedFile), path)
	}

	file, err := os.Open(path)
	if err != nil {
		return api.UploadResult{}, err
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return ui.client.UploadAudio(ctx, file, filepath.Base(path), mimeType)
}

// onTranscribeCapture queues the finalized capture for transcription
func (ui *RootUI) onTranscribeCapture() {
	session, ok := ui.recordSvc.Current()
	if !ok || !session.IsFinalized() || session.OutputPath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoCapture)), ui.window.Canvas())
		return
	}
	ui.addTranscriptionFile(session.OutputPath)
}

// onPlayCapture plays the finalized capture with the system audio player
func (ui *RootUI) onPlayCapture() {
	session, ok := ui.recordSvc.Current()
	if !ok || !session.IsFinalized() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoCapture)), ui.window.Canvas())
		return
	}

	if err := platform.OpenFileWithDefaultApp(session.OutputPath); err != nil {
		log.Printf("Error playing capture %s: %v", session.OutputPath, err)
		ShowErrorModal(ui.window, ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// onRevealCapture reveals the finalized capture in the file manager
func (ui *RootUI) onRevealCapture() {
	session, ok := ui.recordSvc.Current()
	if !ok || session.OutputPath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoCapture)), ui.window.Canvas())
		return
	}
	ui.onRevealFile(session.OutputPath)
}

// Transcription

// onAddFileClick opens a file picker restricted to supported audio types
func (ui *RootUI) onAddFileClick() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.addTranscriptionFile(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.AudioExtensions()))
	fd.Show()
}

// addTranscriptionFile queues a file for transcription and shows a per-file
// error modal when the file is rejected
func (ui *RootUI) addTranscriptionFile(path string) {
	log.Printf("Adding transcription file: %s", path)

	task, err := ui.transcribeSvc.AddFile(path)
	if err != nil {
		ShowErrorModal(ui.window, ui.localization.GetText(KeyTranscriptionFailed), err.Error())
		return
	}

	ui.listedTasks = append(ui.listedTasks, task)
	ui.taskList.Refresh()
}

// createTranscriptItem creates a new list row widget
func (ui *RootUI) createTranscriptItem() fyne.CanvasObject {
	placeholder := &model.TranscriptionTask{
		ID:     "placeholder",
		Status: model.TaskStatusPending,
	}

	row := NewTranscriptRow(placeholder, ui.localization)
	row.SetCallbacks(
		ui.onCopyTranscript,
		ui.onSaveTranscript,
		ui.onRevealFile,
		ui.onStopTranscription,
	)
	return row
}

// updateTranscriptItem updates a list row with current task data
func (ui *RootUI) updateTranscriptItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.listedTasks) {
		return
	}

	task := ui.listedTasks[id]
	if task == nil {
		return
	}

	if row, ok := item.(*TranscriptRow); ok {
		// Re-set callbacks on every update so recycled rows stay wired
		row.SetCallbacks(
			ui.onCopyTranscript,
			ui.onSaveTranscript,
			ui.onRevealFile,
			ui.onStopTranscription,
		)
		row.UpdateTask(task)
	}
}

// onTranscriptionUpdate handles task updates from the transcription service
func (ui *RootUI) onTranscriptionUpdate(task *model.TranscriptionTask) {
	log.Printf("Transcription task update: id=%s status=%s", task.ID, task.Status)

	fyne.Do(func() {
		ui.taskList.Refresh()

		switch task.Status {
		case model.TaskStatusCompleted:
			if ui.settings.GetAutoCopyTranscript() && task.HasTranscript() {
				ui.app.Clipboard().SetContent(task.Transcript)
				showToast(ui.window, ui.localization.GetText(KeyTranscriptCopied))
			} else {
				showToast(ui.window, ui.localization.GetText(KeyTranscriptionDone)+": "+task.GetDisplayTitle())
			}
		case model.TaskStatusError:
			ShowErrorModal(ui.window,
				ui.localization.GetText(KeyTranscriptionFailed)+": "+task.GetDisplayTitle(),
				task.LastError)
		}
	})
}

// onCopyTranscript copies the transcript text to the clipboard
func (ui *RootUI) onCopyTranscript(taskID string) {
	task, exists := ui.transcribeSvc.GetTask(taskID)
	if !exists || !task.HasTranscript() {
		return
	}

	ui.app.Clipboard().SetContent(task.Transcript)
	showToast(ui.window, ui.localization.GetText(KeyTranscriptCopied))
}

// onSaveTranscript saves the transcript to a timestamped text file
func (ui *RootUI) onSaveTranscript(taskID string) {
	task, exists := ui.transcribeSvc.GetTask(taskID)
	if !exists || !task.HasTranscript() {
		return
	}

	path, err := platform.SaveTranscript(ui.settings.GetTranscriptDirectory(), task.Transcript, time.Now())
	if err != nil {
		log.Printf("Failed to save transcript for task %s: %v", taskID, err)
		ShowErrorModal(ui.window, ui.localization.GetText(KeyTranscriptionFailed), err.Error())
		return
	}

	log.Printf("Transcript saved: %s", path)
	showToast(ui.window, ui.localization.GetText(KeyTranscriptSaved)+": "+path)
}

// onStopTranscription stops an active transcription task
func (ui *RootUI) onStopTranscription(taskID string) {
	if err := ui.transcribeSvc.StopTask(taskID); err != nil {
		log.Printf("Failed to stop task %s: %v", taskID, err)
	}
}

// onRevealFile reveals a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ShowErrorModal(ui.window, ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// Maintenance

// onCleanupUploads asks the backend to remove temporary uploads
func (ui *RootUI) onCleanupUploads() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deleted, err := ui.client.CleanupUploads(ctx)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Cleanup failed: %v", err)
				ShowErrorModal(ui.window, ui.localization.GetText(KeyCleanupFailed), err.Error())
				return
			}
			showToast(ui.window, fmt.Sprintf("%s (%d)", ui.localization.GetText(KeyCleanupDone), deleted))
		})
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Server URL and sample rate changes apply on next start
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
