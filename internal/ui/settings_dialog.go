package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/voicedesk/voice-desk/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry     *widget.Entry
	voiceSelect        *widget.Select
	sampleRateEntry    *widget.Entry
	captureDirEntry    *widget.Entry
	transcriptDirEntry *widget.Entry
	autoCopyCheck      *widget.Check
	languageSelect     *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.voiceSelect = widget.NewSelect(sd.settings.GetVoiceOptions(), nil)

	sd.sampleRateEntry = widget.NewEntry()
	sd.sampleRateEntry.SetPlaceHolder(strconv.Itoa(config.DefaultSampleRate))

	sd.captureDirEntry = widget.NewEntry()
	browseCaptureBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		sd.onBrowseDirectory(sd.captureDirEntry)
	})
	captureDirRow := container.NewBorder(nil, nil, nil, browseCaptureBtn, sd.captureDirEntry)

	sd.transcriptDirEntry = widget.NewEntry()
	browseTranscriptBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		sd.onBrowseDirectory(sd.transcriptDirEntry)
	})
	transcriptDirRow := container.NewBorder(nil, nil, nil, browseTranscriptBtn, sd.transcriptDirEntry)

	sd.autoCopyCheck = widget.NewCheck(sd.localization.GetText(KeyAutoCopyTranscript), nil)

	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)+":"),
		sd.serverURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyVoice)+":"),
		sd.voiceSelect,

		widget.NewLabel(sd.localization.GetText(KeySampleRate)+":"),
		sd.sampleRateEntry,

		widget.NewLabel(sd.localization.GetText(KeyCaptureDirectory)+":"),
		captureDirRow,

		widget.NewLabel(sd.localization.GetText(KeyTranscriptDirectory)+":"),
		transcriptDirRow,

		widget.NewSeparator(),
		sd.autoCopyCheck,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.voiceSelect.SetSelected(sd.settings.GetVoiceID())
	sd.sampleRateEntry.SetText(strconv.Itoa(sd.settings.GetSampleRate()))
	sd.captureDirEntry.SetText(sd.settings.GetCaptureDirectory())
	sd.transcriptDirEntry.SetText(sd.settings.GetTranscriptDirectory())
	sd.autoCopyCheck.SetChecked(sd.settings.GetAutoCopyTranscript())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing for the given entry
func (sd *SettingsDialog) onBrowseDirectory(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if sd.voiceSelect.Selected != "" {
		sd.settings.SetVoiceID(sd.voiceSelect.Selected)
	}

	if sd.sampleRateEntry.Text != "" {
		if rate, err := strconv.Atoi(sd.sampleRateEntry.Text); err == nil {
			sd.settings.SetSampleRate(rate)
		}
	}

	if sd.captureDirEntry.Text != "" {
		sd.settings.SetCaptureDirectory(sd.captureDirEntry.Text)
	}

	if sd.transcriptDirEntry.Text != "" {
		sd.settings.SetTranscriptDirectory(sd.transcriptDirEntry.Text)
	}

	sd.settings.SetAutoCopyTranscript(sd.autoCopyCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
