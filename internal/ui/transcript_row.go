package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/voicedesk/voice-desk/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Transcript preview length in the row
const TranscriptPreviewLen = 160

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// transcriptPreview trims the transcript and truncates it on a rune boundary
// so multi-byte characters are never split at the cut point
func transcriptPreview(transcript string) string {
	trimmed := strings.TrimSpace(transcript)
	runes := []rune(trimmed)
	if len(runes) <= TranscriptPreviewLen {
		return trimmed
	}
	return string(runes[:TranscriptPreviewLen]) + "…"
}

// TranscriptRow represents a compact transcription task row widget
type TranscriptRow struct {
	widget.BaseWidget

	task         *model.TranscriptionTask
	localization *Localization

	// UI components
	titleLabel      *widget.Label
	statusLabel     *widget.Label
	elapsedLabel    *widget.Label
	transcriptLabel *widget.Label

	// Action buttons
	copyBtn *widget.Button // copy transcript to clipboard
	saveBtn *widget.Button // save transcript to a text file
	openBtn *widget.Button // reveal source file in file manager
	stopBtn *widget.Button // stop an active task

	// Callbacks
	onCopy   func(taskID string)
	onSave   func(taskID string)
	onReveal func(filePath string)
	onStop   func(taskID string)
}

// NewTranscriptRow creates a new transcription row widget
func NewTranscriptRow(task *model.TranscriptionTask, localization *Localization) *TranscriptRow {
	if task == nil {
		log.Printf("Warning: NewTranscriptRow called with nil task")
		task = &model.TranscriptionTask{
			ID:     "placeholder",
			Status: model.TaskStatusPending,
		}
	}

	tr := &TranscriptRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TranscriptRow) SetCallbacks(
	onCopy func(taskID string),
	onSave func(taskID string),
	onReveal func(filePath string),
	onStop func(taskID string),
) {
	tr.onCopy = onCopy
	tr.onSave = onSave
	tr.onReveal = onReveal
	tr.onStop = onStop
}

// UpdateTask updates the row with new task data
func (tr *TranscriptRow) UpdateTask(task *model.TranscriptionTask) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for existing task %s", tr.task.ID)
		return
	}

	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TranscriptRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.titleLabel.Alignment = fyne.TextAlignLeading

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing

	tr.elapsedLabel = widget.NewLabel("")
	tr.elapsedLabel.Alignment = fyne.TextAlignTrailing
	tr.elapsedLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.transcriptLabel = widget.NewLabel("")
	tr.transcriptLabel.Wrapping = fyne.TextWrapWord
	tr.transcriptLabel.Truncation = fyne.TextTruncateEllipsis

	tr.copyBtn = widget.NewButton(tr.localization.GetText(KeyCopyTranscript), func() {
		currentTask := tr.task
		if tr.onCopy != nil && currentTask.HasTranscript() {
			tr.onCopy(currentTask.ID)
		}
	})
	tr.copyBtn.Importance = widget.MediumImportance

	tr.saveBtn = widget.NewButton(tr.localization.GetText(KeySaveTranscript), func() {
		currentTask := tr.task
		if tr.onSave != nil && currentTask.HasTranscript() {
			tr.onSave(currentTask.ID)
		}
	})
	tr.saveBtn.Importance = widget.MediumImportance

	tr.openBtn = widget.NewButton(tr.localization.GetText(KeyOpen), func() {
		currentTask := tr.task
		if currentTask.FilePath == "" {
			widget.ShowPopUp(widget.NewLabel(tr.localization.GetText(KeyErrorOpeningFile)),
				fyne.CurrentApp().Driver().CanvasForObject(tr.openBtn))
			return
		}
		if tr.onReveal != nil {
			tr.onReveal(currentTask.FilePath)
		}
	})
	tr.openBtn.Importance = widget.MediumImportance

	tr.stopBtn = widget.NewButton(tr.localization.GetText(KeyStop), func() {
		currentTask := tr.task
		if tr.onStop != nil && currentTask.Status.IsActive() {
			tr.onStop(currentTask.ID)
		}
	})
	tr.stopBtn.Importance = widget.MediumImportance
}

// updateFromTask updates UI components based on task state
func (tr *TranscriptRow) updateFromTask() {
	if tr.task == nil {
		log.Printf("Warning: updateFromTask called with nil task")
		return
	}

	title := tr.task.GetDisplayTitle()
	if tr.task.FileSize > 0 {
		title += MiddleDotSeparator + formatFileSize(tr.task.FileSize)
	}
	tr.titleLabel.SetText(title)

	// Update status label color and text
	switch tr.task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + tr.task.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	case model.TaskStatusRunning, model.TaskStatusStarting:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + tr.task.Status.String())
	case model.TaskStatusPending:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText("⏳ " + tr.task.Status.String())
	case model.TaskStatusStopped:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconStop + " " + tr.task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	}

	tr.elapsedLabel.SetText(tr.task.GetElapsedString())

	// Transcript preview or error text below the title
	switch {
	case tr.task.HasTranscript():
		tr.transcriptLabel.SetText(transcriptPreview(tr.task.Transcript))
	case tr.task.Status == model.TaskStatusError && tr.task.LastError != "":
		tr.transcriptLabel.SetText(tr.task.LastError)
	default:
		tr.transcriptLabel.SetText("")
	}

	tr.updateButtons()
}

// updateButtons updates button states based on task status
func (tr *TranscriptRow) updateButtons() {
	if tr.task == nil {
		return
	}

	if tr.task.HasTranscript() {
		tr.copyBtn.Enable()
		tr.saveBtn.Enable()
	} else {
		tr.copyBtn.Disable()
		tr.saveBtn.Disable()
	}

	if tr.task.FilePath != "" {
		tr.openBtn.Enable()
	} else {
		tr.openBtn.Disable()
	}

	if tr.task.Status.IsActive() {
		tr.stopBtn.Show()
		tr.stopBtn.Enable()
	} else {
		tr.stopBtn.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TranscriptRow) CreateRenderer() fyne.WidgetRenderer {
	return &transcriptRowRenderer{row: tr}
}

// transcriptRowRenderer renders the transcript row widget
type transcriptRowRenderer struct {
	row    *TranscriptRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *transcriptRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *transcriptRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *transcriptRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *transcriptRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *transcriptRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *transcriptRowRenderer) createLayout() {
	tr := r.row

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	statusCluster := container.NewHBox(
		fixedWidth(ElapsedLabelWidth, tr.elapsedLabel),
		fixedWidth(StatusLabelWidth, tr.statusLabel),
	)

	actionRow := container.NewHBox(
		tr.stopBtn,
		tr.openBtn,
		tr.copyBtn,
		tr.saveBtn,
	)

	// Buttons pinned to the right edge, status next to them, title takes the rest
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, statusCluster)
	headerRow := container.NewBorder(nil, nil, nil, rightCluster, tr.titleLabel)

	r.layout = container.NewVBox(
		headerRow,
		tr.transcriptLabel,
		widget.NewSeparator(),
	)
}
