package model

import (
	"fmt"
	"strings"
	"time"
)

// TranscriptionTask represents a single file submitted for transcription
type TranscriptionTask struct {
	ID         string
	FilePath   string
	FileName   string
	MIMEType   string
	Status     TaskStatus
	Transcript string // text returned by the backend, empty until completed
	LastError  string // last error message if any
	FileSize   int64  // file size in bytes
	StartedAt  time.Time
	FinishedAt time.Time
}

// SpeechTask represents a single text-to-speech generation request
type SpeechTask struct {
	ID         string
	Text       string
	VoiceID    string
	Status     TaskStatus
	AudioURL   string // URL of the generated audio, empty until completed
	Message    string // backend message accompanying the result
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the file name, or the path, or the task ID in order
// of preference
func (tt *TranscriptionTask) GetDisplayTitle() string {
	if tt.FileName != "" {
		return tt.FileName
	}

	if tt.FilePath != "" {
		parts := strings.FieldsFunc(tt.FilePath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	return tt.ID
}

// GetElapsedString returns the elapsed processing time as mm:ss or hh:mm:ss,
// or "—" if the task has not started
func (tt *TranscriptionTask) GetElapsedString() string {
	if tt.StartedAt.IsZero() {
		return "—"
	}

	end := tt.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}

	total := int(end.Sub(tt.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// HasTranscript returns true when a completed task carries a non-empty result
func (tt *TranscriptionTask) HasTranscript() bool {
	return tt.Status == TaskStatusCompleted && tt.Transcript != ""
}

// TrimmedText returns the request text with surrounding whitespace removed
func (st *SpeechTask) TrimmedText() string {
	return strings.TrimSpace(st.Text)
}
