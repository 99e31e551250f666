package transcribe

import (
	"context"
	"io"

	"github.com/voicedesk/voice-desk/internal/model"
)

// Transcriber defines the interface for transcription operations
type Transcriber interface {
	SetUpdateCallback(func(*model.TranscriptionTask))
	AddFile(path string) (*model.TranscriptionTask, error)
	GetTask(id string) (*model.TranscriptionTask, bool)
	GetAllTasks() []*model.TranscriptionTask
	StopTask(id string) error
}

// Backend is the subset of the API client used by the transcription service
type Backend interface {
	TranscribeFile(ctx context.Context, file io.Reader, fileName, mimeType string) (string, error)
}
