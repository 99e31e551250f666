package speech

import (
	"context"

	"github.com/voicedesk/voice-desk/internal/api"
	"github.com/voicedesk/voice-desk/internal/model"
)

// Synthesizer defines the interface for speech generation
type Synthesizer interface {
	SetUpdateCallback(func(*model.SpeechTask))
	Generate(text, voiceID string) (*model.SpeechTask, error)
	GetTask(id string) (*model.SpeechTask, bool)
	Latest() (*model.SpeechTask, bool)
}

// Backend is the subset of the API client used by the speech service
type Backend interface {
	GenerateSpeech(ctx context.Context, text, voiceID string) (api.SpeechResult, error)
}
