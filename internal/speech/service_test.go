package speech

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/voicedesk/voice-desk/internal/api"
	"github.com/voicedesk/voice-desk/internal/model"
)

// fakeBackend records calls and returns a fixed result
type fakeBackend struct {
	calls  int32
	result api.SpeechResult
	err    error

	lastText  string
	lastVoice string
}

func (b *fakeBackend) GenerateSpeech(ctx context.Context, text, voiceID string) (api.SpeechResult, error) {
	atomic.AddInt32(&b.calls, 1)
	b.lastText = text
	b.lastVoice = voiceID
	return b.result, b.err
}

func waitForFinished(t *testing.T, service *Service, id string) *model.SpeechTask {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		task, ok := service.GetTask(id)
		if ok && task.Status.IsFinished() {
			return task
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Task did not finish in time")
	return nil
}

func TestGenerateRejectsEmptyText(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := service.Generate(text, "en-US-davis"); err == nil {
			t.Errorf("Expected error for empty text %q", text)
		}
	}

	if got := atomic.LoadInt32(&backend.calls); got != 0 {
		t.Errorf("Expected no backend calls for rejected text, got %d", got)
	}
}

func TestGenerateCompletesTask(t *testing.T) {
	backend := &fakeBackend{result: api.SpeechResult{
		AudioURL: "http://audio.example/clip.mp3",
		Message:  "Audio generated successfully",
	}}
	service := NewService(backend)

	var lastStatus model.TaskStatus
	service.SetUpdateCallback(func(task *model.SpeechTask) {
		lastStatus = task.Status
	})

	task, err := service.Generate("  Hello there  ", "en-GB-ruby")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.HasPrefix(task.ID, "speech-") {
		t.Errorf("Task ID should have speech- prefix, got %s", task.ID)
	}
	if task.Text != "Hello there" {
		t.Errorf("Expected trimmed text, got %q", task.Text)
	}

	finished := waitForFinished(t, service, task.ID)
	if finished.Status != model.TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s (error: %s)",
			model.TaskStatusCompleted, finished.Status, finished.LastError)
	}
	if finished.AudioURL != "http://audio.example/clip.mp3" {
		t.Errorf("Unexpected audio URL %q", finished.AudioURL)
	}
	if backend.lastVoice != "en-GB-ruby" {
		t.Errorf("Expected voice en-GB-ruby, got %s", backend.lastVoice)
	}
	if lastStatus != model.TaskStatusCompleted {
		t.Errorf("Expected final callback status %s, got %s", model.TaskStatusCompleted, lastStatus)
	}
}

func TestGenerateBackendError(t *testing.T) {
	backend := &fakeBackend{err: fmt.Errorf("generation failed: voice not found")}
	service := NewService(backend)

	task, err := service.Generate("Hello", "bad-voice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	finished := waitForFinished(t, service, task.ID)
	if finished.Status != model.TaskStatusError {
		t.Errorf("Expected status %s, got %s", model.TaskStatusError, finished.Status)
	}
	if finished.LastError == "" {
		t.Error("Expected last error to be set")
	}
	if finished.AudioURL != "" {
		t.Errorf("Expected no audio URL on failure, got %q", finished.AudioURL)
	}
}

func TestLatest(t *testing.T) {
	backend := &fakeBackend{result: api.SpeechResult{AudioURL: "http://audio.example/a.mp3"}}
	service := NewService(backend)

	if _, ok := service.Latest(); ok {
		t.Error("Expected no latest task before any request")
	}

	first, err := service.Generate("first", "en-US-davis")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	waitForFinished(t, service, first.ID)

	second, err := service.Generate("second", "en-US-davis")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	latest, ok := service.Latest()
	if !ok {
		t.Fatal("Expected a latest task")
	}
	if latest.ID != second.ID {
		t.Errorf("Expected latest task %s, got %s", second.ID, latest.ID)
	}
}
