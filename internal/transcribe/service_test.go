package transcribe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/voicedesk/voice-desk/internal/api"
	"github.com/voicedesk/voice-desk/internal/model"
)

// countingBackend records calls and returns a fixed transcript
type countingBackend struct {
	calls      int32
	transcript string
	err        error
	block      chan struct{} // if set, Read blocks until closed
}

func (b *countingBackend) TranscribeFile(ctx context.Context, file io.Reader, fileName, mimeType string) (string, error) {
	atomic.AddInt32(&b.calls, 1)
	if b.block != nil {
		select {
		case <-b.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return b.transcript, b.err
}

func writeTempAudio(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func waitForFinished(t *testing.T, service *Service, id string) *model.TranscriptionTask {
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

func TestAddFileRejectsUnsupportedType(t *testing.T) {
	backend := &countingBackend{}
	service := NewService(backend, 2)

	path := writeTempAudio(t, "notes.txt", 16)
	if _, err := service.AddFile(path); err == nil {
		t.Fatal("Expected error for unsupported file type")
	}

	if got := atomic.LoadInt32(&backend.calls); got != 0 {
		t.Errorf("Expected no backend calls for rejected file, got %d", got)
	}
	if tasks := service.GetAllTasks(); len(tasks) != 0 {
		t.Errorf("Expected no tasks after rejection, got %d", len(tasks))
	}
}

func TestAddFileRejectsMissingFile(t *testing.T) {
	service := NewService(&countingBackend{}, 2)

	if _, err := service.AddFile("/nonexistent/audio.wav"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestAddFileCompletesTask(t *testing.T) {
	backend := &countingBackend{transcript: "hello world"}
	service := NewService(backend, 2)

	var lastStatus model.TaskStatus
	service.SetUpdateCallback(func(task *model.TranscriptionTask) {
		lastStatus = task.Status
	})

	path := writeTempAudio(t, "capture.wav", 256)
	task, err := service.AddFile(path)
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}
	if !strings.HasPrefix(task.ID, "task-") {
		t.Errorf("Task ID should have task- prefix, got %s", task.ID)
	}
	if task.FileName != "capture.wav" {
		t.Errorf("Expected file name capture.wav, got %s", task.FileName)
	}
	if task.MIMEType != "audio/wav" {
		t.Errorf("Expected MIME type audio/wav, got %s", task.MIMEType)
	}

	finished := waitForFinished(t, service, task.ID)
	if finished.Status != model.TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s (error: %s)",
			model.TaskStatusCompleted, finished.Status, finished.LastError)
	}
	if finished.Transcript != "hello world" {
		t.Errorf("Expected transcript 'hello world', got %q", finished.Transcript)
	}
	if !finished.HasTranscript() {
		t.Error("Expected HasTranscript to be true")
	}
	if lastStatus != model.TaskStatusCompleted {
		t.Errorf("Expected final callback status %s, got %s", model.TaskStatusCompleted, lastStatus)
	}
}

func TestAddFileBackendError(t *testing.T) {
	backend := &countingBackend{err: fmt.Errorf("transcription failed: no speech detected")}
	service := NewService(backend, 2)

	path := writeTempAudio(t, "silence.mp3", 128)
	task, err := service.AddFile(path)
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	finished := waitForFinished(t, service, task.ID)
	if finished.Status != model.TaskStatusError {
		t.Errorf("Expected status %s, got %s", model.TaskStatusError, finished.Status)
	}
	if finished.LastError == "" {
		t.Error("Expected last error to be set")
	}
	if finished.FinishedAt.IsZero() {
		t.Error("Expected finished time to be set")
	}
}

func TestAddFileRejectsDuplicateInFlight(t *testing.T) {
	backend := &countingBackend{block: make(chan struct{})}
	service := NewService(backend, 2)

	path := writeTempAudio(t, "capture.wav", 64)
	task, err := service.AddFile(path)
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	if _, err := service.AddFile(path); err == nil {
		t.Error("Expected error for duplicate file while in flight")
	}

	close(backend.block)
	waitForFinished(t, service, task.ID)

	// A finished task no longer blocks resubmission
	if _, err := service.AddFile(path); err != nil {
		t.Errorf("Expected resubmission after completion to succeed: %v", err)
	}
}

func TestStopTask(t *testing.T) {
	backend := &countingBackend{block: make(chan struct{})}
	service := NewService(backend, 2)

	path := writeTempAudio(t, "long.flac", 64)
	task, err := service.AddFile(path)
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	// Wait until the task is running before stopping it
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		current, _ := service.GetTask(task.ID)
		if current.Status == model.TaskStatusRunning {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := service.StopTask(task.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}

	finished := waitForFinished(t, service, task.ID)
	if finished.Status != model.TaskStatusStopped {
		t.Errorf("Expected status %s, got %s", model.TaskStatusStopped, finished.Status)
	}
}

func TestStopTaskNotFound(t *testing.T) {
	service := NewService(&countingBackend{}, 2)

	if err := service.StopTask("task-unknown"); err == nil {
		t.Error("Expected error for unknown task")
	}
}

func TestServiceWithRealClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != api.PathTranscribeFile {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if _, _, err := r.FormFile(api.MultipartFileField); err != nil {
			t.Errorf("Expected multipart field %s: %v", api.MultipartFileField, err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": true, "transcription": "real client transcript", "message": "ok"}`)
	}))
	defer server.Close()

	client := api.New(server.URL, server.Client())
	service := NewService(client, 1)

	path := writeTempAudio(t, "capture.ogg", 512)
	task, err := service.AddFile(path)
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	finished := waitForFinished(t, service, task.ID)
	if finished.Status != model.TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s (error: %s)",
			model.TaskStatusCompleted, finished.Status, finished.LastError)
	}
	if finished.Transcript != "real client transcript" {
		t.Errorf("Unexpected transcript %q", finished.Transcript)
	}
}

func TestMaxParallelQueuesPendingTasks(t *testing.T) {
	backend := &countingBackend{block: make(chan struct{}), transcript: "done"}
	service := NewService(backend, 1)

	first, err := service.AddFile(writeTempAudio(t, "a.wav", 64))
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}
	second, err := service.AddFile(writeTempAudio(t, "b.wav", 64))
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	// The second task must stay pending while the first holds the only slot
	time.Sleep(50 * time.Millisecond)
	pending, _ := service.GetTask(second.ID)
	if pending.Status != model.TaskStatusPending {
		t.Errorf("Expected second task pending, got %s", pending.Status)
	}

	close(backend.block)
	waitForFinished(t, service, first.ID)
	waitForFinished(t, service, second.ID)
}

// gaugeBackend tracks how many transcription calls are in flight at once
type gaugeBackend struct {
	mu       sync.Mutex
	inFlight int
	maxSeen  int
}

func (b *gaugeBackend) TranscribeFile(ctx context.Context, file io.Reader, fileName, mimeType string) (string, error) {
	b.mu.Lock()
	b.inFlight++
	if b.inFlight > b.maxSeen {
		b.maxSeen = b.inFlight
	}
	b.mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	b.mu.Lock()
	b.inFlight--
	b.mu.Unlock()
	return "ok", nil
}

func TestMaxParallelBoundsConcurrentBackendCalls(t *testing.T) {
	backend := &gaugeBackend{}
	service := NewService(backend, 1)

	// A burst of additions must not launch more goroutines than the bound
	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		task, err := service.AddFile(writeTempAudio(t, fmt.Sprintf("burst%d.wav", i), 64))
		if err != nil {
			t.Fatalf("AddFile failed: %v", err)
		}
		ids = append(ids, task.ID)
	}

	for _, id := range ids {
		finished := waitForFinished(t, service, id)
		if finished.Status != model.TaskStatusCompleted {
			t.Errorf("Expected task %s completed, got %s", id, finished.Status)
		}
	}

	backend.mu.Lock()
	maxSeen := backend.maxSeen
	backend.mu.Unlock()
	if maxSeen > 1 {
		t.Errorf("Expected at most 1 concurrent backend call, observed %d", maxSeen)
	}
}
