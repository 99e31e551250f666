package speech

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voicedesk/voice-desk/internal/model"
)

// requestTimeout bounds a single generation call
const requestTimeout = 2 * time.Minute

// Service handles speech generation operations
type Service struct {
	tasks      map[string]*model.SpeechTask
	tasksMutex sync.RWMutex
	latestID   string
	backend    Backend
	onUpdate   func(*model.SpeechTask) // callback for UI updates
}

// NewService creates a new speech service
func NewService(backend Backend) *Service {
	return &Service{
		tasks:   make(map[string]*model.SpeechTask),
		backend: backend,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.SpeechTask)) {
	s.onUpdate = callback
}

// Generate validates the text and starts a generation request. Empty text is
// rejected without any network call.
func (s *Service) Generate(text, voiceID string) (*model.SpeechTask, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("text must not be empty")
	}

	task := &model.SpeechTask{
		ID:        generateTaskID(),
		Text:      trimmed,
		VoiceID:   voiceID,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.latestID = task.ID
	s.tasksMutex.Unlock()

	go s.startTask(task)

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.SpeechTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// Latest returns the most recently submitted task
func (s *Service) Latest() (*model.SpeechTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[s.latestID]
	return task, exists
}

// startTask runs one generation request
func (s *Service) startTask(task *model.SpeechTask) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := s.backend.GenerateSpeech(ctx, task.Text, task.VoiceID)

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		log.Printf("Speech generation failed for task %s: %v", task.ID, err)
	} else {
		task.Status = model.TaskStatusCompleted
		task.AudioURL = result.AudioURL
		task.Message = result.Message
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.SpeechTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("speech-%d", time.Now().UnixNano())
	}
	return "speech-" + id.String()
}
