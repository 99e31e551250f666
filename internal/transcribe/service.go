package transcribe

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voicedesk/voice-desk/internal/model"
	"github.com/voicedesk/voice-desk/internal/platform"
)

// requestTimeout bounds a single transcription call including the upload
const requestTimeout = 5 * time.Minute

// Service handles transcription operations
type Service struct {
	tasks       map[string]*model.TranscriptionTask
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	backend     Backend
	onUpdate    func(*model.TranscriptionTask) // callback for UI updates
}

// NewService creates a new transcription service
func NewService(backend Backend, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:       make(map[string]*model.TranscriptionTask),
		maxParallel: maxParallel,
		backend:     backend,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.TranscriptionTask)) {
	s.onUpdate = callback
}

// AddFile validates the file locally and queues it for transcription.
// Unsupported types and oversized files are rejected without any network call.
func (s *Service) AddFile(path string) (*model.TranscriptionTask, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("not a file: %s", path)
	}

	mimeType, ok := platform.DetectAudioMIME(path)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if info.Size() > platform.MaxUploadSize {
		return nil, fmt.Errorf("file exceeds the %d MB upload limit", platform.MaxUploadSize/(1024*1024))
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate paths still in flight
	for _, task := range s.tasks {
		if task.FilePath == path && !task.Status.IsFinished() {
			return nil, fmt.Errorf("task already exists for file: %s", path)
		}
	}

	task := &model.TranscriptionTask{
		ID:        generateTaskID(),
		FilePath:  path,
		FileName:  filepath.Base(path),
		MIMEType:  mimeType,
		FileSize:  info.Size(),
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasks[task.ID] = task

	// Reserve a slot under the lock before spawning so a burst of additions
	// cannot exceed the parallel bound
	if s.activeCount < s.maxParallel {
		s.activeCount++
		task.Status = model.TaskStatusStarting
		go s.startTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.TranscriptionTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.TranscriptionTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.TranscriptionTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// StopTask stops a running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}

	if !task.Status.IsActive() {
		status := task.Status
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", status)
	}

	// Set stopping status; the actual stopping is handled in the task goroutine
	task.Status = model.TaskStatusStopping
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return nil
}

// startTask runs one transcription task. The caller reserves the parallel
// slot and marks the task as starting before spawning this goroutine.
func (s *Service) startTask(task *model.TranscriptionTask) {
	s.notifyUpdate(task)

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.tasksMutex.RLock()
			status := task.Status
			s.tasksMutex.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}()

	transcript, err := s.transcribe(ctx, task)

	s.tasksMutex.Lock()
	if err != nil {
		if ctx.Err() == context.Canceled {
			task.Status = model.TaskStatusStopped
		} else {
			task.Status = model.TaskStatusError
			task.LastError = err.Error()
		}
		log.Printf("Transcription failed for task %s (%s): %v", task.ID, task.FileName, err)
	} else {
		task.Status = model.TaskStatusCompleted
		task.Transcript = transcript
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// transcribe opens the task file and sends it to the backend
func (s *Service) transcribe(ctx context.Context, task *model.TranscriptionTask) (string, error) {
	file, err := os.Open(task.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return s.backend.TranscribeFile(ctx, file, task.FileName, task.MIMEType)
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	// Find next pending task and claim it before releasing the lock, so two
	// finishing tasks cannot dispatch the same pending task twice
	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			s.activeCount++
			task.Status = model.TaskStatusStarting
			go s.startTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.TranscriptionTask) {
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
		return fmt.Sprintf("task-%d", time.Now().UnixNano())
	}
	return "task-" + id.String()
}
