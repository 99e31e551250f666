package record

import (
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

// Capture constants
const (
	// DefaultChunkIntervalMs is how often captured segments are drained from
	// the device, in milliseconds
	DefaultChunkIntervalMs = 100

	CaptureFilePrefix = "capture_"
	CaptureExtension  = ".wav"
	SessionIDPrefix   = "capture-"
)

// Service handles microphone capture sessions
type Service struct {
	mu            sync.Mutex
	session       *model.CaptureSession
	frames        []int16
	source        SampleSource
	sourceFactory SourceFactory
	captureDir    string
	sampleRate    int
	channels      int
	chunkInterval time.Duration
	stopCh        chan struct{}
	doneCh        chan struct{}
	released      bool // input device released for the current session
	onUpdate      func(*model.CaptureSession)
}

// NewService creates a new capture service writing finalized sessions to
// captureDir. The default source factory opens the system microphone through
// PortAudio.
func NewService(captureDir string, sampleRate, channels int) *Service {
	return &Service{
		captureDir:    captureDir,
		sampleRate:    sampleRate,
		channels:      channels,
		chunkInterval: DefaultChunkIntervalMs * time.Millisecond,
		sourceFactory: NewPortAudioSource,
	}
}

// SetUpdateCallback sets the callback function for session updates
func (s *Service) SetUpdateCallback(callback func(*model.CaptureSession)) {
	s.onUpdate = callback
}

// SetSourceFactory replaces the sample source factory (used by tests)
func (s *Service) SetSourceFactory(factory SourceFactory) {
	s.sourceFactory = factory
}

// SetChunkInterval configures the segment drain interval in milliseconds
func (s *Service) SetChunkInterval(intervalMs int) {
	if intervalMs <= 0 {
		intervalMs = DefaultChunkIntervalMs
	}
	s.mu.Lock()
	s.chunkInterval = time.Duration(intervalMs) * time.Millisecond
	s.mu.Unlock()
}

// Start begins a new capture session. The previous finalized session is
// discarded. Starting while a session is active is an error.
func (s *Service) Start() (*model.CaptureSession, error) {
	s.mu.Lock()

	if s.session != nil && s.session.Status.IsActive() {
		id := s.session.ID
		s.mu.Unlock()
		return nil, fmt.Errorf("capture session already active: %s", id)
	}

	session := &model.CaptureSession{
		ID:         generateSessionID(),
		Status:     model.TaskStatusStarting,
		SampleRate: s.sampleRate,
		Channels:   s.channels,
		StartedAt:  time.Now(),
	}

	source, err := s.sourceFactory(s.sampleRate, s.channels)
	if err != nil {
		session.Status = model.TaskStatusError
		session.LastError = err.Error()
		s.session = session
		s.mu.Unlock()
		s.notifyUpdate(session)
		return nil, fmt.Errorf("failed to open input device: %w", err)
	}

	if err := source.Start(); err != nil {
		_ = source.Close()
		session.Status = model.TaskStatusError
		session.LastError = err.Error()
		s.session = session
		s.mu.Unlock()
		s.notifyUpdate(session)
		return nil, fmt.Errorf("failed to start input stream: %w", err)
	}

	s.session = session
	s.source = source
	s.frames = nil
	s.released = false
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh, doneCh := s.stopCh, s.doneCh

	session.Status = model.TaskStatusRunning
	s.mu.Unlock()

	s.notifyUpdate(session)

	go s.captureLoop(session, source, stopCh, doneCh)

	log.Printf("Capture session started: id=%s rate=%d channels=%d", session.ID, s.sampleRate, s.channels)
	return session, nil
}

// captureLoop drains segments from the source at the chunk interval until
// stopped
func (s *Service) captureLoop(session *model.CaptureSession, source SampleSource, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	s.mu.Lock()
	interval := s.chunkInterval
	s.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			segment, err := source.Read()
			if err != nil {
				log.Printf("Capture read error for session %s: %v", session.ID, err)
				continue
			}
			s.mu.Lock()
			s.frames = append(s.frames, segment...)
			s.mu.Unlock()
		}
	}
}

// Stop finalizes the active session into a single WAV file, computes its
// duration and size, and releases the input device
func (s *Service) Stop() error {
	s.mu.Lock()
	session := s.session
	if session == nil || session.Status != model.TaskStatusRunning {
		s.mu.Unlock()
		return fmt.Errorf("no active capture session")
	}
	session.Status = model.TaskStatusStopping
	stopCh := s.stopCh
	doneCh := s.doneCh
	s.mu.Unlock()

	s.notifyUpdate(session)

	close(stopCh)
	<-doneCh

	s.mu.Lock()
	s.releaseSourceLocked(session)

	if err := platform.CreateDirectoryIfNotExists(s.captureDir); err != nil {
		return s.fail(session, fmt.Errorf("failed to ensure capture directory: %w", err))
	}

	outputPath := filepath.Join(s.captureDir, CaptureFilePrefix+session.ID+CaptureExtension)
	if err := writeWAV(outputPath, s.frames, s.sampleRate, s.channels); err != nil {
		return s.fail(session, fmt.Errorf("failed to write capture file: %w", err))
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return s.fail(session, fmt.Errorf("failed to stat capture file: %w", err))
	}

	session.OutputPath = outputPath
	session.Size = info.Size()
	session.Duration = frameDuration(len(s.frames), s.sampleRate, s.channels)
	session.FinishedAt = time.Now()
	session.Status = model.TaskStatusCompleted
	s.frames = nil
	s.mu.Unlock()

	log.Printf("Capture session finalized: id=%s path=%s duration=%s size=%d",
		session.ID, session.OutputPath, session.Duration, session.Size)

	s.notifyUpdate(session)
	return nil
}

// Current returns the latest session, finalized or active
func (s *Service) Current() (*model.CaptureSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, false
	}
	return s.session, true
}

// releaseSourceLocked releases the input device exactly once per session.
// Callers must hold s.mu.
func (s *Service) releaseSourceLocked(session *model.CaptureSession) {
	if s.released || s.source == nil {
		return
	}
	if err := s.source.Close(); err != nil {
		log.Printf("Failed to release input device for session %s: %v", session.ID, err)
	}
	s.released = true
	s.source = nil
}

// fail records an error on the session, releases the lock and notifies.
// Callers must hold s.mu.
func (s *Service) fail(session *model.CaptureSession, err error) error {
	session.Status = model.TaskStatusError
	session.LastError = err.Error()
	session.FinishedAt = time.Now()
	s.frames = nil
	s.mu.Unlock()
	s.notifyUpdate(session)
	return err
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(session *model.CaptureSession) {
	if s.onUpdate != nil {
		s.onUpdate(session)
	}
}

// frameDuration derives the captured audio duration from the sample count
func frameDuration(samples, sampleRate, channels int) time.Duration {
	if sampleRate <= 0 || channels <= 0 {
		return 0
	}
	frames := samples / channels
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}

// generateSessionID generates a unique session ID using UUID v7 for better
// uniqueness and time ordering
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SessionIDPrefix + id.String()
}
