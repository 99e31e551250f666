package model

import (
	"fmt"
	"time"
)

// CaptureSession represents one start-to-stop microphone recording cycle.
// A session is created on start, finalized into a single WAV file on stop,
// and replaced by the next session start.
type CaptureSession struct {
	ID         string
	Status     TaskStatus
	SampleRate int
	Channels   int
	OutputPath string // path of the finalized WAV file, empty while recording
	Size       int64  // finalized file size in bytes
	Duration   time.Duration
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// IsFinalized returns true when the session produced a playable file
func (cs *CaptureSession) IsFinalized() bool {
	return cs.Status == TaskStatusCompleted && cs.OutputPath != ""
}

// GetDurationString returns the captured duration as mm:ss
func (cs *CaptureSession) GetDurationString() string {
	total := int(cs.Duration.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// GetSizeString returns the finalized file size in human readable form
func (cs *CaptureSession) GetSizeString() string {
	const unit = 1024
	if cs.Size < unit {
		return fmt.Sprintf("%d B", cs.Size)
	}
	div, exp := int64(unit), 0
	for n := cs.Size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(cs.Size)/float64(div), "KMGTPE"[exp])
}
