package record

import (
	"github.com/voicedesk/voice-desk/internal/model"
)

// Recorder defines the interface for the capture service.
type Recorder interface {
	SetUpdateCallback(func(*model.CaptureSession))
	Start() (*model.CaptureSession, error)
	Stop() error
	Current() (*model.CaptureSession, bool)

	// SetChunkInterval configures how often captured segments are drained
	// from the input device
	SetChunkInterval(interval int)
}

// SampleSource abstracts a PCM input device so the capture pipeline can be
// exercised without real hardware.
type SampleSource interface {
	// Start begins streaming from the device
	Start() error

	// Read returns the next captured segment of interleaved int16 samples
	Read() ([]int16, error)

	// Close stops streaming and releases the device. Implementations must
	// tolerate a single call only; the service guarantees exactly one.
	Close() error
}

// SourceFactory opens a sample source for the given format. The capture
// service uses a PortAudio-backed factory by default; tests substitute fakes.
type SourceFactory func(sampleRate, channels int) (SampleSource, error)
