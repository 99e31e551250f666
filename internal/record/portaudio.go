package record

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// portAudioBufferLen is the per-read buffer size in samples
const portAudioBufferLen = 1024

// portAudioSource streams interleaved int16 samples from the default system
// microphone
type portAudioSource struct {
	stream *portaudio.Stream
	buffer []int16
}

// NewPortAudioSource opens the default input device for the given format.
// The returned source owns the PortAudio initialization and releases it on
// Close.
func NewPortAudioSource(sampleRate, channels int) (SampleSource, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	buffer := make([]int16, portAudioBufferLen)
	stream, err := portaudio.OpenDefaultStream(channels, 0, float64(sampleRate),
		framesPerBuffer(len(buffer), channels), buffer)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("failed to open input stream: %w", err)
	}

	return &portAudioSource{stream: stream, buffer: buffer}, nil
}

// framesPerBuffer converts an interleaved sample buffer length to the frame
// count the stream expects. A stereo buffer holds half as many frames as it
// holds samples.
func framesPerBuffer(bufferLen, channels int) int {
	if channels < 1 {
		channels = 1
	}
	return bufferLen / channels
}

// Start begins streaming from the device
func (p *portAudioSource) Start() error {
	return p.stream.Start()
}

// Read blocks until the next buffer is captured and returns a copy of it
func (p *portAudioSource) Read() ([]int16, error) {
	if err := p.stream.Read(); err != nil {
		return nil, err
	}
	segment := make([]int16, len(p.buffer))
	copy(segment, p.buffer)
	return segment, nil
}

// Close stops the stream and releases PortAudio
func (p *portAudioSource) Close() error {
	_ = p.stream.Stop()
	err := p.stream.Close()
	if termErr := portaudio.Terminate(); err == nil {
		err = termErr
	}
	return err
}
