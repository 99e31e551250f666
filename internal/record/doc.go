package record

// Package record implements microphone capture sessions on top of PortAudio
// (via github.com/gordonklaus/portaudio). It manages the session lifecycle,
// accumulates PCM segments at a fixed chunk interval, finalizes sessions into
// a single WAV file, and guarantees the input device is released exactly once.
