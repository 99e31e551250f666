package config

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/voicedesk/voice-desk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL          = "server_url"
	KeyVoiceID            = "voice_id"
	KeySampleRate         = "sample_rate"
	KeyChannels           = "channels"
	KeyChunkInterval      = "chunk_interval_ms"
	KeyCaptureDir         = "capture_directory"
	KeyTranscriptDir      = "transcript_directory"
	KeyAutoCopyTranscript = "auto_copy_transcript"
	KeyLanguage           = "app_language"
)

// Environment overrides read at startup (loaded via godotenv in main)
const (
	EnvServerURL = "VOICEDESK_SERVER_URL"
	EnvVoiceID   = "VOICEDESK_VOICE_ID"
)

// Default values
const (
	DefaultServerURL          = "http://localhost:8000"
	DefaultVoiceID            = "en-US-davis"
	DefaultSampleRate         = 44100
	DefaultChannels           = 1
	DefaultChunkIntervalMs    = 100
	DefaultLanguage           = "system"
	DefaultAutoCopyTranscript = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured backend base URL. The environment
// variable takes precedence over the stored preference.
func (s *Settings) GetServerURL() string {
	if env := strings.TrimSpace(os.Getenv(EnvServerURL)); env != "" {
		return strings.TrimRight(env, "/")
	}

	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the backend base URL
func (s *Settings) SetServerURL(url string) {
	s.app.Preferences().SetString(KeyServerURL, strings.TrimRight(strings.TrimSpace(url), "/"))
}

// GetVoiceID returns the configured voice for speech generation
func (s *Settings) GetVoiceID() string {
	if env := strings.TrimSpace(os.Getenv(EnvVoiceID)); env != "" {
		return env
	}

	voice := s.app.Preferences().String(KeyVoiceID)
	if voice == "" {
		s.SetVoiceID(DefaultVoiceID)
		return DefaultVoiceID
	}
	return voice
}

// SetVoiceID sets the voice for speech generation
func (s *Settings) SetVoiceID(voiceID string) {
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	s.app.Preferences().SetString(KeyVoiceID, voiceID)
}

// GetVoiceOptions returns the selectable voices for speech generation
func (s *Settings) GetVoiceOptions() []string {
	return []string{
		"en-US-davis",
		"en-US-natalie",
		"en-US-terrell",
		"en-GB-ruby",
		"en-AU-kylie",
	}
}

// GetSampleRate returns the capture sample rate in Hz
func (s *Settings) GetSampleRate() int {
	value := s.app.Preferences().Int(KeySampleRate)
	if value <= 0 {
		s.SetSampleRate(DefaultSampleRate)
		return DefaultSampleRate
	}
	return value
}

// SetSampleRate sets the capture sample rate in Hz
func (s *Settings) SetSampleRate(rate int) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	s.app.Preferences().SetInt(KeySampleRate, rate)
}

// GetChannels returns the capture channel count
func (s *Settings) GetChannels() int {
	value := s.app.Preferences().Int(KeyChannels)
	if value <= 0 {
		s.SetChannels(DefaultChannels)
		return DefaultChannels
	}
	return value
}

// SetChannels sets the capture channel count, clamped to 1..2
func (s *Settings) SetChannels(channels int) {
	if channels < 1 {
		channels = 1
	}
	if channels > 2 {
		channels = 2
	}
	s.app.Preferences().SetInt(KeyChannels, channels)
}

// GetChunkIntervalMs returns how often captured segments are drained from the
// input device, in milliseconds
func (s *Settings) GetChunkIntervalMs() int {
	value := s.app.Preferences().Int(KeyChunkInterval)
	if value <= 0 {
		s.SetChunkIntervalMs(DefaultChunkIntervalMs)
		return DefaultChunkIntervalMs
	}
	return value
}

// SetChunkIntervalMs sets the capture segment drain interval in milliseconds
func (s *Settings) SetChunkIntervalMs(intervalMs int) {
	if intervalMs <= 0 {
		intervalMs = DefaultChunkIntervalMs
	}
	s.app.Preferences().SetInt(KeyChunkInterval, intervalMs)
}

// GetCaptureDirectory returns the directory for finalized captures
func (s *Settings) GetCaptureDirectory() string {
	dir := s.app.Preferences().String(KeyCaptureDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeCapturesDir()
		if err != nil {
			defaultDir = "/tmp/voicedesk/captures"
		}
		s.SetCaptureDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetCaptureDirectory sets the directory for finalized captures
func (s *Settings) SetCaptureDirectory(dir string) {
	s.app.Preferences().SetString(KeyCaptureDir, dir)
}

// GetTranscriptDirectory returns the directory for saved transcripts
func (s *Settings) GetTranscriptDirectory() string {
	dir := s.app.Preferences().String(KeyTranscriptDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeTranscriptsDir()
		if err != nil {
			defaultDir = "/tmp/voicedesk/transcripts"
		}
		s.SetTranscriptDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetTranscriptDirectory sets the directory for saved transcripts
func (s *Settings) SetTranscriptDirectory(dir string) {
	s.app.Preferences().SetString(KeyTranscriptDir, dir)
}

// GetAutoCopyTranscript returns whether completed transcripts are copied to
// the clipboard automatically
func (s *Settings) GetAutoCopyTranscript() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoCopyTranscript, DefaultAutoCopyTranscript)
}

// SetAutoCopyTranscript sets whether completed transcripts are copied to the
// clipboard automatically
func (s *Settings) SetAutoCopyTranscript(autoCopy bool) {
	s.app.Preferences().SetBool(KeyAutoCopyTranscript, autoCopy)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
