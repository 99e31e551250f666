package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// Backend endpoint paths
const (
	PathHealth         = "/health"
	PathGenerateAudio  = "/generate-audio"
	PathUploadAudio    = "/upload-audio"
	PathTranscribeFile = "/transcribe-file"
	PathCleanupUploads = "/cleanup-uploads"
)

// MultipartFileField is the form field name the backend expects for audio uploads
const MultipartFileField = "audio_file"

// ObserverFunc receives timing information for every backend call
type ObserverFunc func(endpoint string, status int, duration time.Duration)

// Option configures a Client
type Option func(*Client)

// Client is the HTTP client for the Voice Agents backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   ObserverFunc
}

// Error represents a failed backend request
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend request failed with status %d: %s", e.StatusCode, e.Body)
}

// HealthStatus reports backend reachability and third-party configuration
type HealthStatus struct {
	Status               string `json:"status"`
	Message              string `json:"message"`
	MurfConfigured       bool   `json:"murf_api_configured"`
	AssemblyAIConfigured bool   `json:"assemblyai_configured"`
}

// SpeechResult is the outcome of a generate-audio call
type SpeechResult struct {
	AudioURL string
	Message  string
}

// UploadResult is the outcome of an upload-audio call
type UploadResult struct {
	Filename    string
	Size        int64
	ContentType string
	Message     string
}

// WithObserver installs a call observer
func WithObserver(observer ObserverFunc) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// New creates a backend client. A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health fetches backend status and third-party configuration flags
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	started := time.Now()
	statusCode := 0
	defer func() { c.observe("health", statusCode, time.Since(started)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathHealth, nil)
	if err != nil {
		return HealthStatus{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, err
	}
	defer resp.Body.Close()
	statusCode = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return HealthStatus{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return HealthStatus{}, &Error{StatusCode: resp.StatusCode, Body: truncateBody(string(respBody))}
	}

	var parsed HealthStatus
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return HealthStatus{}, fmt.Errorf("invalid health response: %w", err)
	}
	return parsed, nil
}

// GenerateSpeech asks the backend to synthesize speech for the given text and
// voice. The text must be validated as non-empty by the caller; the backend
// rejects empty text with an error status.
func (c *Client) GenerateSpeech(ctx context.Context, text, voiceID string) (SpeechResult, error) {
	started := time.Now()
	statusCode := 0
	defer func() { c.observe("generate_audio", statusCode, time.Since(started)) }()

	payload, err := json.Marshal(struct {
		Text    string `json:"text"`
		VoiceID string `json:"voice_id"`
	}{Text: text, VoiceID: voiceID})
	if err != nil {
		return SpeechResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathGenerateAudio, bytes.NewReader(payload))
	if err != nil {
		return SpeechResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SpeechResult{}, err
	}
	defer resp.Body.Close()
	statusCode = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return SpeechResult{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return SpeechResult{}, &Error{StatusCode: resp.StatusCode, Body: truncateBody(string(respBody))}
	}

	var parsed struct {
		Success  bool   `json:"success"`
		AudioURL string `json:"audio_url"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return SpeechResult{}, fmt.Errorf("invalid generation response: %w", err)
	}
	if !parsed.Success {
		return SpeechResult{}, fmt.Errorf("generation failed: %s", fallbackMessage(parsed.Message))
	}
	if parsed.AudioURL == "" {
		return SpeechResult{}, fmt.Errorf("generation succeeded but no audio URL was returned")
	}
	return SpeechResult{AudioURL: parsed.AudioURL, Message: parsed.Message}, nil
}

// UploadAudio sends a finalized capture to the backend as multipart form data
func (c *Client) UploadAudio(ctx context.Context, file io.Reader, fileName, mimeType string) (UploadResult, error) {
	started := time.Now()
	statusCode := 0
	defer func() { c.observe("upload_audio", statusCode, time.Since(started)) }()

	respBody, status, err := c.postMultipart(ctx, PathUploadAudio, file, fileName, mimeType)
	statusCode = status
	if err != nil {
		return UploadResult{}, err
	}

	var parsed struct {
		Success     bool   `json:"success"`
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
		Size        int64  `json:"size"`
		Message     string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return UploadResult{}, fmt.Errorf("invalid upload response: %w", err)
	}
	if !parsed.Success {
		return UploadResult{}, fmt.Errorf("upload failed: %s", fallbackMessage(parsed.Message))
	}
	return UploadResult{
		Filename:    parsed.Filename,
		Size:        parsed.Size,
		ContentType: parsed.ContentType,
		Message:     parsed.Message,
	}, nil
}

// TranscribeFile sends one audio file to the backend and returns the transcript
func (c *Client) TranscribeFile(ctx context.Context, file io.Reader, fileName, mimeType string) (string, error) {
	started := time.Now()
	statusCode := 0
	defer func() { c.observe("transcribe_file", statusCode, time.Since(started)) }()

	respBody, status, err := c.postMultipart(ctx, PathTranscribeFile, file, fileName, mimeType)
	statusCode = status
	if err != nil {
		return "", err
	}

	var parsed struct {
		Success       bool   `json:"success"`
		Transcription string `json:"transcription"`
		Message       string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("invalid transcription response: %w", err)
	}
	if !parsed.Success {
		return "", fmt.Errorf("transcription failed: %s", fallbackMessage(parsed.Message))
	}
	return parsed.Transcription, nil
}

// CleanupUploads asks the backend to remove temporary upload files and returns
// the number of deleted files
func (c *Client) CleanupUploads(ctx context.Context) (int, error) {
	started := time.Now()
	statusCode := 0
	defer func() { c.observe("cleanup_uploads", statusCode, time.Since(started)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+PathCleanupUploads, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	statusCode = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	if resp.StatusCode != http.StatusOK {
		return 0, &Error{StatusCode: resp.StatusCode, Body: truncateBody(string(respBody))}
	}

	var parsed struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		DeletedCount int    `json:"deleted_count"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return 0, fmt.Errorf("invalid cleanup response: %w", err)
	}
	if !parsed.Success {
		return 0, fmt.Errorf("cleanup failed: %s", fallbackMessage(parsed.Message))
	}
	return parsed.DeletedCount, nil
}

// postMultipart performs a multipart upload of a single audio file and returns
// the raw response body and status code
func (c *Client) postMultipart(ctx context.Context, path string, file io.Reader, fileName, mimeType string) ([]byte, int, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, MultipartFileField, fileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, 0, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, 0, err
	}
	if err := writer.Close(); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body.Bytes()))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, &Error{StatusCode: resp.StatusCode, Body: truncateBody(string(respBody))}
	}
	return respBody, resp.StatusCode, nil
}

func (c *Client) observe(endpoint string, status int, duration time.Duration) {
	if c.observer != nil {
		c.observer(endpoint, status, duration)
	}
}

func fallbackMessage(message string) string {
	if strings.TrimSpace(message) == "" {
		return "unknown error"
	}
	return message
}

func truncateBody(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 4096 {
		return s
	}
	return s[:4096] + "..."
}
