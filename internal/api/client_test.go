package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHealthParsesConfigurationFlags(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"healthy","message":"ok","murf_api_configured":true,"assemblyai_configured":false}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if !status.MurfConfigured {
		t.Error("expected murf_api_configured to be true")
	}
	if status.AssemblyAIConfigured {
		t.Error("expected assemblyai_configured to be false")
	}
	if status.Status != "healthy" {
		t.Errorf("unexpected status: %q", status.Status)
	}
}

func TestHealthReturnsErrorOnBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	if _, err := c.Health(context.Background()); err == nil {
		t.Fatal("expected error for unparseable health response")
	}
}

func TestGenerateSpeechReturnsAudioURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-audio" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"voice_id":"en-US-davis"`) {
			t.Fatalf("voice_id missing from payload: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"audio_url":"http://x/a.mp3","message":"Audio generated successfully"}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	result, err := c.GenerateSpeech(context.Background(), "hello", "en-US-davis")
	if err != nil {
		t.Fatalf("GenerateSpeech() error = %v", err)
	}
	if result.AudioURL != "http://x/a.mp3" {
		t.Fatalf("unexpected audio URL: %q", result.AudioURL)
	}
}

func TestGenerateSpeechRejectsNonSuccessFlag(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":false,"message":"Murf API error"}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	_, err := c.GenerateSpeech(context.Background(), "hello", "en-US-davis")
	if err == nil {
		t.Fatal("expected error for success:false response")
	}
	if !strings.Contains(err.Error(), "Murf API error") {
		t.Fatalf("expected backend message in error, got: %v", err)
	}
}

func TestGenerateSpeechRejectsMissingAudioURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"message":"ok"}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	if _, err := c.GenerateSpeech(context.Background(), "hello", "en-US-davis"); err == nil {
		t.Fatal("expected error when audio_url is missing")
	}
}

func TestUploadAudioSendsMultipartField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload-audio" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()
		file, header, err := r.FormFile("audio_file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "capture.wav" {
			t.Fatalf("unexpected filename: %q", header.Filename)
		}
		if got := header.Header.Get("Content-Type"); got != "audio/wav" {
			t.Fatalf("unexpected part content type: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"filename":"abc.wav","content_type":"audio/wav","size":4,"message":"File uploaded successfully"}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	result, err := c.UploadAudio(context.Background(), strings.NewReader("RIFF"), "capture.wav", "audio/wav")
	if err != nil {
		t.Fatalf("UploadAudio() error = %v", err)
	}
	if result.Filename != "abc.wav" || result.Size != 4 || result.ContentType != "audio/wav" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestTranscribeFileReturnsTranscript(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe-file" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"transcription":"hello world","message":"Transcription completed successfully"}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	text, err := c.TranscribeFile(context.Background(), strings.NewReader("audio"), "sample.wav", "audio/wav")
	if err != nil {
		t.Fatalf("TranscribeFile() error = %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected transcript: %q", text)
	}
}

func TestTranscribeFileReturnsTypedErrorOnHTTPFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "AssemblyAI API key not configured", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	_, err := c.TranscribeFile(context.Background(), strings.NewReader("audio"), "sample.wav", "audio/wav")
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status code: %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "AssemblyAI API key not configured") {
		t.Fatalf("expected response body in error message, got: %v", err)
	}
}

func TestCleanupUploadsReturnsDeletedCount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/cleanup-uploads" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"message":"Cleaned up 3 files","deleted_count":3}`)
	}))
	defer ts.Close()

	c := New(ts.URL, ts.Client())
	count, err := c.CleanupUploads(context.Background())
	if err != nil {
		t.Fatalf("CleanupUploads() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("unexpected deleted count: %d", count)
	}
}

func TestObserverReceivesStatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"healthy","message":"ok","murf_api_configured":true,"assemblyai_configured":true}`)
	}))
	defer ts.Close()

	var observedEndpoint string
	var observedStatus int
	c := New(ts.URL, ts.Client(), WithObserver(func(endpoint string, status int, _ time.Duration) {
		observedEndpoint = endpoint
		observedStatus = status
	}))

	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if observedEndpoint != "health" {
		t.Errorf("unexpected observed endpoint: %q", observedEndpoint)
	}
	if observedStatus != http.StatusOK {
		t.Errorf("unexpected observed status: %d", observedStatus)
	}
}
