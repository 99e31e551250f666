package model

import (
	"testing"
	"time"
)

func TestCaptureSession_IsFinalized(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		path     string
		expected bool
	}{
		{TaskStatusCompleted, "/tmp/capture.wav", true},
		{TaskStatusCompleted, "", false},
		{TaskStatusRunning, "/tmp/capture.wav", false},
		{TaskStatusError, "", false},
	}

	for _, test := range tests {
		session := &CaptureSession{Status: test.status, OutputPath: test.path}
		if session.IsFinalized() != test.expected {
			t.Errorf("IsFinalized() with status=%s, path='%s' = %v, expected %v",
				test.status, test.path, session.IsFinalized(), test.expected)
		}
	}
}

func TestCaptureSession_GetDurationString(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00"},
		{5 * time.Second, "00:05"},
		{90 * time.Second, "01:30"},
		{10 * time.Minute, "10:00"},
	}

	for _, test := range tests {
		session := &CaptureSession{Duration: test.duration}
		result := session.GetDurationString()
		if result != test.expected {
			t.Errorf("GetDurationString() with %v = %s, expected %s", test.duration, result, test.expected)
		}
	}
}

func TestCaptureSession_GetSizeString(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, test := range tests {
		session := &CaptureSession{Size: test.size}
		result := session.GetSizeString()
		if result != test.expected {
			t.Errorf("GetSizeString() with %d = %s, expected %s", test.size, result, test.expected)
		}
	}
}
