package model

import (
	"testing"
	"time"
)

func TestTranscriptionTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		fileName string
		filePath string
		id       string
		expected string
	}{
		{"meeting.wav", "/tmp/meeting.wav", "task-1", "meeting.wav"},
		{"", "/tmp/audio/notes.mp3", "task-2", "notes.mp3"},
		{"", "C:\\audio\\notes.mp3", "task-3", "notes.mp3"},
		{"", "", "task-4", "task-4"},
	}

	for _, test := range tests {
		task := &TranscriptionTask{
			ID:       test.id,
			FileName: test.fileName,
			FilePath: test.filePath,
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with name='%s', path='%s' = '%s', expected '%s'",
				test.fileName, test.filePath, result, test.expected)
		}
	}
}

func TestTranscriptionTask_GetElapsedString(t *testing.T) {
	started := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		finished time.Time
		expected string
	}{
		{started.Add(30 * time.Second), "00:30"},
		{started.Add(90 * time.Second), "01:30"},
		{started.Add(3661 * time.Second), "01:01:01"},
	}

	for _, test := range tests {
		task := &TranscriptionTask{StartedAt: started, FinishedAt: test.finished}
		result := task.GetElapsedString()
		if result != test.expected {
			t.Errorf("GetElapsedString() = %s, expected %s", result, test.expected)
		}
	}

	// Task that never started
	task := &TranscriptionTask{}
	if task.GetElapsedString() != "—" {
		t.Errorf("GetElapsedString() for unstarted task = %s, expected —", task.GetElapsedString())
	}
}

func TestTranscriptionTask_HasTranscript(t *testing.T) {
	tests := []struct {
		status     TaskStatus
		transcript string
		expected   bool
	}{
		{TaskStatusCompleted, "hello world", true},
		{TaskStatusCompleted, "", false},
		{TaskStatusRunning, "hello world", false},
		{TaskStatusError, "", false},
	}

	for _, test := range tests {
		task := &TranscriptionTask{Status: test.status, Transcript: test.transcript}
		if task.HasTranscript() != test.expected {
			t.Errorf("HasTranscript() with status=%s, transcript='%s' = %v, expected %v",
				test.status, test.transcript, task.HasTranscript(), test.expected)
		}
	}
}

func TestSpeechTask_TrimmedText(t *testing.T) {
	task := &SpeechTask{Text: "  hello  \n"}
	if task.TrimmedText() != "hello" {
		t.Errorf("TrimmedText() = '%s', expected 'hello'", task.TrimmedText())
	}
}
