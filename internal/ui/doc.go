package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the capture, transcription, and speech services
// and renders backend status, tasks, and settings. All UI strings are localized
// via Localization.
