package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconRecord   = "⏺"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconOK       = "✅"
	IconLanguage = "🌐"
	IconMic      = "🎤"
	IconSpeaker  = "🔊"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (TranscriptRow / lists)
const (
	StatusLabelWidth  float32 = 96
	ElapsedLabelWidth float32 = 56

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 72
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Modal dialog sizing
const (
	ModalMinWidth  float32 = 360
	ModalMinHeight float32 = 140
)

// Health check behavior
const (
	HealthCheckTimeout = 10 * time.Second
)
