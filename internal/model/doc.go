package model

// Package model defines domain data structures used across the app:
// transcription tasks, capture sessions, speech generation tasks, and status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
