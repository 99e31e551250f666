package api

// Package api implements the typed HTTP client for the Voice Agents backend:
// health checks, speech generation, audio upload, file transcription, and the
// uploads cleanup maintenance call. All methods take a context and surface
// non-success responses as typed errors.
