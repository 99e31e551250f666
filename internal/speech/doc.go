package speech

// Package speech manages text-to-speech generation requests. Text is
// validated locally before any network call; generated audio is referenced by
// the URL the backend returns.
