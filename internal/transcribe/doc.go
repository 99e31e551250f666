package transcribe

// Package transcribe manages file transcription tasks. Files are validated
// locally (audio type, size limit) before any network call, then sent to the
// backend one goroutine per task with a bounded number of parallel uploads.
