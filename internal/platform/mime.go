package platform

import (
	"path/filepath"
	"strings"
)

// MaxUploadSize mirrors the backend's upload size cap (50 MiB); larger files
// are rejected before any request is made
const MaxUploadSize = 50 * 1024 * 1024

// audioMIMETypes maps audio file extensions to the MIME types the backend
// accepts for upload and transcription
var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".mpeg": "audio/mpeg",
	".mp4":  "audio/mp4",
	".m4a":  "audio/mp4",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",
}

// DetectAudioMIME returns the MIME type for an audio file based on its
// extension. The second return is false when the file is not a supported
// audio type.
func DetectAudioMIME(filePath string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filePath))
	mimeType, ok := audioMIMETypes[ext]
	return mimeType, ok
}

// IsAudioFile reports whether the file's declared type is a supported audio type
func IsAudioFile(filePath string) bool {
	_, ok := DetectAudioMIME(filePath)
	return ok
}

// AudioExtensions returns the supported audio file extensions, with the dot,
// in no particular order
func AudioExtensions() []string {
	exts := make([]string, 0, len(audioMIMETypes))
	for ext := range audioMIMETypes {
		exts = append(exts, ext)
	}
	return exts
}
