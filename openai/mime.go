package openai

import (
	"path/filepath"
	"strings"
)

// GuessMimeType maps a file's extension to a content type. The match is
// case-insensitive and total: anything unrecognized (or extension-less) maps
// to application/octet-stream.
func GuessMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	// Images
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"

	// Video
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"

	// Audio
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	case ".m4a":
		return "audio/mp4"

	// Text / data
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	case ".vtt":
		return "text/vtt"
	}
	return "application/octet-stream"
}
