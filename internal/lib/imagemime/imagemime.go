package imagemime

import "strings"

// IsValidImageType reports whether the content type is on the upload
// allow-list.
func IsValidImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/svg+xml",
		"image/x-icon",
		"image/bmp":
		return true
	}
	return false
}

// ValidateFilename rejects empty, oversized and NUL-containing names.
func ValidateFilename(filename string) bool {
	return filename != "" && len(filename) <= 255 && !strings.ContainsRune(filename, 0)
}

// FileExtension returns the part after the last dot; the whole name if
// there is none.
func FileExtension(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx >= 0 {
		return filename[idx+1:]
	}
	return filename
}
