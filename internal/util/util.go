package util

import (
	"crypto/sha256"
	"fmt"
	"mime"
	"strings"
)

// ContentChecksum returns the hex SHA256 digest of data.
func ContentChecksum(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// ImageExtension returns the file extension for an image content type, without the dot.
func ImageExtension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "bin"
	}

	switch mediaType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	}

	if sub, ok := strings.CutPrefix(mediaType, "image/"); ok && sub != "" {
		return sub
	}

	return "bin"
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
