package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "photo limit", bytes: 10 * 1024 * 1024, expected: "10.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestContentChecksum(t *testing.T) {
	t.Parallel()

	got := ContentChecksum([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("ContentChecksum(abc) = %s, want %s", got, want)
	}
}

func TestImageExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		expected    string
	}{
		{contentType: "image/jpeg", expected: "jpg"},
		{contentType: "image/png; charset=binary", expected: "png"},
		{contentType: "image/avif", expected: "avif"},
		{contentType: "application/pdf", expected: "bin"},
		{contentType: "", expected: "bin"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			if got := ImageExtension(tt.contentType); got != tt.expected {
				t.Fatalf("ImageExtension(%q) = %s, want %s", tt.contentType, got, tt.expected)
			}
		})
	}
}
