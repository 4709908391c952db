package main

import "testing"

func TestThumbnailPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"output/render.png", "output/render_thumb.png"},
		{"render_20240101_120000.bmp", "render_20240101_120000_thumb.bmp"},
		{"noext", "noext_thumb"},
	}

	for _, tt := range tests {
		if got := thumbnailPath(tt.input); got != tt.expected {
			t.Errorf("thumbnailPath(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
