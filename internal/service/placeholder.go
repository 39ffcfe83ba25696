package service

import (
	"fmt"
	"strconv"
)

// Placeholder image bounds
const (
	DefaultPlaceholderWidth  = 400
	DefaultPlaceholderHeight = 300
	MaxPlaceholderDimension  = 4000
)

// PlaceholderDimension parses one path segment of the placeholder route.
// Empty, non-numeric and non-positive values yield def; large values are
// clamped to MaxPlaceholderDimension.
func PlaceholderDimension(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > MaxPlaceholderDimension {
		return MaxPlaceholderDimension
	}
	return n
}

// RenderPlaceholder draws a grey box with its size centred as text
func RenderPlaceholder(width, height int) []byte {
	fontSize := min(width, height) / 10
	if fontSize < 10 {
		fontSize = 10
	}

	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#f3f4f6"/>`+
			`<text x="50%%" y="50%%" font-family="system-ui, sans-serif" font-size="%d" fill="#9ca3af" text-anchor="middle" dominant-baseline="middle">%dx%d</text>`+
			`</svg>`,
		width, height, width, height, fontSize, width, height,
	))
}
