package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"newlines collapse", "line one\r\nline two\n\tthree", "line one line two three"},
		{"html", "<html><body><div>Dear &amp; near</div></body></html>", "Dear & near"},
		{"rtf", `{\rtf1\ansi Hello \b bold\b0  text}`, "Hello bold text"},
		{"control characters", "a\x00b\x07c", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanClipboardText(tt.input))
		})
	}
}

func TestIsHTML(t *testing.T) {
	assert.True(t, isHTML("  <div>x</div>"))
	assert.False(t, isHTML("a < b"))
	assert.False(t, isHTML("<b>bold</b>"))
}
