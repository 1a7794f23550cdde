package format

//
// html_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/assert"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Hello <b>world</b></p>", "<p>Hello <b>world</b></p>"},
		{"<p>a</p><script>alert(1)</script><p>b</p>", "<p>a</p><p>b</p>"},
		{"<style>p {}</style>x", "x"},
		{`<p onclick="x()">t</p>`, "<p>t</p>"},
		{`<a href="javascript:alert(1)">t</a>`, "<a>t</a>"},
		{
			`<a href="https://example.com/?a=1&amp;b=2" class="x">t</a>`,
			`<a href="https://example.com/?a=1&amp;b=2" rel="noopener noreferrer" target="_blank">t</a>`,
		},
		{"<custom>kept <i>text</i></custom>", "kept <i>text</i>"},
		{"a<br/>b<br>c", "a<br>b<br>c"},
		{`<img src="https://example.com/a.png" onerror="x">`, `<img src="https://example.com/a.png">`},
		{"<!-- comment -->1 &lt; 2", "1 &lt; 2"},
		{"<iframe src='x'><p>inner</p></iframe>after", "after"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt), func(t *testing.T) {
			assert.Equal(t, SanitizeHTML(tt.input), tt.expected)
		})
	}
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, StripHTML("<p>Hello\n <b>world</b></p><script>x()</script>", 0), "Hello world")
	assert.Equal(t, StripHTML("<p>abcdef</p>", 3), "abc…")
	assert.Equal(t, StripHTML("<p>abc</p>", 3), "abc")
}
