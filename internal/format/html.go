package format

//
// html.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags map tag to list of allowed attributes.
//
//nolint:gochecknoglobals
var allowedTags = map[atom.Atom][]string{
	atom.A:          {"href", "title"},
	atom.B:          nil,
	atom.Blockquote: nil,
	atom.Br:         nil,
	atom.Code:       nil,
	atom.Div:        nil,
	atom.Em:         nil,
	atom.H1:         nil,
	atom.H2:         nil,
	atom.H3:         nil,
	atom.H4:         nil,
	atom.Hr:         nil,
	atom.I:          nil,
	atom.Img:        {"src", "alt", "width", "height"},
	atom.Li:         nil,
	atom.Ol:         nil,
	atom.P:          nil,
	atom.Pre:        nil,
	atom.Span:       nil,
	atom.Strong:     nil,
	atom.U:          nil,
	atom.Ul:         nil,
}

// droppedTags are removed with its content.
//
//nolint:gochecknoglobals
var droppedTags = []atom.Atom{
	atom.Script, atom.Style, atom.Iframe, atom.Object, atom.Embed,
	atom.Noscript, atom.Template, atom.Form, atom.Svg, atom.Math,
}

//nolint:gochecknoglobals
var voidTags = []atom.Atom{atom.Br, atom.Hr, atom.Img}

// SanitizeHTML remove from input all not allowed tags and attributes. Text of
// unknown tags is preserved; content of scripts, styles etc. is removed.
func SanitizeHTML(input string) string {
	var (
		out  strings.Builder
		skip int
	)

	tokenizer := html.NewTokenizer(strings.NewReader(input))

	for {
		ttype := tokenizer.Next()

		switch ttype {
		case html.ErrorToken:
			return out.String()

		case html.TextToken:
			if skip == 0 {
				out.WriteString(html.EscapeString(string(tokenizer.Text())))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()

			if slices.Contains(droppedTags, token.DataAtom) {
				if ttype == html.StartTagToken {
					skip++
				}

				continue
			}

			if skip == 0 {
				writeStartTag(&out, &token)
			}

		case html.EndTagToken:
			token := tokenizer.Token()

			if slices.Contains(droppedTags, token.DataAtom) {
				skip = max(skip-1, 0)

				continue
			}

			if _, ok := allowedTags[token.DataAtom]; ok && skip == 0 && !slices.Contains(voidTags, token.DataAtom) {
				out.WriteString("</" + token.DataAtom.String() + ">")
			}

		case html.CommentToken, html.DoctypeToken:
			// skip
		}
	}
}

func writeStartTag(out *strings.Builder, token *html.Token) {
	attrs, ok := allowedTags[token.DataAtom]
	if !ok {
		return
	}

	out.WriteString("<" + token.DataAtom.String())

	hasLink := false

	for _, attr := range token.Attr {
		if attr.Namespace != "" || !slices.Contains(attrs, attr.Key) {
			continue
		}

		val := strings.TrimSpace(attr.Val)

		if attr.Key == "href" || attr.Key == "src" {
			if !isSafeURL(val) {
				continue
			}

			hasLink = hasLink || attr.Key == "href"
		}

		out.WriteString(" " + attr.Key + `="` + html.EscapeString(val) + `"`)
	}

	if token.DataAtom == atom.A && hasLink {
		out.WriteString(` rel="noopener noreferrer" target="_blank"`)
	}

	out.WriteString(">")
}

func isSafeURL(value string) bool {
	if value == "" {
		return false
	}

	u, err := url.Parse(value)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	default:
		return false
	}
}

// StripHTML return only text from html input; used for summaries.
func StripHTML(input string, maxlen int) string {
	var out strings.Builder

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	skip := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return truncate(strings.Join(strings.Fields(out.String()), " "), maxlen)
		case html.TextToken:
			if skip == 0 {
				out.Write(tokenizer.Text())
				out.WriteByte(' ')
			}
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if slices.Contains(droppedTags, atom.Lookup(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if slices.Contains(droppedTags, atom.Lookup(name)) {
				skip = max(skip-1, 0)
			}
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
		}
	}
}

func truncate(value string, maxlen int) string {
	if maxlen <= 0 {
		return value
	}

	runes := []rune(value)
	if len(runes) <= maxlen {
		return value
	}

	return strings.TrimSpace(string(runes[:maxlen])) + "…"
}
