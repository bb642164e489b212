package generator

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
)

// PostProcess trims model output and renders it to HTML. Empty output is an
// error.
func PostProcess(raw string) (Diary, error) {
	text := strings.TrimSpace(stripFence(raw))
	if text == "" {
		return Diary{}, errors.New("model returned empty diary")
	}

	html, err := mdToHTML(text)
	if err != nil {
		return Diary{}, err
	}
	return Diary{Text: text, HTML: html}, nil
}

// stripFence removes a single ``` wrapper some models put around the whole answer.
func stripFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") || !strings.HasSuffix(t, "```") || len(t) < 6 {
		return s
	}
	t = strings.TrimSuffix(strings.TrimPrefix(t, "```"), "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 && isInfoString(t[:nl]) {
		t = t[nl+1:]
	}
	return t
}

// isInfoString reports whether s is a lowercase ASCII fence language tag such
// as "markdown", "md" or "text". Empty counts.
func isInfoString(s string) bool {
	s = strings.TrimRight(s, "\r")
	if len(s) > 20 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_', c == '+', c == '.':
		default:
			return false
		}
	}
	return true
}

func mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
