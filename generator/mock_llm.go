package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is an offline stand-in for local debugging; it never calls a model.
// It echoes the text fragments and notes where images were attached.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("# 오늘의 일기\n\n")
	images := 0
	for _, f := range prompt.Fragments {
		switch {
		case f.Image != nil:
			images++
			fmt.Fprintf(&sb, "- [사진 %d]\n", images)
		case f.Text == EventStart || f.Text == EventEnd:
		default:
			sb.WriteString("- ")
			sb.WriteString(f.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
