package generator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"moa_diary/diary"
	"moa_diary/media"
)

var ErrGeneration = errors.New("AI generation failed")

// MediaMaterializer resolves image references on records to bytes.
type MediaMaterializer interface {
	Materialize(ctx context.Context, records []diary.Record) ([]media.Asset, error)
}

// Agent runs one request through normalize, materialize, assemble and complete.
type Agent struct {
	llm    LLMClient
	media  MediaMaterializer
	logger *zap.Logger
}

func NewAgent(llm LLMClient, mat MediaMaterializer, logger *zap.Logger) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if mat == nil {
		return nil, errors.New("media materializer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{llm: llm, media: mat, logger: logger}, nil
}

// Generate validates req and produces a diary. Validation failures wrap
// diary.ErrInvalidRequest; everything after that wraps ErrGeneration.
func (a *Agent) Generate(ctx context.Context, req diary.Request) (Diary, error) {
	if err := req.Validate(); err != nil {
		return Diary{}, err
	}
	records, err := diary.Normalize(req.Items)
	if err != nil {
		return Diary{}, fmt.Errorf("%w: %w", diary.ErrInvalidRequest, err)
	}

	assets, err := a.media.Materialize(ctx, records)
	if err != nil {
		return Diary{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	persona := Persona(req.Persona)
	prompt, hasContent := BuildPrompt(persona, records, assets)
	a.logger.Debug("prompt assembled",
		zap.Int("records", len(records)),
		zap.Int("fragments", len(prompt.Fragments)),
		zap.Bool("has_content", hasContent),
		zap.Stringer("persona", persona))

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Diary{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	out, err := PostProcess(raw)
	if err != nil {
		return Diary{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return out, nil
}
