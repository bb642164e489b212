package media

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"moa_diary/diary"
)

const DefaultConcurrency = 4

// Asset is the prompt-ready image for records[Index].
type Asset struct {
	Index    int
	Data     []byte
	MIMEType string
}

// Options tunes a Materializer. Zero values fall back to defaults.
type Options struct {
	MaxWidth    int
	Quality     int
	MaxPixels   int64
	Concurrency int
}

// Materializer turns image references on records into JPEG bytes.
type Materializer struct {
	fetcher *Fetcher
	opts    Options
	logger  *zap.Logger
}

func NewMaterializer(fetcher *Fetcher, opts Options, logger *zap.Logger) *Materializer {
	if fetcher == nil {
		fetcher = NewFetcher(nil, 0, 0)
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = DefaultMaxPixels
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Materializer{fetcher: fetcher, opts: opts, logger: logger}
}

// Materialize downloads every referenced image and returns the assets in
// record order. A failed download aborts the whole call; an image that cannot
// be decoded is skipped so the record falls back to its text.
func (m *Materializer) Materialize(ctx context.Context, records []diary.Record) ([]Asset, error) {
	slots := make([]*Asset, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Concurrency)
	for i, rec := range records {
		if rec.ImageURL == "" {
			continue
		}
		g.Go(func() error {
			raw, err := m.fetcher.Fetch(gctx, rec.ImageURL)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			data, err := Compress(raw, m.opts.MaxWidth, m.opts.Quality, m.opts.MaxPixels)
			if err != nil {
				m.logger.Warn("skipping undecodable image",
					zap.Int("record", i),
					zap.Int("bytes", len(raw)),
					zap.Error(err))
				return nil
			}
			slots[i] = &Asset{Index: i, Data: data, MIMEType: MIMEJPEG}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assets := make([]Asset, 0, len(records))
	for _, a := range slots {
		if a != nil {
			assets = append(assets, *a)
		}
	}
	m.logger.Debug("media materialized", zap.Int("records", len(records)), zap.Int("assets", len(assets)))
	return assets, nil
}
