package catalog

import (
	"context"
	"net/url"

	"github.com/nvmw/nvmw/src/internal/ui"
)

// FallbackSource tries a primary source (usually a mirror) and falls back
// to a second one on any error.
type FallbackSource struct {
	primary  Source
	fallback Source
}

// NewFallbackSource creates a Source that tries primary first, then
// fallback if primary fails.
func NewFallbackSource(primary, fallback Source) *FallbackSource {
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
	}
}

// Fetch returns the primary result, or the fallback result on failure.
func (s *FallbackSource) Fetch(ctx context.Context, proxyURL *url.URL) ([]Entry, error) {
	entries, err := s.primary.Fetch(ctx, proxyURL)
	if err == nil {
		return entries, nil
	}

	ui.Debug("Primary release index failed: %v, falling back", err)

	if ctx.Err() != nil {
		return nil, err
	}
	return s.fallback.Fetch(ctx, proxyURL)
}
