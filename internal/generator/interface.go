package generator

import (
	"context"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// TextModel is the generative text service boundary.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator turns a confirmed transcript into publishable content.
//
// CreatePost is the only fallible operation; essence and analysis degrade to
// fixed fallback payloads when the service or the reply parsing fails.
type Generator interface {
	CreatePost(ctx context.Context, transcript, category string) (string, error)
	CreateEssence(ctx context.Context, transcript string) domain.EssenceBundle
	ExtractAnalysis(ctx context.Context, transcript string) domain.ContentAnalysis
}
