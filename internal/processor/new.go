package processor

import (
	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/generator"
	"github.com/Weerinrada/Dhamma/internal/logger"
	"github.com/Weerinrada/Dhamma/internal/media"
	"github.com/Weerinrada/Dhamma/internal/speech"
)

type implProcessor struct {
	cfg         *config.Config
	normalizer  media.Normalizer
	transcriber speech.Transcriber
	generator   generator.Generator
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, norm media.Normalizer, trans speech.Transcriber, gen generator.Generator, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		normalizer:  norm,
		transcriber: trans,
		generator:   gen,
		logger:      log,
	}
}
