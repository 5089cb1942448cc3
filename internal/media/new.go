package media

import (
	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/logger"
	"github.com/Weerinrada/Dhamma/pkg/executor"
)

type implNormalizer struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Normalizer instance
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
