package speech

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/logger"
	"github.com/Weerinrada/Dhamma/internal/media"
	"github.com/Weerinrada/Dhamma/pkg/executor"
)

type implTranscriber struct {
	cfg        config.SpeechConfig
	ffmpeg     config.FFmpegConfig
	executor   executor.Executor
	normalizer media.Normalizer
	recognizer Recognizer
	logger     logger.Logger
	limiter    *rate.Limiter
}

// New creates a Transcriber that paces per-segment recognition calls to
// respect the speech service's rate limits.
func New(cfg *config.Config, exec executor.Executor, norm media.Normalizer, rec Recognizer, log logger.Logger) Transcriber {
	delay := time.Duration(cfg.Speech.SegmentDelayMs) * time.Millisecond

	return &implTranscriber{
		cfg:        cfg.Speech,
		ffmpeg:     cfg.FFmpeg,
		executor:   exec,
		normalizer: norm,
		recognizer: rec,
		logger:     log,
		limiter:    rate.NewLimiter(rate.Every(delay), 1),
	}
}
