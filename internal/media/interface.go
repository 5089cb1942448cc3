package media

import (
	"context"
	"time"
)

// Info describes a probed media container.
type Info struct {
	Duration time.Duration
	Width    int
	Height   int
	HasAudio bool
}

// Normalizer turns arbitrary uploaded media into mono 16kHz WAV suitable for
// speech recognition. It never deletes intermediate files; temp-file lifecycle
// belongs to the session.
type Normalizer interface {
	Probe(ctx context.Context, path string) (Info, error)
	ExtractAudio(ctx context.Context, videoPath string) (string, error)
	NormalizeWAV(ctx context.Context, audioPath string) (string, error)
	AudioDuration(ctx context.Context, path string) (time.Duration, error)
}
