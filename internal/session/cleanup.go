package session

import (
	"context"
	"os"
	"strings"
)

// cleanupTempFiles reconciles temp-file existence at a transition boundary.
// It is idempotent: files may or may not exist, and deletion failures are
// never escalated.
func (s *Session) cleanupTempFiles(ctx context.Context) {
	s.removeIfExists(ctx, s.TempMediaPath)

	if s.Initial == nil {
		return
	}

	if s.Initial.ExtractedAudio {
		s.removeIfExists(ctx, s.Initial.AudioPath)
	}
	if strings.HasSuffix(s.Initial.WAVPath, "_converted.wav") {
		s.removeIfExists(ctx, s.Initial.WAVPath)
	}
}

func (s *Session) removeIfExists(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		s.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		s.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
