package processor

import (
	"context"

	"github.com/Weerinrada/Dhamma/internal/session"
)

// Processor drives a session through the pipeline stages.
type Processor interface {
	// Ingest runs normalize + transcribe on a staged media file and, on
	// success, moves the session to transcript review. On failure the session
	// stays at upload and all temp files are removed.
	Ingest(ctx context.Context, sess *session.Session, mediaPath, fileName string) error

	// Confirm runs content generation against the reviewed transcript and, on
	// success, moves the session to result. On failure the session stays at
	// transcript review so the user can retry without re-uploading.
	Confirm(ctx context.Context, sess *session.Session) error

	// Reset returns the session to upload, discarding results and temp files.
	Reset(ctx context.Context, sess *session.Session)
}
