package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMedia              = errors.New("media processing failed")
	ErrUnsupportedFormat  = errors.New("unsupported media format")
	ErrTranscription      = errors.New("transcription failed")
	ErrNoSpeech           = errors.New("no recognizable speech")
	ErrTranscriptTooShort = errors.New("transcript too short")
	ErrGeneration         = errors.New("post generation failed")
)

// Wrap preserves typed error kinds with operation context.
func Wrap(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
