package speech

import "context"

// Recognizer converts one WAV file into recognized text. Implementations
// return domain.ErrNoSpeech when the service finds nothing recognizable.
type Recognizer interface {
	Recognize(ctx context.Context, wavPath string) (string, error)
}

// Transcriber produces a full transcript for a normalized WAV file, splitting
// long recordings into fixed-size segments.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
