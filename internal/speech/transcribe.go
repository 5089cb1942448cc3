package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// segment is one fixed-length slice of a long recording.
type segment struct {
	start  time.Duration
	length time.Duration
}

// Transcribe recognizes a normalized WAV file. Recordings at or under the
// single-shot threshold go to the service whole; longer ones are cut into
// consecutive segments whose successful results are joined with a space.
func (t *implTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	duration, err := t.normalizer.AudioDuration(ctx, wavPath)
	if err != nil {
		return "", domain.Wrap(domain.ErrTranscription, "measure audio", err)
	}

	singleShotMax := time.Duration(t.cfg.SingleShotMaxSecs) * time.Second
	if duration <= singleShotMax {
		return t.transcribeWhole(ctx, wavPath)
	}

	return t.transcribeSegments(ctx, wavPath, duration)
}

func (t *implTranscriber) transcribeWhole(ctx context.Context, wavPath string) (string, error) {
	t.logger.Info(ctx, "Transcribing in a single call: %s", wavPath)

	text, err := t.recognizer.Recognize(ctx, wavPath)
	if err != nil {
		if domain.IsKind(err, domain.ErrNoSpeech) {
			return "", domain.Wrap(domain.ErrTranscription, "recognize speech", err)
		}
		return "", domain.Wrap(domain.ErrTranscription, "speech service", err)
	}

	return strings.TrimSpace(text), nil
}

func (t *implTranscriber) transcribeSegments(ctx context.Context, wavPath string, total time.Duration) (string, error) {
	segmentLen := time.Duration(t.cfg.SegmentSeconds) * time.Second
	segments := planSegments(total, segmentLen)

	t.logger.Info(ctx, "Transcribing %s in %d segments of up to %s",
		wavPath, len(segments), segmentLen)

	var parts []string
	for i, seg := range segments {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", domain.Wrap(domain.ErrTranscription, "wait for rate limit", err)
		}

		t.logger.Info(ctx, "Processing segment %d/%d", i+1, len(segments))

		chunkPath, err := t.cutSegment(ctx, wavPath, i, seg)
		if err != nil {
			t.logger.Warn(ctx, "Skipping segment %d: %v", i+1, err)
			continue
		}

		text, err := t.recognizer.Recognize(ctx, chunkPath)
		os.Remove(chunkPath)

		if err != nil {
			// Silence in a segment contributes nothing; anything else is
			// worth a warning but never fatal to the whole transcript.
			if !domain.IsKind(err, domain.ErrNoSpeech) {
				t.logger.Warn(ctx, "Skipping segment %d: %v", i+1, err)
			}
			continue
		}

		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

// cutSegment writes one segment of the source WAV next to it, named after the
// source so concurrent sessions cannot collide.
func (t *implTranscriber) cutSegment(ctx context.Context, wavPath string, index int, seg segment) (string, error) {
	chunkPath := fmt.Sprintf("%s_chunk_%d.wav",
		strings.TrimSuffix(wavPath, filepath.Ext(wavPath)), index)

	args := []string{
		"-i", wavPath,
		"-ss", fmt.Sprintf("%.3f", seg.start.Seconds()),
		"-t", fmt.Sprintf("%.3f", seg.length.Seconds()),
		"-c:a", "pcm_s16le",
		"-y",
		chunkPath,
	}

	if _, err := t.executor.Execute(ctx, t.ffmpeg.Binary, args...); err != nil {
		return "", fmt.Errorf("cut segment: %w", err)
	}

	return chunkPath, nil
}

// planSegments slices a recording into consecutive fixed-length segments; the
// last one covers whatever remains.
func planSegments(total, segmentLen time.Duration) []segment {
	var segments []segment
	for start := time.Duration(0); start < total; start += segmentLen {
		length := segmentLen
		if remaining := total - start; remaining < length {
			length = remaining
		}
		segments = append(segments, segment{start: start, length: length})
	}
	return segments
}
