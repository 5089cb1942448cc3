package processor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Weerinrada/Dhamma/internal/domain"
	"github.com/Weerinrada/Dhamma/internal/media"
	"github.com/Weerinrada/Dhamma/internal/session"
)

// Ingest orchestrates Upload -> TranscriptReview: classify, probe, extract,
// normalize, transcribe, length gate. Any failure removes the files created so
// far and leaves the session untouched at the upload stage.
func (p *implProcessor) Ingest(ctx context.Context, sess *session.Session, mediaPath, fileName string) error {
	if sess.Stage() != domain.StageUpload {
		return fmt.Errorf("cannot ingest from stage %s", sess.Stage())
	}

	startTime := time.Now()

	p.logger.Info(ctx, "Starting ingestion: %s (session %s)", fileName, sess.ID)

	kind, err := media.Classify(fileName)
	if err != nil {
		p.removeIfExists(ctx, mediaPath)
		return err
	}

	audioPath := mediaPath
	extracted := false

	if kind == media.KindVideo {
		info, err := p.normalizer.Probe(ctx, mediaPath)
		if err != nil {
			p.removeIfExists(ctx, mediaPath)
			return err
		}

		p.logger.Info(ctx, "Video info: %.1fs, %dx%d, audio=%t",
			info.Duration.Seconds(), info.Width, info.Height, info.HasAudio)

		if !info.HasAudio {
			p.removeIfExists(ctx, mediaPath)
			return fmt.Errorf("%w: video has no audio track", domain.ErrMedia)
		}

		audioPath, err = p.normalizer.ExtractAudio(ctx, mediaPath)
		if err != nil {
			p.removeIfExists(ctx, mediaPath)
			return err
		}
		extracted = true
	}

	wavPath, err := p.normalizer.NormalizeWAV(ctx, audioPath)
	if err != nil {
		p.removeIfExists(ctx, mediaPath)
		if extracted {
			p.removeIfExists(ctx, audioPath)
		}
		return err
	}

	transcript, err := p.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		p.cleanupIngestFiles(ctx, mediaPath, audioPath, wavPath, extracted)
		return err
	}

	transcript = strings.TrimSpace(transcript)
	if len([]rune(transcript)) < p.cfg.Pipeline.MinTranscriptChars {
		p.cleanupIngestFiles(ctx, mediaPath, audioPath, wavPath, extracted)
		return domain.Wrap(domain.ErrTranscription, "validate transcript", domain.ErrTranscriptTooShort)
	}

	initial := &domain.InitialResult{
		Transcript:     transcript,
		AudioPath:      audioPath,
		WAVPath:        wavPath,
		ExtractedAudio: extracted,
		WasVideo:       kind == media.KindVideo,
		StartTime:      startTime,
	}

	if err := sess.BeginReview(initial, mediaPath, fileName); err != nil {
		return err
	}

	p.logger.Info(ctx, "Transcript ready for review: %d chars (session %s)",
		len([]rune(transcript)), sess.ID)
	return nil
}

func (p *implProcessor) cleanupIngestFiles(ctx context.Context, mediaPath, audioPath, wavPath string, extracted bool) {
	p.removeIfExists(ctx, mediaPath)
	if extracted {
		p.removeIfExists(ctx, audioPath)
	}
	if strings.HasSuffix(wavPath, "_converted.wav") {
		p.removeIfExists(ctx, wavPath)
	}
}

func (p *implProcessor) removeIfExists(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}
