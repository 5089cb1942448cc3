package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/Weerinrada/Dhamma/internal/domain"
	"github.com/Weerinrada/Dhamma/internal/session"
)

// Confirm orchestrates TranscriptReview -> Result: analysis, post, essence.
// Post generation is the only call that can fail; in that case the session
// keeps its transcript and temp files so confirmation can be retried.
func (p *implProcessor) Confirm(ctx context.Context, sess *session.Session) error {
	if sess.Stage() != domain.StageTranscriptReview {
		return fmt.Errorf("cannot confirm from stage %s", sess.Stage())
	}

	initial := sess.Initial

	p.logger.Info(ctx, "Generating content (session %s)", sess.ID)

	analysis := p.generator.ExtractAnalysis(ctx, initial.Transcript)

	post, err := p.generator.CreatePost(ctx, initial.Transcript, sess.Category)
	if err != nil {
		return err
	}

	essence := p.generator.CreateEssence(ctx, initial.Transcript)

	final := &domain.FinalResult{
		Transcript:     initial.Transcript,
		Post:           post,
		Keywords:       analysis.Keywords,
		MainTeaching:   analysis.MainTeaching,
		Emotion:        analysis.Emotion,
		Headline:       essence.Headline,
		Essence:        essence.Essence,
		Quote:          essence.Quote,
		ProcessingTime: time.Since(initial.StartTime),
		WasVideo:       initial.WasVideo,
	}

	if err := sess.CompleteReview(ctx, final); err != nil {
		return err
	}

	p.logger.Info(ctx, "Content generated in %.2fs (session %s)",
		final.ProcessingTime.Seconds(), sess.ID)
	return nil
}

// Reset returns the session to the upload stage.
func (p *implProcessor) Reset(ctx context.Context, sess *session.Session) {
	p.logger.Info(ctx, "Resetting session %s", sess.ID)
	sess.Reset(ctx)
}
