package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Weerinrada/Dhamma/internal/domain"
	"github.com/Weerinrada/Dhamma/internal/logger"
)

// Session is the per-user pipeline record. One session per file being
// processed; sessions are never shared across goroutines.
//
// Invariants: Initial is set iff the stage is TranscriptReview or Result;
// Final is set iff the stage is Result.
type Session struct {
	ID               string
	UploadedFileName string
	TempMediaPath    string
	Category         string

	stage   domain.Stage
	Initial *domain.InitialResult
	Final   *domain.FinalResult

	logger logger.Logger
}

// New creates a session at the upload stage.
func New(category string, log logger.Logger) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Category: category,
		stage:    domain.StageUpload,
		logger:   log,
	}
}

func (s *Session) Stage() domain.Stage {
	return s.stage
}

// BeginReview moves Upload -> TranscriptReview after a successful ingestion,
// storing the ingestion result and the temp bookkeeping needed later.
func (s *Session) BeginReview(initial *domain.InitialResult, tempMediaPath, fileName string) error {
	if s.stage != domain.StageUpload {
		return fmt.Errorf("cannot begin review from stage %s", s.stage)
	}

	s.Initial = initial
	s.Final = nil
	s.TempMediaPath = tempMediaPath
	s.UploadedFileName = fileName
	s.stage = domain.StageTranscriptReview
	return nil
}

// CompleteReview moves TranscriptReview -> Result after content generation
// succeeded, deleting the temp files the result no longer needs.
func (s *Session) CompleteReview(ctx context.Context, final *domain.FinalResult) error {
	if s.stage != domain.StageTranscriptReview {
		return fmt.Errorf("cannot complete review from stage %s", s.stage)
	}

	s.cleanupTempFiles(ctx)
	s.Final = final
	s.stage = domain.StageResult
	return nil
}

// Reset is the back-edge to Upload from any stage: discard results, delete
// whatever temp files still exist.
func (s *Session) Reset(ctx context.Context) {
	s.cleanupTempFiles(ctx)
	s.Initial = nil
	s.Final = nil
	s.TempMediaPath = ""
	s.UploadedFileName = ""
	s.stage = domain.StageUpload
}
