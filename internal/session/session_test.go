package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Weerinrada/Dhamma/internal/domain"
	"github.com/Weerinrada/Dhamma/internal/logger"
)

func newTestSession() *Session {
	return New(domain.DefaultCategory, logger.New("error"))
}

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSession(t *testing.T) {
	s := newTestSession()
	if s.Stage() != domain.StageUpload {
		t.Errorf("new session stage = %v, want upload", s.Stage())
	}
	if s.ID == "" {
		t.Error("new session must have an ID")
	}
	if s.Initial != nil || s.Final != nil {
		t.Error("new session must carry no results")
	}
}

func TestBeginReview(t *testing.T) {
	s := newTestSession()
	initial := &domain.InitialResult{Transcript: "ธรรมะคือธรรมชาติของความจริง", StartTime: time.Now()}

	if err := s.BeginReview(initial, "/tmp/media", "teaching.mp3"); err != nil {
		t.Fatalf("BeginReview() error = %v", err)
	}

	if s.Stage() != domain.StageTranscriptReview {
		t.Errorf("stage = %v, want transcript_review", s.Stage())
	}
	if s.Initial != initial || s.Final != nil {
		t.Error("review stage must hold InitialResult and no FinalResult")
	}
	if s.UploadedFileName != "teaching.mp3" || s.TempMediaPath != "/tmp/media" {
		t.Error("BeginReview() must record upload bookkeeping")
	}

	// Re-entry is not a legal transition.
	if err := s.BeginReview(initial, "/tmp/other", "other.mp3"); err == nil {
		t.Error("BeginReview() from review stage should fail")
	}
}

func TestCompleteReviewRequiresReviewStage(t *testing.T) {
	s := newTestSession()
	if err := s.CompleteReview(context.Background(), &domain.FinalResult{}); err == nil {
		t.Error("CompleteReview() from upload stage should fail")
	}
	if s.Stage() != domain.StageUpload {
		t.Errorf("failed transition must not move the stage, got %v", s.Stage())
	}
}

func TestCompleteReviewCleansTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	mediaPath := writeTempFile(t, dir, "staged_talk.mp4")
	audioPath := writeTempFile(t, dir, "staged_talk_extracted.wav")
	wavPath := audioPath

	s := newTestSession()
	initial := &domain.InitialResult{
		Transcript:     "เนื้อหาที่ยาวพอสำหรับการทดสอบ",
		AudioPath:      audioPath,
		WAVPath:        wavPath,
		ExtractedAudio: true,
		WasVideo:       true,
		StartTime:      time.Now(),
	}
	if err := s.BeginReview(initial, mediaPath, "talk.mp4"); err != nil {
		t.Fatal(err)
	}

	final := &domain.FinalResult{Transcript: initial.Transcript, Post: "post"}
	if err := s.CompleteReview(ctx, final); err != nil {
		t.Fatalf("CompleteReview() error = %v", err)
	}

	if s.Stage() != domain.StageResult {
		t.Errorf("stage = %v, want result", s.Stage())
	}
	if s.Final != final {
		t.Error("result stage must hold FinalResult")
	}

	for _, path := range []string{mediaPath, audioPath} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("temp file %s should have been deleted", path)
		}
	}
}

func TestResetFromReview(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	mediaPath := writeTempFile(t, dir, "staged_teaching.mp3")
	wavPath := writeTempFile(t, dir, "staged_teaching_converted.wav")

	s := newTestSession()
	initial := &domain.InitialResult{
		Transcript: "เนื้อหาที่ยาวพอสำหรับการทดสอบ",
		AudioPath:  mediaPath,
		WAVPath:    wavPath,
		StartTime:  time.Now(),
	}
	if err := s.BeginReview(initial, mediaPath, "teaching.mp3"); err != nil {
		t.Fatal(err)
	}

	s.Reset(ctx)

	if s.Stage() != domain.StageUpload {
		t.Errorf("stage = %v, want upload", s.Stage())
	}
	if s.Initial != nil || s.Final != nil {
		t.Error("reset must discard results")
	}
	for _, path := range []string{mediaPath, wavPath} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("temp file %s should have been deleted", path)
		}
	}

	// Second reset must tolerate already-missing files.
	s.Reset(ctx)
}

func TestResetFromResult(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	mediaPath := writeTempFile(t, dir, "staged_talk.mp4")
	audioPath := writeTempFile(t, dir, "staged_talk_extracted.wav")

	s := newTestSession()
	initial := &domain.InitialResult{
		Transcript:     "เนื้อหาที่ยาวพอสำหรับการทดสอบ",
		AudioPath:      audioPath,
		WAVPath:        audioPath,
		ExtractedAudio: true,
		WasVideo:       true,
		StartTime:      time.Now(),
	}
	if err := s.BeginReview(initial, mediaPath, "talk.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteReview(ctx, &domain.FinalResult{Transcript: initial.Transcript}); err != nil {
		t.Fatal(err)
	}

	// Temps are already gone after completion; the back-edge must tolerate that.
	s.Reset(ctx)

	if s.Stage() != domain.StageUpload {
		t.Errorf("stage = %v, want upload", s.Stage())
	}
	if s.Initial != nil || s.Final != nil {
		t.Error("reset must discard results")
	}
	if s.TempMediaPath != "" || s.UploadedFileName != "" {
		t.Error("reset must clear upload bookkeeping")
	}
}

func TestResetKeepsNonConvertedWAV(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// A WAV upload is the user's own staged file under the temp media path;
	// no separate converted copy exists to delete.
	mediaPath := writeTempFile(t, dir, "staged_teaching.wav")

	s := newTestSession()
	initial := &domain.InitialResult{
		Transcript: "เนื้อหาที่ยาวพอสำหรับการทดสอบ",
		AudioPath:  mediaPath,
		WAVPath:    mediaPath,
		StartTime:  time.Now(),
	}
	if err := s.BeginReview(initial, mediaPath, "teaching.wav"); err != nil {
		t.Fatal(err)
	}

	s.Reset(ctx)

	if _, err := os.Stat(mediaPath); !os.IsNotExist(err) {
		t.Error("staged media file should have been deleted")
	}
}
