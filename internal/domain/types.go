package domain

import "time"

// Stage identifies where a session currently sits in the pipeline.
type Stage int

const (
	StageUpload Stage = iota
	StageTranscriptReview
	StageResult
)

func (s Stage) String() string {
	switch s {
	case StageUpload:
		return "upload"
	case StageTranscriptReview:
		return "transcript_review"
	case StageResult:
		return "result"
	default:
		return "unknown"
	}
}

// InitialResult is produced by ingestion (normalize + transcribe) and carried
// through the review gate.
type InitialResult struct {
	Transcript     string
	AudioPath      string
	WAVPath        string
	ExtractedAudio bool
	WasVideo       bool
	StartTime      time.Time
}

// FinalResult is the terminal artifact of the pipeline. Immutable once built.
type FinalResult struct {
	Transcript     string
	Post           string
	Keywords       []string
	MainTeaching   string
	Emotion        string
	Headline       string
	Essence        [3]string
	Quote          string
	ProcessingTime time.Duration
	WasVideo       bool
}

// EssenceBundle is the structured reply of the essence generation call.
type EssenceBundle struct {
	Headline string
	Essence  [3]string
	Quote    string
}

// ContentAnalysis is the structured reply of the keyword/analysis call.
type ContentAnalysis struct {
	Keywords     []string
	MainTeaching string
	Emotion      string
}
