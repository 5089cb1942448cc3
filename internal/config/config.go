package config

import "fmt"

type Config struct {
	Speech   SpeechConfig   `yaml:"speech"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

type SpeechConfig struct {
	Endpoint           string `yaml:"endpoint"`
	Language           string `yaml:"language"`
	SegmentSeconds     int    `yaml:"segment_seconds"`
	SingleShotMaxSecs  int    `yaml:"single_shot_max_seconds"`
	SegmentDelayMs     int    `yaml:"segment_delay_ms"`
	RequestTimeoutSecs int    `yaml:"request_timeout_seconds"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type FFmpegConfig struct {
	Binary      string `yaml:"binary"`
	ProbeBinary string `yaml:"probe_binary"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PipelineConfig struct {
	MinTranscriptChars int    `yaml:"min_transcript_chars"`
	MaxConcurrent      int    `yaml:"max_concurrent"`
	DefaultCategory    string `yaml:"default_category"`
}

func (c *Config) Validate() error {
	if c.Speech.Language == "" {
		return fmt.Errorf("speech.language is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.Temp == "" {
		return fmt.Errorf("paths.temp is required")
	}

	if c.Speech.Endpoint == "" {
		c.Speech.Endpoint = "http://www.google.com/speech-api/v2/recognize"
	}
	if c.Speech.SegmentSeconds == 0 {
		c.Speech.SegmentSeconds = 30
	}
	if c.Speech.SingleShotMaxSecs == 0 {
		c.Speech.SingleShotMaxSecs = 60
	}
	if c.Speech.SegmentDelayMs == 0 {
		c.Speech.SegmentDelayMs = 500
	}
	if c.Speech.RequestTimeoutSecs == 0 {
		c.Speech.RequestTimeoutSecs = 30
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = "ffprobe"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Pipeline.MinTranscriptChars == 0 {
		c.Pipeline.MinTranscriptChars = 20
	}
	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 2
	}
	if c.Pipeline.DefaultCategory == "" {
		c.Pipeline.DefaultCategory = "ธรรมะทั่วไป"
	}

	return nil
}
