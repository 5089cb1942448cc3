package media

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// ExtractAudio demuxes the first audio stream of a video container and decodes
// it to mono 16kHz PCM WAV, the format the recognizer expects.
func (n *implNormalizer) ExtractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_extracted.wav"

	n.logger.Info(ctx, "Extracting audio from video: %s", videoPath)

	// -vn: drop video
	// -ar 16000 / -ac 1 / pcm_s16le: recognizer input format
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := n.executor.Execute(ctx, n.cfg.Binary, args...); err != nil {
		return "", domain.Wrap(domain.ErrMedia, "extract audio", err)
	}

	n.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}

// NormalizeWAV converts an arbitrary audio file to mono 16kHz WAV. WAV input
// is passed through untouched; no new file is written for it.
func (n *implNormalizer) NormalizeWAV(ctx context.Context, audioPath string) (string, error) {
	if strings.ToLower(filepath.Ext(audioPath)) == ".wav" {
		return audioPath, nil
	}

	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_converted.wav"

	n.logger.Info(ctx, "Converting audio to WAV: %s", audioPath)

	args := []string{
		"-i", audioPath,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := n.executor.Execute(ctx, n.cfg.Binary, args...); err != nil {
		return "", domain.Wrap(domain.ErrMedia, "convert to wav", err)
	}

	return wavPath, nil
}
