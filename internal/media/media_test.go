package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/domain"
	"github.com/Weerinrada/Dhamma/internal/logger"
)

type mockExecutor struct {
	ExecuteFunc func(ctx context.Context, name string, args ...string) (string, error)
}

func (m *mockExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return m.ExecuteFunc(ctx, name, args...)
}

func newTestNormalizer(exec *mockExecutor) Normalizer {
	cfg := config.FFmpegConfig{Binary: "ffmpeg", ProbeBinary: "ffprobe"}
	return New(cfg, exec, logger.New("error"))
}

const probeJSON = `{
	"streams": [
		{"codec_type": "video", "width": 1280, "height": 720},
		{"codec_type": "audio"}
	],
	"format": {"duration": "95.500000"}
}`

func TestProbe(t *testing.T) {
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			if name != "ffprobe" {
				t.Errorf("Probe used binary %q, want ffprobe", name)
			}
			return probeJSON, nil
		},
	}

	info, err := newTestNormalizer(exec).Probe(context.Background(), "talk.mp4")
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if info.Width != 1280 || info.Height != 720 {
		t.Errorf("Probe() size = %dx%d, want 1280x720", info.Width, info.Height)
	}
	if !info.HasAudio {
		t.Error("Probe() HasAudio = false, want true")
	}
	if want := 95500 * time.Millisecond; info.Duration != want {
		t.Errorf("Probe() duration = %v, want %v", info.Duration, want)
	}
}

func TestProbeNoAudioStream(t *testing.T) {
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return `{"streams":[{"codec_type":"video","width":640,"height":480}],"format":{"duration":"10.0"}}`, nil
		},
	}

	info, err := newTestNormalizer(exec).Probe(context.Background(), "silent.mp4")
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if info.HasAudio {
		t.Error("Probe() HasAudio = true, want false")
	}
}

func TestProbeFailure(t *testing.T) {
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("ffprobe exploded")
		},
	}

	_, err := newTestNormalizer(exec).Probe(context.Background(), "broken.mp4")
	if !domain.IsKind(err, domain.ErrMedia) {
		t.Errorf("Probe() error = %v, want ErrMedia kind", err)
	}
}

func TestAudioDuration(t *testing.T) {
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "40.25\n", nil
		},
	}

	d, err := newTestNormalizer(exec).AudioDuration(context.Background(), "teaching.wav")
	if err != nil {
		t.Fatalf("AudioDuration() error = %v", err)
	}
	if want := 40250 * time.Millisecond; d != want {
		t.Errorf("AudioDuration() = %v, want %v", d, want)
	}
}

func TestNormalizeWAVPassthrough(t *testing.T) {
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			t.Error("NormalizeWAV should not invoke ffmpeg for WAV input")
			return "", nil
		},
	}

	out, err := newTestNormalizer(exec).NormalizeWAV(context.Background(), "teaching.wav")
	if err != nil {
		t.Fatalf("NormalizeWAV() error = %v", err)
	}
	if out != "teaching.wav" {
		t.Errorf("NormalizeWAV() = %q, want input path unchanged", out)
	}
}

func TestNormalizeWAVConverts(t *testing.T) {
	var gotArgs []string
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			gotArgs = args
			return "", nil
		},
	}

	out, err := newTestNormalizer(exec).NormalizeWAV(context.Background(), "teaching.mp3")
	if err != nil {
		t.Fatalf("NormalizeWAV() error = %v", err)
	}
	if out == "teaching.mp3" {
		t.Error("NormalizeWAV() should return a new path for non-WAV input")
	}
	if out != "teaching_converted.wav" {
		t.Errorf("NormalizeWAV() = %q, want teaching_converted.wav", out)
	}

	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"-ar 16000", "-ac 1", "-c:a pcm_s16le"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ffmpeg args %q missing %q", joined, want)
		}
	}
}

func TestExtractAudio(t *testing.T) {
	var gotArgs []string
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			gotArgs = args
			return "", nil
		},
	}

	out, err := newTestNormalizer(exec).ExtractAudio(context.Background(), "talk.mp4")
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	if out != "talk_extracted.wav" {
		t.Errorf("ExtractAudio() = %q, want talk_extracted.wav", out)
	}

	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"-vn", "-ar 16000", "-ac 1", "-c:a pcm_s16le"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ffmpeg args %q missing %q", joined, want)
		}
	}
}

func TestExtractAudioFailure(t *testing.T) {
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("no streams")
		},
	}

	_, err := newTestNormalizer(exec).ExtractAudio(context.Background(), "talk.mp4")
	if !domain.IsKind(err, domain.ErrMedia) {
		t.Errorf("ExtractAudio() error = %v, want ErrMedia kind", err)
	}
}
