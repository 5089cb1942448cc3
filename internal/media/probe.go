package media

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// ffprobe JSON payload, trimmed to the fields the pipeline needs.
type probePayload struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe inspects a media container and reports duration, frame dimensions and
// audio-stream presence.
func (n *implNormalizer) Probe(ctx context.Context, path string) (Info, error) {
	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	out, err := n.executor.Execute(ctx, n.cfg.ProbeBinary, args...)
	if err != nil {
		return Info{}, domain.Wrap(domain.ErrMedia, "probe media", err)
	}

	var payload probePayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		return Info{}, domain.Wrap(domain.ErrMedia, "parse probe output", err)
	}

	var info Info
	for _, s := range payload.Streams {
		switch s.CodecType {
		case "video":
			if info.Width == 0 {
				info.Width = s.Width
				info.Height = s.Height
			}
		case "audio":
			info.HasAudio = true
		}
	}

	if d := strings.TrimSpace(payload.Format.Duration); d != "" {
		secs, err := strconv.ParseFloat(d, 64)
		if err != nil {
			return Info{}, domain.Wrap(domain.ErrMedia, "parse probe duration", err)
		}
		info.Duration = time.Duration(secs * float64(time.Second))
	}

	return info, nil
}

// AudioDuration reports the playable length of an audio file.
func (n *implNormalizer) AudioDuration(ctx context.Context, path string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := n.executor.Execute(ctx, n.cfg.ProbeBinary, args...)
	if err != nil {
		return 0, domain.Wrap(domain.ErrMedia, "probe audio duration", err)
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, domain.Wrap(domain.ErrMedia, "parse audio duration", err)
	}

	return time.Duration(secs * float64(time.Second)), nil
}
