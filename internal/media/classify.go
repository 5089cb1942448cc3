package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// Kind distinguishes audio from video uploads.
type Kind int

const (
	KindAudio Kind = iota
	KindVideo
)

func (k Kind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "audio"
}

var (
	audioExtensions = map[string]bool{
		".mp3":  true,
		".wav":  true,
		".m4a":  true,
		".flac": true,
		".aac":  true,
	}
	videoExtensions = map[string]bool{
		".mp4":  true,
		".avi":  true,
		".mov":  true,
		".mkv":  true,
		".webm": true,
		".flv":  true,
		".wmv":  true,
		".m4v":  true,
	}
)

// Classify maps a filename to its media kind by extension. Extensions outside
// the allow-lists are rejected rather than falling through as audio.
func Classify(filename string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case videoExtensions[ext]:
		return KindVideo, nil
	case audioExtensions[ext]:
		return KindAudio, nil
	default:
		return KindAudio, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether the filename carries a known audio or video extension.
func Supported(filename string) bool {
	_, err := Classify(filename)
	return err == nil
}
