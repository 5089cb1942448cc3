package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/domain"
)

type googleRecognizer struct {
	endpoint string
	language string
	client   *http.Client
}

// NewGoogleRecognizer creates a Recognizer backed by Google's web speech
// endpoint. The language tag is fixed per deployment (th-TH here).
func NewGoogleRecognizer(cfg config.SpeechConfig) Recognizer {
	return &googleRecognizer{
		endpoint: cfg.Endpoint,
		language: cfg.Language,
		client: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSecs) * time.Second,
		},
	}
}

// Response is line-delimited JSON; the first line with a non-empty result
// carries the transcript.
type recognizePayload struct {
	Result []struct {
		Alternative []struct {
			Transcript string `json:"transcript"`
		} `json:"alternative"`
	} `json:"result"`
}

func (g *googleRecognizer) Recognize(ctx context.Context, wavPath string) (string, error) {
	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	params := url.Values{}
	params.Set("client", "chromium")
	params.Set("lang", g.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.endpoint+"?"+params.Encode(), bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("build recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/wav; rate=16000")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("speech service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read recognize response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speech service returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseRecognizeResponse(body)
}

func parseRecognizeResponse(body []byte) (string, error) {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var payload recognizePayload
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			return "", fmt.Errorf("parse recognize response: %w", err)
		}

		if len(payload.Result) > 0 && len(payload.Result[0].Alternative) > 0 {
			text := strings.TrimSpace(payload.Result[0].Alternative[0].Transcript)
			if text != "" {
				return text, nil
			}
		}
	}

	return "", domain.ErrNoSpeech
}
