package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/domain"
)

func TestParseRecognizeResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     string
		wantErr  error
		parseErr bool
	}{
		{
			name: "empty first line then result",
			body: `{"result":[]}
{"result":[{"alternative":[{"transcript":"สวัสดีธรรมะ","confidence":0.9}],"final":true}],"result_index":0}`,
			want: "สวัสดีธรรมะ",
		},
		{
			name:    "no speech recognized",
			body:    `{"result":[]}`,
			wantErr: domain.ErrNoSpeech,
		},
		{
			name:    "blank body",
			body:    "\n\n",
			wantErr: domain.ErrNoSpeech,
		},
		{
			name:     "malformed json",
			body:     `{"result":`,
			parseErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecognizeResponse([]byte(tt.body))
			if tt.parseErr {
				if err == nil {
					t.Fatal("parseRecognizeResponse() expected parse error")
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseRecognizeResponse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRecognizeResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseRecognizeResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGoogleRecognizer(t *testing.T) {
	wavPath := filepath.Join(t.TempDir(), "chunk.wav")
	if err := os.WriteFile(wavPath, []byte("RIFF fake wav"), 0644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("lang"); got != "th-TH" {
			t.Errorf("lang query = %q, want th-TH", got)
		}
		w.Write([]byte(`{"result":[{"alternative":[{"transcript":"ทดสอบ"}],"final":true}]}`))
	}))
	defer server.Close()

	rec := NewGoogleRecognizer(config.SpeechConfig{
		Endpoint:           server.URL,
		Language:           "th-TH",
		RequestTimeoutSecs: 5,
	})

	text, err := rec.Recognize(context.Background(), wavPath)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if text != "ทดสอบ" {
		t.Errorf("Recognize() = %q, want ทดสอบ", text)
	}
}

func TestGoogleRecognizerServerError(t *testing.T) {
	wavPath := filepath.Join(t.TempDir(), "chunk.wav")
	if err := os.WriteFile(wavPath, []byte("RIFF fake wav"), 0644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	rec := NewGoogleRecognizer(config.SpeechConfig{
		Endpoint:           server.URL,
		Language:           "th-TH",
		RequestTimeoutSecs: 5,
	})

	_, err := rec.Recognize(context.Background(), wavPath)
	if err == nil {
		t.Fatal("Recognize() expected error for non-200 status")
	}
	if errors.Is(err, domain.ErrNoSpeech) {
		t.Error("service failure must be distinguishable from no-speech")
	}
}
