package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// WriteAll writes the downloadable artifact set for a finished session into
// dir, each file named with the original uploaded filename as suffix. It
// returns the paths written.
func WriteAll(dir, uploadedName string, res *domain.FinalResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{"dhamma_post_" + uploadedName + ".txt", res.Post},
		{"transcript_" + uploadedName + ".txt", res.Transcript},
		{"dhamma_essence_" + uploadedName + ".txt", EssenceText(res)},
		{"dhamma_quote_" + uploadedName + ".txt", QuoteText(res)},
		{"dhamma_full_" + uploadedName + ".txt", SummaryText(res)},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return written, fmt.Errorf("write artifact %s: %w", f.name, err)
		}
		written = append(written, path)
	}

	docxPath := filepath.Join(dir, "dhamma_full_"+uploadedName+".docx")
	if err := writeSummaryDocx(res, docxPath); err != nil {
		return written, fmt.Errorf("write summary docx: %w", err)
	}
	written = append(written, docxPath)

	return written, nil
}

// EssenceText renders the headline plus the three takeaways for checklist or
// carousel graphics.
func EssenceText(res *domain.FinalResult) string {
	return fmt.Sprintf(`Headline: %s

แก่นธรรม 3 ข้อ:

1. %s

2. %s

3. %s`, res.Headline, res.Essence[0], res.Essence[1], res.Essence[2])
}

// QuoteText renders the pull-quote bundle for quote-card graphics.
func QuoteText(res *domain.FinalResult) string {
	return fmt.Sprintf("Headline: %s\n\nQuote:\n\"%s\"", res.Headline, res.Quote)
}

// SummaryText renders the combined download document.
func SummaryText(res *domain.FinalResult) string {
	divider := strings.Repeat("=", 50)

	mediaType := "เสียง"
	if res.WasVideo {
		mediaType = "วิดีโอ"
	}

	return fmt.Sprintf(`โพสต์:
%s

%s

Transcript:
%s

%s

Keywords: %s
หลักธรรมะ: %s
อารมณ์: %s

ประเภทไฟล์: %s
เวลาประมวลผล: %.2f วินาที`,
		res.Post,
		divider,
		res.Transcript,
		divider,
		strings.Join(res.Keywords, ", "),
		res.MainTeaching,
		res.Emotion,
		mediaType,
		res.ProcessingTime.Seconds())
}
