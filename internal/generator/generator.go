package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

// CreatePost asks the model for the long-form social media post. The reply is
// free text and passed through verbatim after trimming.
func (g *implGenerator) CreatePost(ctx context.Context, transcript, category string) (string, error) {
	g.logger.Info(ctx, "Generating social media post (category: %s)", category)

	reply, err := g.model.Generate(ctx, fmt.Sprintf(postPrompt, transcript, category))
	if err != nil {
		return "", domain.Wrap(domain.ErrGeneration, "create post", err)
	}

	return strings.TrimSpace(reply), nil
}

type essencePayload struct {
	Headline string `json:"headline"`
	Essence1 string `json:"essence_1"`
	Essence2 string `json:"essence_2"`
	Essence3 string `json:"essence_3"`
	Quote    string `json:"quote"`
}

type analysisPayload struct {
	Keywords     []string `json:"keywords"`
	MainTeaching string   `json:"main_teaching"`
	Emotion      string   `json:"emotion"`
}

// CreateEssence asks the model for the headline, three essence takeaways and a
// pull-quote. Service or parse failures degrade to a fixed fallback bundle so
// the pipeline always reaches the result stage once a transcript exists.
func (g *implGenerator) CreateEssence(ctx context.Context, transcript string) domain.EssenceBundle {
	g.logger.Info(ctx, "Generating essence takeaways")

	reply, err := g.model.Generate(ctx, fmt.Sprintf(essencePrompt, transcript))
	if err != nil {
		g.logger.Warn(ctx, "Essence generation failed, using fallback: %v", err)
		return fallbackEssence()
	}

	var payload essencePayload
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &payload); err != nil {
		g.logger.Warn(ctx, "Essence reply unparsable, using fallback: %v", err)
		return fallbackEssence()
	}

	return domain.EssenceBundle{
		Headline: payload.Headline,
		Essence:  [3]string{payload.Essence1, payload.Essence2, payload.Essence3},
		Quote:    payload.Quote,
	}
}

// ExtractAnalysis asks the model for hashtag keywords, the main teaching and
// the intended emotion, with the same fallback policy as CreateEssence.
func (g *implGenerator) ExtractAnalysis(ctx context.Context, transcript string) domain.ContentAnalysis {
	g.logger.Info(ctx, "Extracting keywords and analysis")

	reply, err := g.model.Generate(ctx, fmt.Sprintf(analysisPrompt, transcript))
	if err != nil {
		g.logger.Warn(ctx, "Analysis generation failed, using fallback: %v", err)
		return fallbackAnalysis()
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &payload); err != nil {
		g.logger.Warn(ctx, "Analysis reply unparsable, using fallback: %v", err)
		return fallbackAnalysis()
	}

	return domain.ContentAnalysis{
		Keywords:     payload.Keywords,
		MainTeaching: payload.MainTeaching,
		Emotion:      payload.Emotion,
	}
}

func fallbackEssence() domain.EssenceBundle {
	return domain.EssenceBundle{
		Headline: "หลักธรรมะสำคัญที่ควรรู้",
		Essence: [3]string{
			"การฝึกสติในชีวิตประจำวัน",
			"การปล่อยวางความยึดติด",
			"การพัฒนาปัญญาเพื่อเข้าใจความจริง",
		},
		Quote: "ความสุขที่แท้จริงเกิดจากภายใน ไม่ใช่สิ่งภายนอก",
	}
}

func fallbackAnalysis() domain.ContentAnalysis {
	return domain.ContentAnalysis{
		Keywords:     []string{"ธรรมะ", "สติ", "ปัญญา", "สันติสุข"},
		MainTeaching: "การปฏิบัติธรรม",
		Emotion:      "สงบ สะเทือนใจ",
	}
}

// stripCodeFence removes markdown code-fence markers the model sometimes wraps
// JSON replies in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
