package artifact

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/Weerinrada/Dhamma/internal/domain"
)

const (
	fontName    = "TH Sarabun New"
	fontSize    = 14
	headingSize = 16
)

// writeSummaryDocx renders the combined summary as a styled docx document.
func writeSummaryDocx(res *domain.FinalResult, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), res.Headline, true, headingSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "โพสต์ Social Media", true, fontSize)
	addLines(doc, res.Post)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "แก่นธรรม 3 ข้อ", true, fontSize)
	for i, essence := range res.Essence {
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, essence), false, fontSize)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Quote", true, fontSize)
	addStyledRun(doc.AddParagraph(""), "\""+res.Quote+"\"", false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Keywords", true, fontSize)
	addStyledRun(doc.AddParagraph(""), hashtagLine(res.Keywords), false, fontSize)
	addStyledRun(doc.AddParagraph(""), "หลักธรรมะ: "+res.MainTeaching, false, fontSize)
	addStyledRun(doc.AddParagraph(""), "อารมณ์: "+res.Emotion, false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Transcript", true, fontSize)
	addLines(doc, res.Transcript)

	return doc.SaveTo(outputPath)
}

func addLines(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func hashtagLine(keywords []string) string {
	tags := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		tags = append(tags, "#"+kw)
	}
	return strings.Join(tags, " ")
}
