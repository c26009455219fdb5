package export

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Calibri"
	fontSize = 12
)

// Docx writes the artifact as a styled Word document. Markdown-ish
// structure in the body (headings, bullets) is mapped to paragraph styles;
// everything else becomes plain paragraphs.
func Docx(k Kind, speakerName, body, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), k.title(), true, 16)
	addRun(doc.AddParagraph(""), "Speaker: "+speakerName, false, fontSize)
	doc.AddParagraph("")

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "#"):
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			addRun(doc.AddParagraph(""), stripInline(text), true, 14)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			addRun(doc.AddParagraph(""), "• "+stripInline(trimmed[2:]), false, fontSize)
		default:
			addRun(doc.AddParagraph(""), stripInline(trimmed), false, fontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func stripInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
