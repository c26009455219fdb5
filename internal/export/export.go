// Package export renders session artifacts into downloadable files.
package export

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindTemplate Kind = "template"
	KindSpeech   Kind = "speech"
	KindRemarks  Kind = "remarks"
	KindPrompt   Kind = "prompt"
)

func (k Kind) Valid() bool {
	switch k {
	case KindTemplate, KindSpeech, KindRemarks, KindPrompt:
		return true
	}
	return false
}

func (k Kind) title() string {
	switch k {
	case KindTemplate:
		return "SPEECH TEMPLATE"
	case KindSpeech:
		return "CUSTOM SPEECH"
	case KindRemarks:
		return "PREPARED REMARKS"
	case KindPrompt:
		return "LLM PROMPT"
	}
	return string(k)
}

// Filename builds the suggested download name, e.g. "Jane_Doe_template.txt".
func Filename(k Kind, speakerName, ext string) string {
	speaker := strings.TrimSpace(speakerName)
	if speaker == "" {
		speaker = "Speaker"
	}
	speaker = strings.ReplaceAll(speaker, " ", "_")
	return fmt.Sprintf("%s_%s.%s", speaker, k, ext)
}

// Text renders the artifact as a plain-text file with a header block.
func Text(k Kind, speakerName, body string) []byte {
	var b strings.Builder
	b.WriteString(k.title())
	b.WriteString("\nSpeaker: ")
	b.WriteString(speakerName)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")
	b.WriteString(body)
	return []byte(b.String())
}
