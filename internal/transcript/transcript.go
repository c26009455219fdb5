// Package transcript is the PDF ingestion boundary: it turns an uploaded
// earnings-call PDF into the single plain-text string the rest of the
// system works with.
package transcript

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type Page struct {
	Number    int
	Text      string
	CharCount int
}

type Document struct {
	FullText   string
	Pages      []Page
	TotalPages int
	TotalChars int
	FilePath   string
}

type Processor struct{}

// Extract reads every page of the PDF and concatenates the plain text.
func (Processor) Extract(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	doc := Document{FilePath: path}
	var full strings.Builder
	for num := 1; num <= r.NumPage(); num++ {
		page := r.Page(num)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Document{}, fmt.Errorf("extract page %d of %s: %w", num, path, err)
		}
		doc.Pages = append(doc.Pages, Page{Number: num, Text: text, CharCount: len(text)})
		full.WriteString(text)
		full.WriteString("\n")
	}
	doc.FullText = full.String()
	doc.TotalPages = len(doc.Pages)
	doc.TotalChars = len(doc.FullText)
	return doc, nil
}

// Validate checks that the file exists, is a readable PDF, and yields at
// least some extractable text. Image-only scans fail here rather than
// producing an empty transcript downstream.
func (Processor) Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return errors.New("pdf file is empty")
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return errors.New("pdf contains no pages")
	}
	first := r.Page(1)
	if first.V.IsNull() {
		return errors.New("pdf first page is unreadable")
	}
	sample, err := first.GetPlainText(nil)
	if err != nil {
		return fmt.Errorf("read first page of %s: %w", path, err)
	}
	if len(strings.TrimSpace(sample)) < 10 {
		return errors.New("pdf appears to contain no extractable text (may be image-only)")
	}
	return nil
}
