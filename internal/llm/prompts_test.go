package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Every provider must carry the same extraction instructions so that
// switching vendors never changes behaviour.
func TestExtractionPromptParityAcrossProviders(t *testing.T) {
	mustContain := []string{
		`"Jane Doe" (case-insensitive`,
		"Variations like first name only, last name only, or titles (Mr./Ms./CEO/etc.)",
		"DO NOT include:",
		"Q&A responses or answers to questions",
		"Introductions by moderators or other people",
		`return "NO_PREPARED_REMARKS_FOUND"`,
	}

	var bodies []string
	capture := func() *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			bodies = append(bodies, string(data))
			// Any valid shape works for every vendor parser used here.
			_, _ = w.Write([]byte(`{
				"choices":[{"message":{"content":"ok"}}],
				"content":[{"text":"ok"}],
				"candidates":[{"content":{"parts":[{"text":"ok"}]}}]
			}`))
		}))
	}
	srv := capture()
	defer srv.Close()

	claude := NewClaude("k", "", 2000, time.Second)
	claude.BaseURL = srv.URL
	providers := []Provider{
		NewOpenAI("k", srv.URL, "", time.Second),
		claude,
		NewGemini("k", srv.URL, "", time.Second),
		NewOpenRouter("k", srv.URL, "", time.Second),
	}

	for _, p := range providers {
		if _, err := p.ExtractPreparedRemarks(context.Background(), sampleDoc, "Jane Doe"); err != nil {
			t.Fatalf("%s extract failed: %v", p.Name(), err)
		}
	}

	if len(bodies) != len(providers) {
		t.Fatalf("expected %d requests, got %d", len(providers), len(bodies))
	}
	for i, body := range bodies {
		for _, fragment := range mustContain {
			// Request bodies are JSON, so compare against the encoded form.
			encoded := jsonEscape(fragment)
			if !strings.Contains(body, encoded) {
				t.Fatalf("provider %s request missing instruction %q", providers[i].Name(), fragment)
			}
		}
	}
}

func TestCustomSpeechPromptContainsInputs(t *testing.T) {
	remarks := "We delivered strong results this quarter across all business segments and regions."
	keyMessages := "Focus on supply chain resilience and new product launches"
	prompt := customSpeechPrompt(remarks, keyMessages, "Jane Doe")

	for _, want := range []string{
		remarks,
		keyMessages,
		"Opening & Results, Consumer & Demand Trends, Segment Highlights, Strategic Initiatives, Product Quality, Closing Remarks",
		"Jane Doe's voice and style",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("custom speech prompt missing %q", want)
		}
	}
}

func TestTemplatePromptReconstructionGoal(t *testing.T) {
	prompt := templatePrompt("remarks body", "Jane Doe")
	if !strings.Contains(prompt, "detailed enough that an LLM could reconstruct the full speech") {
		t.Fatalf("template prompt missing reconstruction requirement")
	}
	if !strings.Contains(prompt, "remarks body") {
		t.Fatalf("template prompt missing remarks")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd" {
		t.Fatalf("expected abcd, got %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("expected limit 0 to disable truncation, got %q", got)
	}
}

// jsonEscape renders a fragment the way encoding/json embeds it in a
// request body (quotes, newlines, and HTML characters escaped, outer
// quotes stripped), so substring checks see the same bytes the adapters
// put on the wire.
func jsonEscape(s string) string {
	data, _ := json.Marshal(s)
	return string(data[1 : len(data)-1])
}
