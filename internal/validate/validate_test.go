package validate

import (
	"strings"
	"testing"
)

func TestSpeakerName(t *testing.T) {
	got, err := SpeakerName("  Jane O'Brien-Smith Jr. ")
	if err != nil {
		t.Fatalf("valid name rejected: %v", err)
	}
	if got != "Jane O'Brien-Smith Jr." {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	invalid := []string{"", " ", "J", strings.Repeat("a", 101), "Jane123", "Jane@Doe"}
	for _, name := range invalid {
		if _, err := SpeakerName(name); err == nil {
			t.Fatalf("expected rejection for %q", name)
		}
	}
}

func TestKeyMessages(t *testing.T) {
	got, err := KeyMessages(" Focus on supply chain resilience and new product launches ")
	if err != nil {
		t.Fatalf("valid messages rejected: %v", err)
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Fatalf("expected trimmed messages, got %q", got)
	}

	if _, err := KeyMessages("short"); err == nil {
		t.Fatalf("expected rejection for too-short messages")
	}
	if _, err := KeyMessages(strings.Repeat("x", 10001)); err == nil {
		t.Fatalf("expected rejection for too-long messages")
	}
	if _, err := KeyMessages("1234567890!!"); err == nil {
		t.Fatalf("expected rejection for non-meaningful text")
	}
}

func TestUploadFilename(t *testing.T) {
	if err := UploadFilename("transcript.PDF"); err != nil {
		t.Fatalf("pdf extension rejected: %v", err)
	}
	if err := UploadFilename("notes.txt"); err == nil {
		t.Fatalf("expected rejection for non-pdf")
	}
	if err := UploadFilename(""); err == nil {
		t.Fatalf("expected rejection for empty name")
	}
}

func TestAPIKey(t *testing.T) {
	if err := APIKey("sk-"+strings.Repeat("a", 48), "openai"); err != nil {
		t.Fatalf("valid openai key rejected: %v", err)
	}
	if err := APIKey(strings.Repeat("a", 48), "openai"); err == nil {
		t.Fatalf("expected rejection for openai key without sk- prefix")
	}
	if err := APIKey("short", "claude"); err == nil {
		t.Fatalf("expected rejection for short key")
	}
	if err := APIKey("placeholder"+strings.Repeat("a", 40), "gemini"); err != nil {
		t.Fatalf("long key should pass shape check: %v", err)
	}
	if err := APIKey("", "gemini"); err == nil {
		t.Fatalf("expected rejection for empty key")
	}
}
