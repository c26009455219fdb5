package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyExtractionSentinelAnywhere(t *testing.T) {
	raw := "I looked carefully but NO_PREPARED_REMARKS_FOUND, sorry about that. " +
		strings.Repeat("padding ", 20)
	_, err := classifyExtraction(raw, "Jane Doe", 50)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Speaker != "Jane Doe" {
		t.Fatalf("expected speaker in error, got %q", notFound.Speaker)
	}
	if !strings.Contains(notFound.Error(), "first name only") {
		t.Fatalf("expected actionable message, got %q", notFound.Error())
	}
}

func TestClassifyExtractionTooShort(t *testing.T) {
	_, err := classifyExtraction("   short answer   ", "Jane Doe", 50)
	var insufficient *InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientContentError, got %v", err)
	}
	if insufficient.Length != len("short answer") {
		t.Fatalf("expected trimmed length, got %d", insufficient.Length)
	}
}

func TestClassifyExtractionEmptyAlwaysFails(t *testing.T) {
	// Whitespace-only output fails even with the floor disabled.
	_, err := classifyExtraction("   \n\t  ", "Jane Doe", 0)
	var insufficient *InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientContentError, got %v", err)
	}
}

func TestClassifyExtractionAcceptsTrimmed(t *testing.T) {
	body := "We delivered strong results this quarter across all business segments."
	got, err := classifyExtraction("  "+body+"\n", "Jane Doe", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != body {
		t.Fatalf("expected trimmed response, got %q", got)
	}
}
