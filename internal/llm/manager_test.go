package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"speechwright/internal/config"
)

type stubProvider struct {
	name    string
	remarks string
	speech  string
	calls   int
}

func (s *stubProvider) ExtractPreparedRemarks(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.remarks, nil
}

func (s *stubProvider) GenerateTemplate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return "TEMPLATE", nil
}

func (s *stubProvider) GenerateCustomSpeech(_ context.Context, preparedRemarks, keyMessages, speakerName string) (string, string, error) {
	s.calls++
	return s.speech, customSpeechPrompt(preparedRemarks, keyMessages, speakerName), nil
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return "stub-model" }

const longRemarks = "We delivered strong results this quarter across every segment of the business and remain confident."

func TestManagerDiscoversOnlyConfiguredProviders(t *testing.T) {
	cfg := config.Default()
	cfg.Providers.Claude.APIKey = "test-claude-key"
	cfg.Providers.OpenRouter.APIKey = "test-openrouter-key"

	m := NewManager(cfg)
	available := m.Available()
	if len(available) != 2 || available[0] != "claude" || available[1] != "openrouter" {
		t.Fatalf("expected [claude openrouter], got %v", available)
	}
	if m.Active() != "claude" {
		t.Fatalf("expected first discovered provider active, got %q", m.Active())
	}
}

func TestManagerUnavailableFailsFast(t *testing.T) {
	m := NewManager(config.Default())
	if got := m.Available(); len(got) != 0 {
		t.Fatalf("expected no providers, got %v", got)
	}

	ctx := context.Background()
	if _, err := m.ExtractPreparedRemarks(ctx, "text", "Jane"); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
	if _, err := m.GenerateTemplate(ctx, longRemarks, "Jane"); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
	if _, _, err := m.GenerateCustomSpeech(ctx, longRemarks, "messages", "Jane"); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}

func TestManagerSelectUnknownLeavesActiveUnchanged(t *testing.T) {
	stub := &stubProvider{name: "openai", remarks: longRemarks}
	m := NewManagerWith(50, stub)

	err := m.Select("claude")
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	if m.Active() != "openai" {
		t.Fatalf("active provider changed on failed select: %q", m.Active())
	}
}

func TestManagerSelectSwitchesDispatch(t *testing.T) {
	first := &stubProvider{name: "openai", remarks: longRemarks}
	second := &stubProvider{name: "gemini", remarks: longRemarks}
	m := NewManagerWith(50, first, second)

	if err := m.Select("gemini"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := m.ExtractPreparedRemarks(context.Background(), "text", "Jane"); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if first.calls != 0 || second.calls != 1 {
		t.Fatalf("expected dispatch to gemini, calls: openai=%d gemini=%d", first.calls, second.calls)
	}
}

func TestManagerAppliesExtractionPolicy(t *testing.T) {
	stub := &stubProvider{name: "openai", remarks: "checked everywhere: NO_PREPARED_REMARKS_FOUND"}
	m := NewManagerWith(50, stub)

	_, err := m.ExtractPreparedRemarks(context.Background(), "text", "Jane")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	stub.remarks = "too short"
	_, err = m.ExtractPreparedRemarks(context.Background(), "text", "Jane")
	var insufficient *InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientContentError, got %v", err)
	}
}

func TestManagerCustomSpeechRoundTrip(t *testing.T) {
	remarks := "We delivered strong results this quarter across all regions and product lines."
	keyMessages := "Focus on supply chain resilience and new product launches"
	stub := &stubProvider{name: "openai", speech: "Good afternoon everyone, thank you for joining us."}
	m := NewManagerWith(50, stub)

	speech, prompt, err := m.GenerateCustomSpeech(context.Background(), remarks, keyMessages, "Jane Doe")
	if err != nil {
		t.Fatalf("custom speech failed: %v", err)
	}
	if speech == "" {
		t.Fatalf("expected non-empty speech")
	}
	if !strings.Contains(prompt, keyMessages) {
		t.Fatalf("prompt missing key messages")
	}
	if !strings.Contains(prompt, remarks) {
		t.Fatalf("prompt missing prepared remarks")
	}
}
