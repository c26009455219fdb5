package llm

import (
	"context"
	"fmt"
	"sync"

	"speechwright/internal/config"
)

// Manager owns the set of providers that had a credential at startup and
// the single active-provider reference. The active name is the only mutable
// state; it is guarded so a switch concurrent with an in-flight call cannot
// corrupt anything (last writer wins, the in-flight call keeps the adapter
// it already resolved).
type Manager struct {
	mu              sync.RWMutex
	providers       map[string]Provider
	order           []string
	active          string
	minRemarksChars int
}

// NewManager discovers providers from configured credentials, in a fixed
// order so the default active provider is deterministic. A missing key
// simply omits that provider; zero keys leaves the manager unavailable.
func NewManager(cfg config.Config) *Manager {
	m := &Manager{
		providers:       make(map[string]Provider),
		minRemarksChars: cfg.Limits.MinRemarksChars,
	}
	timeout := cfg.Limits.RequestTimeout
	if key := cfg.Providers.OpenAI.APIKey; key != "" {
		m.register(NewOpenAI(key, cfg.Providers.OpenAI.BaseURL, cfg.Providers.OpenAI.Model, timeout))
	}
	if key := cfg.Providers.Claude.APIKey; key != "" {
		m.register(NewClaude(key, cfg.Providers.Claude.Model, cfg.Limits.StyleContextChars, timeout))
	}
	if key := cfg.Providers.Gemini.APIKey; key != "" {
		m.register(NewGemini(key, cfg.Providers.Gemini.BaseURL, cfg.Providers.Gemini.Model, timeout))
	}
	if key := cfg.Providers.OpenRouter.APIKey; key != "" {
		m.register(NewOpenRouter(key, cfg.Providers.OpenRouter.BaseURL, cfg.Providers.OpenRouter.Model, timeout))
	}
	return m
}

// NewManagerWith assembles a manager from already-built providers, keyed by
// their Name(). Used by tests and callers that do their own discovery.
func NewManagerWith(minRemarksChars int, providers ...Provider) *Manager {
	m := &Manager{
		providers:       make(map[string]Provider),
		minRemarksChars: minRemarksChars,
	}
	for _, p := range providers {
		m.register(p)
	}
	return m
}

func (m *Manager) register(p Provider) {
	name := p.Name()
	if _, ok := m.providers[name]; !ok {
		m.order = append(m.order, name)
	}
	m.providers[name] = p
	if m.active == "" {
		m.active = name
	}
}

// Available lists providers with a registered credential, in discovery order.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Active returns the name of the currently selected provider, or "" when
// none is configured.
func (m *Manager) Active() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Select switches the active provider. Unknown names are rejected and the
// active provider is left unchanged.
func (m *Manager) Select(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("select provider %q: %w", name, ErrUnknownProvider)
	}
	m.active = name
	return nil
}

func (m *Manager) current() (Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.active == "" {
		return nil, ErrNoProvider
	}
	return m.providers[m.active], nil
}

// ExtractPreparedRemarks runs the extraction operation on the active
// provider and applies the response policy: sentinel token to NotFoundError,
// empty or under-length output to InsufficientContentError.
func (m *Manager) ExtractPreparedRemarks(ctx context.Context, fullText, speakerName string) (string, error) {
	p, err := m.current()
	if err != nil {
		return "", err
	}
	raw, err := p.ExtractPreparedRemarks(ctx, fullText, speakerName)
	if err != nil {
		return "", err
	}
	return classifyExtraction(raw, speakerName, m.minRemarksChars)
}

// GenerateTemplate summarizes prepared remarks into a reusable style
// template. The response is accepted verbatim; this layer cannot judge the
// factual quality of model output.
func (m *Manager) GenerateTemplate(ctx context.Context, preparedRemarks, speakerName string) (string, error) {
	p, err := m.current()
	if err != nil {
		return "", err
	}
	return p.GenerateTemplate(ctx, preparedRemarks, speakerName)
}

// GenerateCustomSpeech rewrites the key messages into a speech in the
// speaker's voice. The exact prompt is returned alongside the speech for
// audit and display.
func (m *Manager) GenerateCustomSpeech(ctx context.Context, preparedRemarks, keyMessages, speakerName string) (string, string, error) {
	p, err := m.current()
	if err != nil {
		return "", "", err
	}
	return p.GenerateCustomSpeech(ctx, preparedRemarks, keyMessages, speakerName)
}
