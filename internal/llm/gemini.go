package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Gemini struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Client    *http.Client
}

func NewGemini(apiKey, baseURL, model string, timeout time.Duration) *Gemini {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Gemini{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		ModelName: model,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (g *Gemini) Name() string  { return "gemini" }
func (g *Gemini) Model() string { return g.ModelName }

// Gemini has no separate system role in this envelope; the system text is
// prepended to the prompt.
func (g *Gemini) ExtractPreparedRemarks(ctx context.Context, fullText, speakerName string) (string, error) {
	return g.complete(ctx, extractionSystem+"\n\n"+extractionPrompt(fullText, speakerName))
}

func (g *Gemini) GenerateTemplate(ctx context.Context, preparedRemarks, speakerName string) (string, error) {
	return g.complete(ctx, templateSystem+"\n\n"+templatePrompt(preparedRemarks, speakerName))
}

func (g *Gemini) GenerateCustomSpeech(ctx context.Context, preparedRemarks, keyMessages, speakerName string) (string, string, error) {
	prompt := customSpeechSystem(speakerName) + "\n\n" + customSpeechPrompt(preparedRemarks, keyMessages, speakerName)
	speech, err := g.complete(ctx, prompt)
	if err != nil {
		return "", "", err
	}
	return speech, prompt, nil
}

func (g *Gemini) complete(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature": 0.7,
		},
	}
	body, _ := json.Marshal(payload)
	// Gemini authenticates via a URL query parameter, not a header.
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.BaseURL, g.ModelName, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Provider: g.Name(), Status: resp.StatusCode, Body: string(raw)}
	}

	var decoded struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", &ProviderError{Provider: g.Name(), Status: resp.StatusCode, Body: string(raw), Err: err}
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Provider: g.Name(), Status: resp.StatusCode, Body: string(raw), Err: errors.New("response has no candidates")}
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
