package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

type Claude struct {
	APIKey    string
	BaseURL   string
	ModelName string
	// StyleContextChars bounds the prepared-remarks portion of the
	// custom-speech prompt to stay inside the vendor context window.
	StyleContextChars int
	Client            *http.Client
}

func NewClaude(apiKey, model string, styleContextChars int, timeout time.Duration) *Claude {
	if model == "" {
		model = "claude-3-sonnet-20240229"
	}
	if styleContextChars <= 0 {
		styleContextChars = 2000
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Claude{
		APIKey:            apiKey,
		BaseURL:           "https://api.anthropic.com/v1",
		ModelName:         model,
		StyleContextChars: styleContextChars,
		Client:            &http.Client{Timeout: timeout},
	}
}

func (c *Claude) Name() string  { return "claude" }
func (c *Claude) Model() string { return c.ModelName }

func (c *Claude) ExtractPreparedRemarks(ctx context.Context, fullText, speakerName string) (string, error) {
	return c.complete(ctx, extractionPrompt(fullText, speakerName))
}

func (c *Claude) GenerateTemplate(ctx context.Context, preparedRemarks, speakerName string) (string, error) {
	return c.complete(ctx, templatePrompt(preparedRemarks, speakerName))
}

func (c *Claude) GenerateCustomSpeech(ctx context.Context, preparedRemarks, keyMessages, speakerName string) (string, string, error) {
	prompt := customSpeechPrompt(truncate(preparedRemarks, c.StyleContextChars), keyMessages, speakerName)
	speech, err := c.complete(ctx, prompt)
	if err != nil {
		return "", "", err
	}
	return speech, prompt, nil
}

func (c *Claude) complete(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":      c.ModelName,
		"max_tokens": 4096,
		"messages": []chatMessage{
			{Role: "user", Content: prompt},
		},
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Provider: c.Name(), Status: resp.StatusCode, Body: string(raw)}
	}

	var decoded struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", &ProviderError{Provider: c.Name(), Status: resp.StatusCode, Body: string(raw), Err: err}
	}
	if len(decoded.Content) == 0 {
		return "", &ProviderError{Provider: c.Name(), Status: resp.StatusCode, Body: string(raw), Err: errors.New("response has no content blocks")}
	}
	return decoded.Content[0].Text, nil
}
