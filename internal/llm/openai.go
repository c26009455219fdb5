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

type OpenAI struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Client    *http.Client
}

func NewOpenAI(apiKey, baseURL, model string, timeout time.Duration) *OpenAI {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4.1-mini"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAI{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		ModelName: model,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (o *OpenAI) Name() string  { return "openai" }
func (o *OpenAI) Model() string { return o.ModelName }

func (o *OpenAI) ExtractPreparedRemarks(ctx context.Context, fullText, speakerName string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: extractionSystem},
		{Role: "user", Content: extractionPrompt(fullText, speakerName)},
	}
	return completeChat(ctx, o.Client, o.Name(), o.BaseURL, o.APIKey, o.ModelName, messages)
}

func (o *OpenAI) GenerateTemplate(ctx context.Context, preparedRemarks, speakerName string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: templateSystem},
		{Role: "user", Content: templatePrompt(preparedRemarks, speakerName)},
	}
	return completeChat(ctx, o.Client, o.Name(), o.BaseURL, o.APIKey, o.ModelName, messages)
}

func (o *OpenAI) GenerateCustomSpeech(ctx context.Context, preparedRemarks, keyMessages, speakerName string) (string, string, error) {
	prompt := customSpeechPrompt(preparedRemarks, keyMessages, speakerName)
	messages := []chatMessage{
		{Role: "system", Content: customSpeechSystem(speakerName)},
		{Role: "user", Content: prompt},
	}
	speech, err := completeChat(ctx, o.Client, o.Name(), o.BaseURL, o.APIKey, o.ModelName, messages)
	if err != nil {
		return "", "", err
	}
	return speech, prompt, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completeChat issues one chat-completions request. OpenAI and OpenRouter
// share this wire shape: bearer auth, a messages array, and the generated
// text at choices[0].message.content.
func completeChat(ctx context.Context, client *http.Client, provider, baseURL, apiKey, model string, messages []chatMessage) (string, error) {
	payload := map[string]any{
		"model":       model,
		"messages":    messages,
		"temperature": 0.7,
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: provider, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Provider: provider, Status: resp.StatusCode, Body: string(raw)}
	}

	var decoded struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", &ProviderError{Provider: provider, Status: resp.StatusCode, Body: string(raw), Err: err}
	}
	if len(decoded.Choices) == 0 {
		return "", &ProviderError{Provider: provider, Status: resp.StatusCode, Body: string(raw), Err: errors.New("response has no choices")}
	}
	return decoded.Choices[0].Message.Content, nil
}
