package llm

import (
	"context"
	"net/http"
	"time"
)

// OpenRouter speaks the same chat-completions dialect as OpenAI, only the
// endpoint and default model differ.
type OpenRouter struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Client    *http.Client
}

func NewOpenRouter(apiKey, baseURL, model string, timeout time.Duration) *OpenRouter {
	if baseURL == "" {
		baseURL = "https://api.openrouter.ai/v1"
	}
	if model == "" {
		model = "deepseek/deepseek-r1:free"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenRouter{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		ModelName: model,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (o *OpenRouter) Name() string  { return "openrouter" }
func (o *OpenRouter) Model() string { return o.ModelName }

func (o *OpenRouter) ExtractPreparedRemarks(ctx context.Context, fullText, speakerName string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: extractionSystem},
		{Role: "user", Content: extractionPrompt(fullText, speakerName)},
	}
	return completeChat(ctx, o.Client, o.Name(), o.BaseURL, o.APIKey, o.ModelName, messages)
}

func (o *OpenRouter) GenerateTemplate(ctx context.Context, preparedRemarks, speakerName string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: templateSystem},
		{Role: "user", Content: templatePrompt(preparedRemarks, speakerName)},
	}
	return completeChat(ctx, o.Client, o.Name(), o.BaseURL, o.APIKey, o.ModelName, messages)
}

func (o *OpenRouter) GenerateCustomSpeech(ctx context.Context, preparedRemarks, keyMessages, speakerName string) (string, string, error) {
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
