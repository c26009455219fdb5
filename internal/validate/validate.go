// Package validate holds the input checks applied before any LLM call is
// made: cheap data-shape checks, not orchestration logic.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	speakerNameChars = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	hasLetter        = regexp.MustCompile(`[a-zA-Z]`)
	meaningfulText   = regexp.MustCompile(`[a-zA-Z].*[a-zA-Z]`)
)

// SpeakerName returns the trimmed name or an error describing what is
// wrong with it.
func SpeakerName(name string) (string, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return "", errors.New("speaker name cannot be empty")
	}
	if len(cleaned) < 2 {
		return "", errors.New("speaker name must be at least 2 characters long")
	}
	if len(cleaned) > 100 {
		return "", errors.New("speaker name too long (maximum 100 characters)")
	}
	if !speakerNameChars.MatchString(cleaned) {
		return "", errors.New("speaker name can only contain letters, spaces, hyphens, apostrophes, and periods")
	}
	if !hasLetter.MatchString(cleaned) {
		return "", errors.New("speaker name must contain at least one letter")
	}
	return cleaned, nil
}

// KeyMessages returns the trimmed key-messages text or an error.
func KeyMessages(messages string) (string, error) {
	cleaned := strings.TrimSpace(messages)
	if cleaned == "" {
		return "", errors.New("key messages cannot be empty")
	}
	if len(cleaned) < 10 {
		return "", errors.New("key messages must be at least 10 characters long")
	}
	if len(cleaned) > 10000 {
		return "", errors.New("key messages too long (maximum 10,000 characters)")
	}
	if !meaningfulText.MatchString(cleaned) {
		return "", errors.New("key messages must contain meaningful text")
	}
	return cleaned, nil
}

// UploadFilename checks the client-supplied name of an uploaded file.
func UploadFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("no file selected")
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return errors.New("invalid file type, please upload a PDF file")
	}
	return nil
}

// APIKey does a shape check on a credential before a provider is
// registered with it. It cannot prove the key works, only reject obvious
// placeholders.
func APIKey(key, provider string) error {
	cleaned := strings.TrimSpace(key)
	if cleaned == "" {
		return fmt.Errorf("no API key provided for %s", provider)
	}
	minLengths := map[string]int{
		"openai":     40,
		"claude":     40,
		"gemini":     30,
		"openrouter": 40,
	}
	minLen, ok := minLengths[strings.ToLower(provider)]
	if !ok {
		minLen = 20
	}
	if len(cleaned) < minLen {
		return fmt.Errorf("API key for %s appears too short (minimum %d characters)", provider, minLen)
	}
	switch cleaned {
	case "demo", "test", "placeholder", "your_api_key_here":
		return fmt.Errorf("please provide a valid API key for %s", provider)
	}
	if strings.EqualFold(provider, "openai") && !strings.HasPrefix(cleaned, "sk-") {
		return errors.New("OpenAI API keys should start with 'sk-'")
	}
	return nil
}
