package llm

import "strings"

// classifyExtraction turns a raw extraction response into either usable
// prepared-remarks text or a typed semantic failure. It runs only after a
// successful HTTP round trip; transport failures never reach this point.
//
// The sentinel match is deliberately a substring check anywhere in the
// response, matching the prompt contract even when the model wraps the
// token in extra prose.
func classifyExtraction(raw, speakerName string, minChars int) (string, error) {
	if strings.Contains(raw, sentinelNotFound) {
		return "", &NotFoundError{Speaker: speakerName}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) < minChars {
		return "", &InsufficientContentError{Speaker: speakerName, Length: len(trimmed)}
	}
	return trimmed, nil
}
