package llm

import (
	"context"
)

// Provider is implemented once per vendor. Each method issues exactly one
// HTTP request and returns the raw model text; semantic validation of the
// response happens in the Manager, not here. GenerateCustomSpeech also
// returns the exact prompt sent to the model so callers can display and
// export it.
type Provider interface {
	ExtractPreparedRemarks(ctx context.Context, fullText, speakerName string) (string, error)
	GenerateTemplate(ctx context.Context, preparedRemarks, speakerName string) (string, error)
	GenerateCustomSpeech(ctx context.Context, preparedRemarks, keyMessages, speakerName string) (speech string, prompt string, err error)
	Name() string
	Model() string
}
