package llm

import (
	"errors"
	"fmt"
)

// ErrNoProvider means no provider had a credential at startup; operations
// fail before any network attempt.
var ErrNoProvider = errors.New("no llm provider available")

// ErrUnknownProvider is returned by Select for names without a registered
// adapter. The active provider is left unchanged.
var ErrUnknownProvider = errors.New("unknown llm provider")

// ProviderError is a transport-layer failure: the vendor was unreachable,
// rejected the request, or returned a body we could not parse. The raw
// status and body are kept for diagnostics.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		if e.Status != 0 {
			return fmt.Sprintf("%s api error: status %d: %v", e.Provider, e.Status, e.Err)
		}
		return fmt.Sprintf("%s api error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s api error: status %d: %s", e.Provider, e.Status, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NotFoundError means the model explicitly signalled, via the sentinel
// token, that the document holds no prepared remarks for the speaker. The
// request itself succeeded.
type NotFoundError struct {
	Speaker string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no prepared remarks found for %q in the document.\n\n"+
		"Troubleshooting tips:\n"+
		"- Verify the speaker name matches as it appears in the document\n"+
		"- Try variations like first name only or last name only\n"+
		"- Check that the document contains prepared remarks, not just Q&A\n"+
		"- Ensure the speaker has substantial speaking content in the document",
		e.Speaker)
}

// InsufficientContentError means the model answered but the response was
// empty or too short to be usable. Unlike NotFoundError the model did not
// claim absence; this catches malformed or truncated output.
type InsufficientContentError struct {
	Speaker string
	Length  int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("insufficient content for speaker %q: model returned %d characters", e.Speaker, e.Length)
}
