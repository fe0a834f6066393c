package trigger

import (
	"encoding/json"
	"errors"
	"io"
)

// PromptInput is the JSON payload a prompt-submit hook receives on
// stdin. Only the prompt field matters here; other protocol fields are
// ignored.
type PromptInput struct {
	SessionID string `json:"session_id,omitempty"`
	Prompt    string `json:"prompt"`
}

// ErrEmptyPrompt reports hook input carrying no prompt. The hook
// contract is to exit silently in that case, so callers check for this
// sentinel rather than reporting it.
var ErrEmptyPrompt = errors.New("trigger: empty prompt")

// ReadPrompt reads hook-protocol JSON from r and returns the utterance.
// Invalid JSON and a missing prompt both return ErrEmptyPrompt: from
// the hook's point of view there is nothing to match against, and the
// contract is silence, not failure.
func ReadPrompt(r io.Reader) (string, error) {
	var input PromptInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return "", ErrEmptyPrompt
	}
	if input.Prompt == "" {
		return "", ErrEmptyPrompt
	}
	return input.Prompt, nil
}
