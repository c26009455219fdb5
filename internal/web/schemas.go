package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Request bodies are schema-checked before any field is read, so handlers
// only ever see well-shaped input.
var (
	selectProviderSchema = jsonschema.MustCompileString("select_provider.json", `{
		"type": "object",
		"required": ["provider"],
		"properties": {
			"provider": {"type": "string", "minLength": 1}
		},
		"additionalProperties": false
	}`)

	templateRequestSchema = jsonschema.MustCompileString("template_request.json", `{
		"type": "object",
		"required": ["speaker_name"],
		"properties": {
			"speaker_name": {"type": "string", "minLength": 1}
		},
		"additionalProperties": false
	}`)

	speechRequestSchema = jsonschema.MustCompileString("speech_request.json", `{
		"type": "object",
		"required": ["key_messages"],
		"properties": {
			"key_messages": {"type": "string", "minLength": 1}
		},
		"additionalProperties": false
	}`)
)

const maxJSONBody = 1 << 20

func decodeJSON(r *http.Request, schema *jsonschema.Schema) (map[string]any, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		return nil, errors.New("could not read request body")
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("invalid json")
	}
	if err := schema.Validate(doc); err != nil {
		return nil, errors.New("invalid request: " + err.Error())
	}
	body, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("invalid request body")
	}
	return body, nil
}
