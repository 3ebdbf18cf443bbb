package validator

import (
	"encoding/json"
	"io"

	"posada/shared/failure"
)

// DecodePayload reads a JSON object body into the loose map the field
// validators work on. Anything that is not a JSON object is a bad request.
func DecodePayload(reader io.Reader) (map[string]any, error) {
	var payload map[string]any

	if err := json.NewDecoder(reader).Decode(&payload); err != nil {
		return nil, failure.BadRequestFromString("Invalid JSON payload")
	}

	if payload == nil {
		return nil, failure.BadRequestFromString("Invalid JSON payload")
	}

	return payload, nil
}
