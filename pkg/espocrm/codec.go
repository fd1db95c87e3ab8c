package espocrm

import (
	"encoding/json"
	"fmt"
)

// ListResponse represents the server's list envelope.
type ListResponse[T any] struct {
	Total int `json:"total"`
	List  []T `json:"list"`
}

// DecodeEntity unmarshals a raw response body into the caller's entity shape.
// Unknown fields in the payload are ignored rather than rejected, so the
// client tolerates server-side schema additions.
func DecodeEntity[T any](data []byte) (*T, error) {
	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("decoding entity: %w", err)
	}

	return &value, nil
}

// EncodeEntity marshals a payload for create, update, link, or unlink
// requests. Field order follows the declared order of the input structure.
func EncodeEntity(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding entity: %w", err)
	}

	return data, nil
}
