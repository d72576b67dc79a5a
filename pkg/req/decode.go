package req

import (
	"encoding/json"
	"io"
)

// Decode reads a JSON body into T, rejecting unknown fields
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
