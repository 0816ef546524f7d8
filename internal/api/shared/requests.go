package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrTrailingData is returned when a request body holds more than one JSON value.
var ErrTrailingData = errors.New("request body must contain a single JSON value")

// DecodeJSON decodes the request body into the given struct. Anything after
// the first JSON value other than whitespace is rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
