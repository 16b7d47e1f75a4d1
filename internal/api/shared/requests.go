package shared

import (
	"encoding/json"
	"errors"
	"net/http"
)

// MaxBodyBytes bounds the size of a request body. Profile photos travel
// inline as base64, so the limit is generous.
const MaxBodyBytes = 8 << 20

// ErrMalformedBody is returned by DecodeJSON when the body is not a single
// valid JSON document.
var ErrMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if dec.More() {
		return ErrMalformedBody
	}
	return nil
}
