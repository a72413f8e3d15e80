package ovhapi

import "encoding/json"

// Decode parses body as JSON into T. On failure the raw body is kept in the
// returned *DecodeError.
func Decode[T any](body string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		var zero T
		return zero, &DecodeError{Err: err, Body: body}
	}
	return v, nil
}

// Parse decodes the body of a successful response.
func Parse[T any](resp *Response) (T, error) {
	return Decode[T](resp.Body)
}
