package manager

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StatusError is returned when the manager responds with a non-2xx status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("manager responded with status %d", e.Code)
	}

	return fmt.Sprintf("manager responded with status %d: %s", e.Code, e.Body)
}

// Response is a successful response from the manager. The body is passed
// through untouched.
type Response struct {
	StatusCode int
	Type       ResponseType
	Body       []byte
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Raw returns the body as a JSON value. Text responses and bodies that are not
// valid JSON are quoted as strings.
func (r *Response) Raw() json.RawMessage {
	if r.Type != ResponseText {
		if len(bytes.TrimSpace(r.Body)) == 0 {
			return json.RawMessage("null")
		}

		if json.Valid(r.Body) {
			return r.Body
		}
	}

	b, _ := json.Marshal(r.Text())

	return b
}

var falsyValues = [][]byte{
	[]byte("null"),
	[]byte("false"),
	[]byte("0"),
	[]byte(`""`),
}

// IsEmpty returns true if the response carries no meaningful value: an empty
// body, or, for JSON responses, null, false, zero or an empty string. Empty
// arrays and objects are values.
func (r *Response) IsEmpty() bool {
	body := bytes.TrimSpace(r.Body)
	if len(body) == 0 {
		return true
	}

	if r.Type == ResponseText {
		return false
	}

	for _, v := range falsyValues {
		if bytes.Equal(body, v) {
			return true
		}
	}

	return false
}
