package manager

// Encoding is the encoding of a request body.
type Encoding uint8

const (
	// EncodingJSON sends the body as a JSON document. This is the default.
	EncodingJSON Encoding = iota

	// EncodingForm sends the body as application/x-www-form-urlencoded.
	EncodingForm
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingForm:
		return "form"
	default:
		return ""
	}
}

// ResponseType tells how the response body is expected to be interpreted.
type ResponseType uint8

const (
	// ResponseJSON expects a JSON document. This is the default.
	ResponseJSON ResponseType = iota

	// ResponseText expects plain text.
	ResponseText
)

func (t ResponseType) String() string {
	switch t {
	case ResponseJSON:
		return "json"
	case ResponseText:
		return "text"
	default:
		return ""
	}
}

// RequestOptions controls how a single request is encoded and how its response
// is treated. The zero value sends JSON and expects JSON with no query params.
type RequestOptions struct {
	Encoding     Encoding
	ResponseType ResponseType
	Params       map[string]string
}

// FormOptions returns options for a form-encoded request expecting JSON back.
func FormOptions() RequestOptions {
	return RequestOptions{Encoding: EncodingForm}
}

// TextOptions returns options for a JSON request expecting plain text back.
func TextOptions() RequestOptions {
	return RequestOptions{ResponseType: ResponseText}
}
