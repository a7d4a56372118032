package respond

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/danielgtaylor/huma/v2"
)

// JSONFormat is the only response format the API offers. It writes compact
// JSON without HTML escaping and without the trailing newline json.Encoder adds.
var JSONFormat = huma.Format{
	Marshal:   encodeJSON,
	Unmarshal: json.Unmarshal,
}

// Formats returns the huma format table: the JSON media type plus the +json
// suffix used by application/problem+json errors.
func Formats() map[string]huma.Format {
	return map[string]huma.Format{
		"application/json": JSONFormat,
		"json":             JSONFormat,
	}
}

func encodeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
