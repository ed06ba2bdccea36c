package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrEmptyBody is returned when a JSON document is missing entirely
var ErrEmptyBody = errors.New("empty body")

// JSONCodec handles JSON documents. Numbers decode into interface values as
// json.Number so integer and fractional inputs stay distinguishable.
type JSONCodec struct {
	// Indent pretty-prints encoded output
	Indent bool
}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ContentType returns the media type of encoded output
func (c *JSONCodec) ContentType() string {
	return "application/json"
}

// Decode reads one JSON value from r into v
func (c *JSONCodec) Decode(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

// Encode writes v to w as JSON
func (c *JSONCodec) Encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	if c.Indent {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
