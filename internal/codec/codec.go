package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec reads and writes values in one serialization format
type Codec interface {
	Decode(r io.Reader, v any) error
	Encode(w io.Writer, v any) error
	Format() string
	ContentType() string
}

// ForPath picks a codec from a file extension
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewJSONCodec(), nil
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("no codec for %q", filepath.Ext(path))
	}
}
