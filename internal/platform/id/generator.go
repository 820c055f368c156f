package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// MaxRequestIDLength bounds caller supplied ids echoed back in headers and logs.
const MaxRequestIDLength = 128

const defaultRequestIDBytes = 12

// Generator creates opaque request identifiers.
type Generator interface {
	NewID() (string, error)
}

// RequestIDGenerator produces hex ids with an optional prefix, e.g. "lm-3f9a...".
type RequestIDGenerator struct {
	prefix string
	size   int
}

func NewRequestIDGenerator(prefix string) *RequestIDGenerator {
	return &RequestIDGenerator{prefix: prefix, size: defaultRequestIDBytes}
}

func (g *RequestIDGenerator) NewID() (string, error) {
	size := g.size
	if size <= 0 {
		size = defaultRequestIDBytes
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate request id")
	}
	return g.prefix + hex.EncodeToString(buf), nil
}

// ValidRequestID accepts ids made of letters, digits, '-', '_', '.' and ':'
// up to MaxRequestIDLength, so a caller value is safe to log and echo.
func ValidRequestID(v string) bool {
	if v == "" || len(v) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
