package envfile

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/pushchain/push-testnet/testnet/types"
)

var (
	utf8BOM             = []byte{0xEF, 0xBB, 0xBF}
	errInvalidUTF8      = errors.New("invalid UTF-8")
	errMissingSeparator = errors.New("missing '='")
	errEmptyKey         = errors.New("empty key")
)

// Parse builds the baseline mapping from a KEY=VALUE blob. Blank lines and
// lines starting with '#' are skipped. Each remaining line is split on its
// first '='; the key is trimmed, the value is kept byte for byte. A duplicate
// key keeps its first position and takes the last value.
func Parse(raw []byte) (*Mapping, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	m := NewMapping()
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, &types.ParseError{Line: i + 1, Text: line, Err: errInvalidUTF8}
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok {
			return nil, &types.ParseError{Line: i + 1, Text: line, Err: errMissingSeparator}
		}
		if key == "" {
			return nil, &types.ParseError{Line: i + 1, Text: line, Err: errEmptyKey}
		}
		m.Set(key, value)
	}
	return m, nil
}
