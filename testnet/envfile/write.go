package envfile

import (
	"os"

	"github.com/pushchain/push-testnet/testnet/types"
)

const fileMode = 0o644

// Write serializes m and replaces the contents of path with it.
func Write(path string, m *Mapping) error {
	return WriteRaw(path, m.Serialize())
}

// WriteRaw truncates path and writes data to it.
func WriteRaw(path string, data []byte) error {
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return &types.WriteError{Path: path, Err: err}
	}
	return nil
}
