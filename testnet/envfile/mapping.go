// Package envfile reads, merges and writes the KEY=VALUE variables file the
// local testnet launch scripts source.
package envfile

import (
	"bytes"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cast"
)

// Mapping is an insertion-ordered string map. Re-setting a key replaces its
// value and keeps its original position.
type Mapping struct {
	om *orderedmap.OrderedMap
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{om: orderedmap.New()}
}

// Set inserts or replaces key.
func (m *Mapping) Set(key, value string) {
	m.om.Set(key, value)
}

// Get returns the value for key.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.om.Get(key)
	if !ok {
		return "", false
	}
	return cast.ToString(v), true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.om.Get(key)
	return ok
}

// Keys returns the keys in order. The slice is a copy.
func (m *Mapping) Keys() []string {
	keys := m.om.Keys()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.om.Keys()) }

// Range calls fn for every entry in order until fn returns false.
func (m *Mapping) Range(fn func(key, value string) bool) {
	for _, k := range m.om.Keys() {
		v, _ := m.Get(k)
		if !fn(k, v) {
			return
		}
	}
}

// Clone returns an independent copy.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	m.Range(func(k, v string) bool {
		c.Set(k, v)
		return true
	})
	return c
}

// Serialize renders one KEY=VALUE line per entry, in order, each terminated
// by a newline. Values are written as-is.
func (m *Mapping) Serialize() []byte {
	var buf bytes.Buffer
	m.Range(func(k, v string) bool {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(v)
		buf.WriteByte('\n')
		return true
	})
	return buf.Bytes()
}
