package envfile

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/pushchain/push-testnet/testnet/types"
)

// Merge returns a copy of base where every whitelisted key takes its value
// from p. Keys are never added or removed, so an override value containing a
// line break is rejected with ErrInvalidParams.
func Merge(base *Mapping, p types.Params) (*Mapping, error) {
	overrides := types.OverrideValues(p)
	for _, o := range types.OverrideWhitelist {
		if strings.ContainsAny(overrides[o.Key], "\n\r") {
			return nil, errorsmod.Wrapf(types.ErrInvalidParams, "override %s cannot contain line breaks", o.Key)
		}
	}

	merged := base.Clone()
	for _, k := range base.Keys() {
		if v, ok := overrides[k]; ok {
			merged.Set(k, v)
		}
	}
	return merged, nil
}

// MissingOverrides lists whitelisted keys absent from base, in whitelist
// order. Merge leaves these out of the output.
func MissingOverrides(base *Mapping) []string {
	var missing []string
	for _, o := range types.OverrideWhitelist {
		if !base.Has(o.Key) {
			missing = append(missing, o.Key)
		}
	}
	return missing
}

// Synthesize parses raw and applies p on top of it.
func Synthesize(raw []byte, p types.Params) (*Mapping, error) {
	base, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return Merge(base, p)
}
