package types

import "github.com/spf13/cast"

// Override binds a variable name to the Params field that replaces it.
type Override struct {
	Key   string
	Value func(Params) any
}

// OverrideWhitelist is the fixed set of variables Params may override.
var OverrideWhitelist = []Override{
	{KeyDataDir, func(p Params) any { return p.DataDir }},
	{KeyBeaconNodeCount, func(p Params) any { return p.BeaconNodesCount }},
	{KeyValidatorCount, func(p Params) any { return p.ValidatorsCount }},
	{KeyValidatorClients, func(p Params) any { return p.ValidatorClientsCount }},
	{KeySecondsPerSlot, func(p Params) any { return p.SecondsPerSlot }},
	{KeySecondsPerEth1Block, func(p Params) any { return p.SecondsPerEth1Block }},
}

// OverrideValues renders the whitelist against p. Integers come out in
// decimal.
func OverrideValues(p Params) map[string]string {
	out := make(map[string]string, len(OverrideWhitelist))
	for _, o := range OverrideWhitelist {
		out[o.Key] = cast.ToString(o.Value(p))
	}
	return out
}

// IsOverridable reports whether key is in the whitelist.
func IsOverridable(key string) bool {
	for _, o := range OverrideWhitelist {
		if o.Key == key {
			return true
		}
	}
	return false
}
