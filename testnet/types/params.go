package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

const (
	DefaultValidatorClientsCount = 0
	DefaultSecondsPerSlot        = 3
	DefaultSecondsPerEth1Block   = 1
)

// Params is the caller's sizing and timing intent for a local testnet.
type Params struct {
	DataDir               string `json:"data_dir"`
	BeaconNodesCount      int    `json:"beacon_nodes_count"`
	ValidatorsCount       int    `json:"validators_count"`
	ValidatorClientsCount int    `json:"validator_clients_count"`
	SecondsPerSlot        int    `json:"seconds_per_slot"`
	SecondsPerEth1Block   int    `json:"seconds_per_eth1_block"`
}

// DefaultParams returns the defaults of every optional field. Node and
// validator counts have no sensible default and are left at zero.
func DefaultParams() Params {
	return Params{
		DataDir:               DefaultDataDir,
		ValidatorClientsCount: DefaultValidatorClientsCount,
		SecondsPerSlot:        DefaultSecondsPerSlot,
		SecondsPerEth1Block:   DefaultSecondsPerEth1Block,
	}
}

// NewParams builds a parameter set from the required counts, leaving the
// rest at their defaults.
func NewParams(validatorsCount, beaconNodesCount int) Params {
	p := DefaultParams()
	p.ValidatorsCount = validatorsCount
	p.BeaconNodesCount = beaconNodesCount
	return p
}

// Validate performs basic sanity checks. It does not judge whether the
// values make sense for the remote defaults.
func (p Params) Validate() error {
	if strings.TrimSpace(p.DataDir) == "" {
		return errorsmod.Wrap(ErrInvalidParams, "data_dir cannot be empty")
	}
	if strings.ContainsAny(p.DataDir, "\n\r") {
		return errorsmod.Wrap(ErrInvalidParams, "data_dir cannot contain line breaks")
	}
	counts := []struct {
		name  string
		value int
	}{
		{"beacon_nodes_count", p.BeaconNodesCount},
		{"validators_count", p.ValidatorsCount},
		{"validator_clients_count", p.ValidatorClientsCount},
	}
	for _, c := range counts {
		if c.value < 0 {
			return errorsmod.Wrapf(ErrInvalidParams, "%s cannot be negative, got %d", c.name, c.value)
		}
	}
	if p.SecondsPerSlot <= 0 {
		return errorsmod.Wrapf(ErrInvalidParams, "seconds_per_slot must be positive, got %d", p.SecondsPerSlot)
	}
	if p.SecondsPerEth1Block <= 0 {
		return errorsmod.Wrapf(ErrInvalidParams, "seconds_per_eth1_block must be positive, got %d", p.SecondsPerEth1Block)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf(
		"data_dir=%s beacon_nodes=%d validators=%d validator_clients=%d seconds_per_slot=%d seconds_per_eth1_block=%d",
		p.DataDir, p.BeaconNodesCount, p.ValidatorsCount, p.ValidatorClientsCount, p.SecondsPerSlot, p.SecondsPerEth1Block,
	)
}
