package types

const (
	// ModuleName is the error codespace of the testnet tooling.
	ModuleName = "testnet"

	// DefaultDataDir is where the local testnet scripts keep node data,
	// relative to the testnet home.
	DefaultDataDir = ".lighthouse/local-testnet"

	// DefaultVarsFile is the file consumed by the node launch scripts.
	DefaultVarsFile = "vars.env"

	// DefaultHomeDirName is the subdirectory created under the caller's root.
	DefaultHomeDirName = "lighthouse"
)

// Variable names the testnet parameters are allowed to override.
const (
	KeyDataDir             = "DATADIR"
	KeyBeaconNodeCount     = "BN_COUNT"
	KeyValidatorCount      = "VALIDATOR_COUNT"
	KeyValidatorClients    = "VC_COUNT"
	KeySecondsPerSlot      = "SECONDS_PER_SLOT"
	KeySecondsPerEth1Block = "SECONDS_PER_ETH1_BLOCK"
)
