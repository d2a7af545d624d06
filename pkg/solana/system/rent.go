package system

const (
	// AccountStorageOverhead is the number of bytes the runtime charges for on
	// top of an account's data.
	AccountStorageOverhead = 128

	// DefaultLamportsPerByteYear and DefaultExemptionThreshold are the
	// cluster's default rent parameters.
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2
)

// MinimumBalanceForRentExemption computes the rent exempt minimum for an
// account of the given data size using the default rent parameters, which
// avoids an RPC round trip when creating accounts.
//
// Reference: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/program/src/rent.rs#L68
func MinimumBalanceForRentExemption(size uint64) uint64 {
	return (AccountStorageOverhead + size) * DefaultLamportsPerByteYear * DefaultExemptionThreshold
}
