package system

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// https://explorer.solana.com/address/11111111111111111111111111111111
var SystemAccount = mustDecode("11111111111111111111111111111111")

// RentSysVar points to the system variable "Rent"
//
// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/rent.rs#L11
var RentSysVar = mustDecode("SysvarRent111111111111111111111111111111111")

// RecentBlockhashesSysVar points to the system variable "Recent Blockhashes"
//
// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/recent_blockhashes.rs#L12-L15
var RecentBlockhashesSysVar = mustDecode("SysvarRecentB1ockHashes11111111111111111111")

// InstructionsSysVar points to the system variable "Instructions", which the
// metadata program reads to inspect the enclosing transaction.
var InstructionsSysVar = mustDecode("Sysvar1nstructions1111111111111111111111111")

// Schema tables are built during package variable initialization, so these
// are decoded in declarations rather than in init().
func mustDecode(value string) ed25519.PublicKey {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
