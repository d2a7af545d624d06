package cpswap

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/code-payments/ixkit/pkg/solana/system"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

// The program is deployed under different ids per cluster, so every
// instruction takes the program id as an account. These are the mainnet
// values.
var (
	MAINNET_PROGRAM_ADDRESS = mustBase58Decode("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	MAINNET_PROGRAM_ID      = ed25519.PublicKey(MAINNET_PROGRAM_ADDRESS)

	MAINNET_CREATE_POOL_FEE_RECEIVER = ed25519.PublicKey(mustBase58Decode("DNXgeM9EiiaAbaWvwjHj9fQQLAX5ZsfHyvmYUNRAdNC8"))
)

var (
	SYSTEM_PROGRAM_ID           = ed25519.PublicKey(system.ProgramKey[:])
	SPL_TOKEN_PROGRAM_ID        = token.ProgramKey
	ASSOCIATED_TOKEN_PROGRAM_ID = token.AssociatedTokenAccountProgramKey

	SYSVAR_RENT_PUBKEY = system.RentSysVar
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
