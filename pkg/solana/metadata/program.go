package metadata

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/code-payments/ixkit/pkg/solana/system"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID           = ed25519.PublicKey(system.ProgramKey[:])
	SPL_TOKEN_PROGRAM_ID        = token.ProgramKey
	ASSOCIATED_TOKEN_PROGRAM_ID = token.AssociatedTokenAccountProgramKey

	SYSVAR_INSTRUCTIONS_PUBKEY = system.InstructionsSysVar
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
