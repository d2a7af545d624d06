package pumpfun

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/code-payments/ixkit/pkg/solana/metadata"
	"github.com/code-payments/ixkit/pkg/solana/system"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

// Program singletons. Both are PDAs of the program and match GetGlobalAddress
// and GetEventAuthorityAddress.
var (
	GLOBAL_ACCOUNT  = ed25519.PublicKey(mustBase58Decode("4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"))
	EVENT_AUTHORITY = ed25519.PublicKey(mustBase58Decode("Ce6TQqeHC9p8KetsN6JsjHK7UTZk7nasjjnr7XxXp9F1"))

	// Default fee recipient. The program keeps a list of valid recipients in
	// the global account, so callers may pass another one.
	FEE_RECIPIENT = ed25519.PublicKey(mustBase58Decode("CebN5WGQ4jvEPvsVU4EoHEpgzq1VV7AbicfhtW4xC9iM"))
)

var (
	METADATA_PROGRAM_ID         = metadata.PROGRAM_ID
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
