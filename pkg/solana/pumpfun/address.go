package pumpfun

import (
	"crypto/ed25519"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

var (
	GlobalPrefix         = []byte("global")
	BondingCurvePrefix   = []byte("bonding-curve")
	MintAuthorityPrefix  = []byte("mint-authority")
	EventAuthorityPrefix = []byte("__event_authority")
)

func GetGlobalAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		GlobalPrefix,
	)
}

func GetEventAuthorityAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		EventAuthorityPrefix,
	)
}

func GetMintAuthorityAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MintAuthorityPrefix,
	)
}

type GetBondingCurveAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetBondingCurveAddress(args *GetBondingCurveAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		BondingCurvePrefix,
		args.Mint,
	)
}

type GetAssociatedBondingCurveAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetAssociatedBondingCurveAddress returns the token account holding the
// bonding curve's reserves of mint.
func GetAssociatedBondingCurveAddress(args *GetAssociatedBondingCurveAddressArgs) (ed25519.PublicKey, error) {
	bondingCurve, _, err := GetBondingCurveAddress(&GetBondingCurveAddressArgs{Mint: args.Mint})
	if err != nil {
		return nil, err
	}
	return token.GetAssociatedAccount(bondingCurve, args.Mint)
}

var (
	bondingCurveSlot = solana.Derived(
		"bonding_curve",
		solana.KeyRef(PROGRAM_ID),
		solana.Literal(BondingCurvePrefix),
		solana.SlotRef("mint"),
	)

	associatedBondingCurveSlot = token.AssociatedAccountSlot(
		"associated_bonding_curve",
		solana.SlotRef("bonding_curve"),
		solana.KeyRef(SPL_TOKEN_PROGRAM_ID),
		solana.SlotRef("mint"),
	)

	associatedUserSlot = token.AssociatedAccountSlot(
		"associated_user",
		solana.SlotRef("user"),
		solana.KeyRef(SPL_TOKEN_PROGRAM_ID),
		solana.SlotRef("mint"),
	)
)
