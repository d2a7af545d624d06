package pumpfun

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

var SellSchema = solana.Schema{
	Name:    "pumpfun/sell",
	Program: solana.Constant("program", PROGRAM_ID),
	Slots: []solana.SlotSpec{
		solana.Constant("global", GLOBAL_ACCOUNT),
		solana.Input("fee_recipient").Writable(),
		solana.Input("mint"),
		bondingCurveSlot.Writable(),
		associatedBondingCurveSlot.Writable(),
		associatedUserSlot.Writable(),
		solana.Input("user").Writable().Signer(),
		solana.Constant("system_program", SYSTEM_PROGRAM_ID),
		solana.Constant("associated_token_program", ASSOCIATED_TOKEN_PROGRAM_ID),
		solana.Constant("token_program", SPL_TOKEN_PROGRAM_ID),
		solana.Constant("event_authority", EVENT_AUTHORITY),
		solana.Constant("program", PROGRAM_ID),
	},
}

type SellInstructionArgs struct {
	Amount       cosmath.Int
	MinSolOutput cosmath.Int
}

func (a *SellInstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(SellSchema.Name).
		Discriminator(SellInstructionDiscriminator).
		Amount("amount", a.Amount).
		Amount("min_sol_output", a.MinSolOutput).
		Bytes()
}

type SellInstructionAccounts struct {
	Mint ed25519.PublicKey
	User ed25519.PublicKey

	// FeeRecipient defaults to FEE_RECIPIENT when nil.
	FeeRecipient ed25519.PublicKey
}

// NewSellInstruction sells tokens back into the bonding curve of mint.
func NewSellInstruction(
	accounts *SellInstructionAccounts,
	args *SellInstructionArgs,
) (solana.Instruction, error) {
	ix, _, err := SellSchema.Compose(tradeInputs(accounts.Mint, accounts.User, accounts.FeeRecipient), args)
	return ix, err
}
