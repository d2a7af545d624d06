package pumpfun

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

var BuySchema = solana.Schema{
	Name:    "pumpfun/buy",
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
		solana.Constant("token_program", SPL_TOKEN_PROGRAM_ID),
		solana.Constant("rent", SYSVAR_RENT_PUBKEY),
		solana.Constant("event_authority", EVENT_AUTHORITY),
		solana.Constant("program", PROGRAM_ID),
	},
}

type BuyInstructionArgs struct {
	// Amount of tokens to buy, in base units.
	Amount cosmath.Int

	// MaxSolCost is the slippage bound, in lamports.
	MaxSolCost cosmath.Int
}

func (a *BuyInstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(BuySchema.Name).
		Discriminator(BuyInstructionDiscriminator).
		Amount("amount", a.Amount).
		Amount("max_sol_cost", a.MaxSolCost).
		Bytes()
}

type BuyInstructionAccounts struct {
	Mint ed25519.PublicKey
	User ed25519.PublicKey

	// FeeRecipient defaults to FEE_RECIPIENT when nil.
	FeeRecipient ed25519.PublicKey
}

// NewBuyInstruction buys tokens from the bonding curve of mint. The user's
// associated token account must exist.
func NewBuyInstruction(
	accounts *BuyInstructionAccounts,
	args *BuyInstructionArgs,
) (solana.Instruction, error) {
	ix, _, err := BuySchema.Compose(tradeInputs(accounts.Mint, accounts.User, accounts.FeeRecipient), args)
	return ix, err
}

func tradeInputs(mint, user, feeRecipient ed25519.PublicKey) solana.Inputs {
	if feeRecipient == nil {
		feeRecipient = FEE_RECIPIENT
	}
	return solana.Inputs{}.
		SetKey("mint", mint).
		SetKey("user", user).
		SetKey("fee_recipient", feeRecipient)
}
