package pumpfun

import (
	"crypto/ed25519"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
	"github.com/code-payments/ixkit/pkg/solana/metadata"
)

var CreateSchema = solana.Schema{
	Name:    "pumpfun/create",
	Program: solana.Constant("program", PROGRAM_ID),
	Slots: []solana.SlotSpec{
		solana.Input("mint").Writable().Signer(),
		solana.Derived("mint_authority", solana.KeyRef(PROGRAM_ID), solana.Literal(MintAuthorityPrefix)),
		bondingCurveSlot.Writable(),
		associatedBondingCurveSlot.Writable(),
		solana.Constant("global", GLOBAL_ACCOUNT),
		solana.Constant("mpl_token_metadata", METADATA_PROGRAM_ID),
		metadata.MetadataAccountSlot("metadata", solana.SlotRef("mint")).Writable(),
		solana.Input("user").Writable().Signer(),
		solana.Constant("system_program", SYSTEM_PROGRAM_ID),
		solana.Constant("token_program", SPL_TOKEN_PROGRAM_ID),
		solana.Constant("associated_token_program", ASSOCIATED_TOKEN_PROGRAM_ID),
		solana.Constant("rent", SYSVAR_RENT_PUBKEY),
		solana.Constant("event_authority", EVENT_AUTHORITY),
		solana.Constant("program", PROGRAM_ID),
	},
}

// The program creates the metadata account through CPI, so the metadata
// program's limits apply.
type CreateInstructionArgs struct {
	Name   string
	Symbol string
	Uri    string
}

func (a *CreateInstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(CreateSchema.Name).
		Discriminator(CreateInstructionDiscriminator).
		String("name", a.Name, metadata.MaxNameLength).
		String("symbol", a.Symbol, metadata.MaxSymbolLength).
		String("uri", a.Uri, metadata.MaxUriLength).
		Bytes()
}

type CreateInstructionAccounts struct {
	Mint ed25519.PublicKey
	User ed25519.PublicKey
}

// NewCreateInstruction launches a new mint on a fresh bonding curve. Both the
// mint and the user sign.
func NewCreateInstruction(
	accounts *CreateInstructionAccounts,
	args *CreateInstructionArgs,
) (solana.Instruction, error) {
	ix, _, err := CreateSchema.Compose(
		solana.Inputs{}.
			SetKey("mint", accounts.Mint).
			SetKey("user", accounts.User),
		args,
	)
	return ix, err
}
