package metadata

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

var MintV1Schema = solana.Schema{
	Name:    "metadata/mint_v1",
	Program: solana.Constant("program", PROGRAM_ID),
	Slots: []solana.SlotSpec{
		token.AssociatedAccountSlot("token", solana.SlotRef("token_owner"), solana.SlotRef("spl_token_program"), solana.SlotRef("mint")).Writable(),
		solana.Input("token_owner"),
		MetadataAccountSlot("metadata", solana.SlotRef("mint")),
		placeholderSlot("master_edition"),
		placeholderSlot("token_record"),
		solana.Input("mint").Writable(),
		solana.Input("authority").Signer(),
		placeholderSlot("delegate_record"),
		solana.Input("payer").Writable().Signer(),
		solana.Constant("system_program", SYSTEM_PROGRAM_ID),
		solana.Constant("sysvar_instructions", SYSVAR_INSTRUCTIONS_PUBKEY),
		solana.Input("spl_token_program"),
		solana.Constant("spl_ata_program", ASSOCIATED_TOKEN_PROGRAM_ID),
		placeholderSlot("authorization_rules_program"),
		placeholderSlot("authorization_rules"),
	},
}

type MintV1InstructionArgs struct {
	Amount cosmath.Int
}

func (a *MintV1InstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(MintV1Schema.Name).
		Raw(InstructionTypeMint.v1()).
		Amount("amount", a.Amount).
		Option("authorization_data", false).
		Bytes()
}

type MintV1InstructionAccounts struct {
	TokenOwner ed25519.PublicKey
	Mint       ed25519.PublicKey
	Authority  ed25519.PublicKey
	Payer      ed25519.PublicKey

	// SplTokenProgram defaults to the legacy token program when nil.
	SplTokenProgram ed25519.PublicKey
}

// NewMintV1Instruction mints into the associated token account of the token
// owner, creating it when it doesn't exist.
func NewMintV1Instruction(
	accounts *MintV1InstructionAccounts,
	args *MintV1InstructionArgs,
) (solana.Instruction, error) {
	splTokenProgram := accounts.SplTokenProgram
	if splTokenProgram == nil {
		splTokenProgram = SPL_TOKEN_PROGRAM_ID
	}

	ix, _, err := MintV1Schema.Compose(
		solana.Inputs{}.
			SetKey("token_owner", accounts.TokenOwner).
			SetKey("mint", accounts.Mint).
			SetKey("authority", accounts.Authority).
			SetKey("payer", accounts.Payer).
			SetKey("spl_token_program", splTokenProgram),
		args,
	)
	return ix, err
}
