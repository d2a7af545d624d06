package metadata

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

var TransferV1Schema = solana.Schema{
	Name:    "metadata/transfer_v1",
	Program: solana.Constant("program", PROGRAM_ID),
	Slots: []solana.SlotSpec{
		token.AssociatedAccountSlot("token", solana.SlotRef("token_owner"), solana.SlotRef("spl_token_program"), solana.SlotRef("mint")).Writable(),
		solana.Input("token_owner"),
		token.AssociatedAccountSlot("destination_token", solana.SlotRef("destination_owner"), solana.SlotRef("spl_token_program"), solana.SlotRef("mint")).Writable(),
		solana.Input("destination_owner"),
		solana.Input("mint"),
		MetadataAccountSlot("metadata", solana.SlotRef("mint")).Writable(),
		placeholderSlot("edition"),
		placeholderSlot("token_record"),
		placeholderSlot("destination_token_record"),
		solana.Input("authority").Signer(),
		solana.Input("payer").Writable().Signer(),
		solana.Constant("system_program", SYSTEM_PROGRAM_ID),
		solana.Constant("sysvar_instructions", SYSVAR_INSTRUCTIONS_PUBKEY),
		solana.Input("spl_token_program"),
		solana.Constant("spl_ata_program", ASSOCIATED_TOKEN_PROGRAM_ID),
		placeholderSlot("authorization_rules_program"),
		placeholderSlot("authorization_rules"),
	},
}

type TransferV1InstructionArgs struct {
	Amount cosmath.Int
}

func (a *TransferV1InstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(TransferV1Schema.Name).
		Raw(InstructionTypeTransfer.v1()).
		Amount("amount", a.Amount).
		Option("authorization_data", false).
		Bytes()
}

type TransferV1InstructionAccounts struct {
	TokenOwner       ed25519.PublicKey
	DestinationOwner ed25519.PublicKey
	Mint             ed25519.PublicKey
	Authority        ed25519.PublicKey
	Payer            ed25519.PublicKey

	// SplTokenProgram defaults to the legacy token program when nil.
	SplTokenProgram ed25519.PublicKey
}

// NewTransferV1Instruction moves tokens between the associated token accounts
// of two owners. The destination account is created when missing.
func NewTransferV1Instruction(
	accounts *TransferV1InstructionAccounts,
	args *TransferV1InstructionArgs,
) (solana.Instruction, error) {
	splTokenProgram := accounts.SplTokenProgram
	if splTokenProgram == nil {
		splTokenProgram = SPL_TOKEN_PROGRAM_ID
	}

	ix, _, err := TransferV1Schema.Compose(
		solana.Inputs{}.
			SetKey("token_owner", accounts.TokenOwner).
			SetKey("destination_owner", accounts.DestinationOwner).
			SetKey("mint", accounts.Mint).
			SetKey("authority", accounts.Authority).
			SetKey("payer", accounts.Payer).
			SetKey("spl_token_program", splTokenProgram),
		args,
	)
	return ix, err
}
