package metadata

import (
	"crypto/ed25519"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

type createV1Layout struct {
	masterEdition           bool
	mintIsSigner            bool
	updateAuthorityIsSigner bool
}

// The account flags differ between callers, so every combination gets its own
// table.
var createV1Schemas = func() map[createV1Layout]*solana.Schema {
	schemas := make(map[createV1Layout]*solana.Schema)
	for _, masterEdition := range []bool{false, true} {
		for _, mintIsSigner := range []bool{false, true} {
			for _, updateAuthorityIsSigner := range []bool{false, true} {
				layout := createV1Layout{masterEdition, mintIsSigner, updateAuthorityIsSigner}
				schemas[layout] = newCreateV1Schema(layout)
			}
		}
	}
	return schemas
}()

func newCreateV1Schema(layout createV1Layout) *solana.Schema {
	edition := placeholderSlot("master_edition")
	if layout.masterEdition {
		edition = masterEditionSlot("master_edition").Writable()
	}

	mint := solana.Input("mint").Writable()
	if layout.mintIsSigner {
		mint = mint.Signer()
	}

	updateAuthority := solana.Input("update_authority")
	if layout.updateAuthorityIsSigner {
		updateAuthority = updateAuthority.Signer()
	}

	return &solana.Schema{
		Name:    "metadata/create_v1",
		Program: solana.Constant("program", PROGRAM_ID),
		Slots: []solana.SlotSpec{
			MetadataAccountSlot("metadata", solana.SlotRef("mint")).Writable(),
			edition,
			mint,
			solana.Input("authority").Signer(),
			solana.Input("payer").Writable().Signer(),
			updateAuthority,
			solana.Constant("system_program", SYSTEM_PROGRAM_ID),
			solana.Constant("sysvar_instructions", SYSVAR_INSTRUCTIONS_PUBKEY),
			solana.Input("spl_token_program"),
		},
	}
}

// CreateV1Schema returns the account table matching the provided flags.
func CreateV1Schema(masterEdition, mintIsSigner, updateAuthorityIsSigner bool) *solana.Schema {
	return createV1Schemas[createV1Layout{masterEdition, mintIsSigner, updateAuthorityIsSigner}]
}

type CreateV1InstructionArgs struct {
	AssetData   AssetData
	Decimals    *uint8
	PrintSupply *PrintSupply
}

func (a *CreateV1InstructionArgs) Encode() ([]byte, error) {
	e := binary.NewEncoder("metadata/create_v1").Raw(InstructionTypeCreate.v1())
	a.AssetData.encode(e)
	e.OptionalU8("decimals", a.Decimals)
	return a.PrintSupply.encode(e).Bytes()
}

type CreateV1InstructionAccounts struct {
	Mint                    ed25519.PublicKey
	MintIsSigner            bool
	Authority               ed25519.PublicKey
	Payer                   ed25519.PublicKey
	UpdateAuthority         ed25519.PublicKey
	UpdateAuthorityIsSigner bool

	// CreateMasterEdition derives and passes the master edition account.
	// Otherwise the slot is a placeholder.
	CreateMasterEdition bool

	// SplTokenProgram defaults to the legacy token program when nil.
	SplTokenProgram ed25519.PublicKey
}

// NewCreateV1Instruction creates the metadata account, and optionally the
// master edition, of an existing mint.
//
// Reference: https://github.com/metaplex-foundation/mpl-token-metadata/blob/main/programs/token-metadata/program/src/instruction/mod.rs
func NewCreateV1Instruction(
	accounts *CreateV1InstructionAccounts,
	args *CreateV1InstructionArgs,
) (solana.Instruction, error) {
	splTokenProgram := accounts.SplTokenProgram
	if splTokenProgram == nil {
		splTokenProgram = SPL_TOKEN_PROGRAM_ID
	}

	schema := CreateV1Schema(accounts.CreateMasterEdition, accounts.MintIsSigner, accounts.UpdateAuthorityIsSigner)
	ix, _, err := schema.Compose(
		solana.Inputs{}.
			SetKey("mint", accounts.Mint).
			SetKey("authority", accounts.Authority).
			SetKey("payer", accounts.Payer).
			SetKey("update_authority", accounts.UpdateAuthority).
			SetKey("spl_token_program", splTokenProgram),
		args,
	)
	return ix, err
}
