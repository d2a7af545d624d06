package token

import (
	"crypto/ed25519"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/system"
)

// AssociatedTokenAccountProgramKey  is the address of the associated token account program that should be used.
//
// Current key: ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL
var AssociatedTokenAccountProgramKey = ed25519.PublicKey{140, 151, 37, 143, 78, 36, 137, 241, 187, 61, 16, 41, 20, 142, 13, 131, 11, 90, 19, 153, 218, 255, 16, 132, 4, 142, 123, 216, 219, 233, 248, 89}

// The create instruction carries no data, only the idempotent variant is
// tagged.
const commandCreateIdempotent byte = 1

// AssociatedAccountSlot is a schema slot holding the associated token account
// of wallet for mint under tokenProgram. Other program packages use it for
// their ATA slots.
func AssociatedAccountSlot(name string, wallet, tokenProgram, mint solana.SeedRef) solana.SlotSpec {
	return solana.Derived(
		name,
		solana.KeyRef(AssociatedTokenAccountProgramKey),
		wallet,
		tokenProgram,
		mint,
	)
}

// GetAssociatedAccount returns the associated account address for a legacy
// SPL token.
//
// Reference: https://spl.solana.com/associated-token-account#finding-the-associated-token-account-address
func GetAssociatedAccount(wallet, mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	return GetAssociatedAccountWithProgram(wallet, mint, ProgramKey)
}

// GetAssociatedAccountWithProgram returns the associated account address for
// a mint owned by tokenProgram, legacy or Token-2022.
func GetAssociatedAccountWithProgram(wallet, mint, tokenProgram ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		AssociatedTokenAccountProgramKey,
		wallet,
		tokenProgram,
		mint,
	)
}

var createAssociatedAccountSlots = []solana.SlotSpec{
	solana.Input("payer").Writable().Signer(),
	AssociatedAccountSlot("associated_account", solana.SlotRef("wallet"), solana.SlotRef("token_program"), solana.SlotRef("mint")).Writable(),
	solana.Input("wallet"),
	solana.Input("mint"),
	solana.Constant("system_program", system.ProgramKey[:]),
	solana.Input("token_program"),
}

var CreateAssociatedAccountSchema = solana.Schema{
	Name:    "associated_token/create",
	Program: solana.Constant("program", AssociatedTokenAccountProgramKey),
	Slots:   createAssociatedAccountSlots,
}

var CreateAssociatedAccountIdempotentSchema = solana.Schema{
	Name:    "associated_token/create_idempotent",
	Program: solana.Constant("program", AssociatedTokenAccountProgramKey),
	Slots:   createAssociatedAccountSlots,
}

type rawArgs []byte

func (a rawArgs) Encode() ([]byte, error) {
	return a, nil
}

// CreateAssociatedTokenAccount creates the associated account of wallet for
// mint. The transaction fails if the account already exists.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/0639953c7dd0f5228c3ceda3ba68fece3b46ff1d/associated-token-account/program/src/lib.rs#L54
func CreateAssociatedTokenAccount(subsidizer, wallet, mint, tokenProgram ed25519.PublicKey) (solana.Instruction, ed25519.PublicKey, error) {
	return createAssociatedTokenAccount(&CreateAssociatedAccountSchema, nil, subsidizer, wallet, mint, tokenProgram)
}

// CreateAssociatedTokenAccountIdempotent is CreateAssociatedTokenAccount that
// succeeds when the account already exists.
func CreateAssociatedTokenAccountIdempotent(subsidizer, wallet, mint, tokenProgram ed25519.PublicKey) (solana.Instruction, ed25519.PublicKey, error) {
	return createAssociatedTokenAccount(&CreateAssociatedAccountIdempotentSchema, []byte{commandCreateIdempotent}, subsidizer, wallet, mint, tokenProgram)
}

func createAssociatedTokenAccount(schema *solana.Schema, data []byte, subsidizer, wallet, mint, tokenProgram ed25519.PublicKey) (solana.Instruction, ed25519.PublicKey, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writeable,signer]` Funding account (must be a system account)
	//   1. `[writeable]` Associated token account address to be created
	//   2. `[]` Wallet address for the new associated token account
	//   3. `[]` The token mint for the new associated token account
	//   4. `[]` System program
	//   5. `[]` SPL Token program
	ix, filled, err := schema.Compose(
		solana.Inputs{}.
			SetKey("payer", subsidizer).
			SetKey("wallet", wallet).
			SetKey("mint", mint).
			SetKey("token_program", tokenProgram),
		rawArgs(data),
	)
	if err != nil {
		return solana.Instruction{}, nil, err
	}
	return ix, filled.Address("associated_account"), nil
}
