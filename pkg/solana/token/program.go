package token

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
	"github.com/code-payments/ixkit/pkg/solana/system"
)

// ProgramKey is the address of the legacy token program.
//
// Current key: TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA
var ProgramKey = ed25519.PublicKey{6, 221, 246, 225, 215, 101, 161, 147, 217, 203, 225, 70, 206, 235, 121, 172, 28, 180, 133, 237, 95, 91, 55, 145, 58, 140, 245, 133, 126, 255, 0, 169}

// Program2022Key is the address of the Token-2022 program. It accepts the
// same instruction layouts as the legacy program for everything built here.
//
// Current key: TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb
var Program2022Key = ed25519.PublicKey{6, 221, 246, 225, 238, 117, 143, 222, 24, 66, 93, 188, 228, 108, 205, 218, 182, 26, 252, 77, 131, 185, 13, 39, 254, 189, 249, 40, 216, 161, 139, 252}

const (
	// MintSize is the size of an initialized mint account without extensions.
	MintSize = 82

	// AccountSize is the size of an initialized token account without
	// extensions.
	AccountSize = 165
)

type Command byte

const (
	CommandInitializeMint Command = iota
	CommandInitializeAccount
	CommandInitializeMultisig
	CommandTransfer
	CommandApprove
	CommandRevoke
	CommandSetAuthority
	CommandMintTo
	CommandBurn
	CommandCloseAccount
	CommandFreezeAccount
	CommandThawAccount
	CommandTransferChecked

	CommandInitializeMint2 Command = 20
)

type AuthorityType byte

const (
	AuthorityTypeMintTokens AuthorityType = iota
	AuthorityTypeFreezeAccount
	AuthorityTypeAccountHolder
	AuthorityTypeCloseAccount

	authorityTypeCount
)

var (
	tokenProgramInput = solana.Input("token_program")
	tokenProgramRef   = solana.InputKeyRef("token_program")
)

var InitializeMint2Schema = solana.Schema{
	Name:    "token/initialize_mint2",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		solana.Input("mint").Writable(),
	},
}

var InitializeMintSchema = solana.Schema{
	Name:    "token/initialize_mint",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		solana.Input("mint").Writable(),
		solana.Constant("rent", system.RentSysVar),
	},
}

var InitializeAccountSchema = solana.Schema{
	Name:    "token/initialize_account",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		solana.Input("account").Writable(),
		solana.Input("mint"),
		solana.Input("owner"),
		solana.Constant("rent", system.RentSysVar),
	},
}

var MintToSchema = solana.Schema{
	Name:    "token/mint_to",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		solana.Input("mint").Writable(),
		AssociatedAccountSlot("destination", solana.InputKeyRef("owner"), tokenProgramRef, solana.SlotRef("mint")).Writable(),
		solana.Input("authority").Signer(),
	},
}

var TransferSchema = solana.Schema{
	Name:    "token/transfer",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		AssociatedAccountSlot("source", solana.SlotRef("owner"), tokenProgramRef, solana.InputKeyRef("mint")).Writable(),
		AssociatedAccountSlot("destination", solana.InputKeyRef("recipient"), tokenProgramRef, solana.InputKeyRef("mint")).Writable(),
		solana.Input("owner").Signer(),
	},
}

var TransferCheckedSchema = solana.Schema{
	Name:    "token/transfer_checked",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		AssociatedAccountSlot("source", solana.SlotRef("owner"), tokenProgramRef, solana.SlotRef("mint")).Writable(),
		solana.Input("mint"),
		AssociatedAccountSlot("destination", solana.InputKeyRef("recipient"), tokenProgramRef, solana.SlotRef("mint")).Writable(),
		solana.Input("owner").Signer(),
	},
}

var FreezeAccountSchema = solana.Schema{
	Name:    "token/freeze_account",
	Program: tokenProgramInput,
	Slots:   freezeSlots,
}

var ThawAccountSchema = solana.Schema{
	Name:    "token/thaw_account",
	Program: tokenProgramInput,
	Slots:   freezeSlots,
}

var freezeSlots = []solana.SlotSpec{
	AssociatedAccountSlot("account", solana.InputKeyRef("owner"), tokenProgramRef, solana.SlotRef("mint")).Writable(),
	solana.Input("mint"),
	solana.Input("authority").Signer(),
}

var SetAuthoritySchema = solana.Schema{
	Name:    "token/set_authority",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		solana.Input("account").Writable(),
		solana.Input("current_authority").Signer(),
	},
}

var CloseAccountSchema = solana.Schema{
	Name:    "token/close_account",
	Program: tokenProgramInput,
	Slots: []solana.SlotSpec{
		solana.Input("account").Writable(),
		solana.Input("destination").Writable(),
		solana.Input("owner").Signer(),
	},
}

type InitializeMintArgs struct {
	instruction     string
	command         Command
	Decimals        uint8
	MintAuthority   ed25519.PublicKey
	FreezeAuthority ed25519.PublicKey
}

func (a *InitializeMintArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(a.instruction).
		U8("command", byte(a.command)).
		U8("decimals", a.Decimals).
		Key("mint_authority", a.MintAuthority).
		OptionalKey("freeze_authority", a.FreezeAuthority).
		Bytes()
}

// InitializeMint2 initializes a mint without requiring the rent sysvar. A nil
// freezeAuthority leaves the mint without one.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L409-L425
func InitializeMint2(tokenProgram, mint, mintAuthority, freezeAuthority ed25519.PublicKey, decimals uint8) (solana.Instruction, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` The mint to initialize.
	ix, _, err := InitializeMint2Schema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("mint", mint),
		&InitializeMintArgs{
			instruction:     InitializeMint2Schema.Name,
			command:         CommandInitializeMint2,
			Decimals:        decimals,
			MintAuthority:   mintAuthority,
			FreezeAuthority: freezeAuthority,
		},
	)
	return ix, err
}

// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L24-L39
func InitializeMint(tokenProgram, mint, mintAuthority, freezeAuthority ed25519.PublicKey, decimals uint8) (solana.Instruction, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` The mint to initialize.
	//   1. `[]` Rent sysvar
	ix, _, err := InitializeMintSchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("mint", mint),
		&InitializeMintArgs{
			instruction:     InitializeMintSchema.Name,
			command:         CommandInitializeMint,
			Decimals:        decimals,
			MintAuthority:   mintAuthority,
			FreezeAuthority: freezeAuthority,
		},
	)
	return ix, err
}

type commandArgs Command

func (a commandArgs) Encode() ([]byte, error) {
	return []byte{byte(a)}, nil
}

// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L41-L55
func InitializeAccount(tokenProgram, account, mint, owner ed25519.PublicKey) (solana.Instruction, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]`  The account to initialize.
	//   1. `[]` The mint this account will be associated with.
	//   2. `[]` The new account's owner/multisignature.
	//   3. `[]` Rent sysvar
	ix, _, err := InitializeAccountSchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("account", account).
			SetKey("mint", mint).
			SetKey("owner", owner),
		commandArgs(CommandInitializeAccount),
	)
	return ix, err
}

type AmountArgs struct {
	instruction string
	command     Command
	Amount      cosmath.Int
}

func (a *AmountArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(a.instruction).
		U8("command", byte(a.command)).
		Amount("amount", a.Amount).
		Bytes()
}

// MintTo mints amount base units into the associated account of owner, which
// must already exist.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L141-L155
func MintTo(tokenProgram, mint, owner, authority ed25519.PublicKey, amount cosmath.Int) (solana.Instruction, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` The mint.
	//   1. `[writable]` The account to mint tokens to.
	//   2. `[signer]` The mint's minting authority.
	ix, _, err := MintToSchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("mint", mint).
			SetKey("owner", owner).
			SetKey("authority", authority),
		&AmountArgs{
			instruction: MintToSchema.Name,
			command:     CommandMintTo,
			Amount:      amount,
		},
	)
	return ix, err
}

// Transfer moves amount base units between the associated accounts of owner
// and recipient.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L76-L91
func Transfer(tokenProgram, mint, owner, recipient ed25519.PublicKey, amount cosmath.Int) (solana.Instruction, error) {
	//   * Single owner/delegate
	//   0. `[writable]` The source account.
	//   1. `[writable]` The destination account.
	//   2. `[signer]` The source account's owner/delegate.
	ix, _, err := TransferSchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("mint", mint).
			SetKey("owner", owner).
			SetKey("recipient", recipient),
		&AmountArgs{
			instruction: TransferSchema.Name,
			command:     CommandTransfer,
			Amount:      amount,
		},
	)
	return ix, err
}

type TransferCheckedArgs struct {
	Amount   cosmath.Int
	Decimals uint8
}

func (a *TransferCheckedArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(TransferCheckedSchema.Name).
		U8("command", byte(CommandTransferChecked)).
		Amount("amount", a.Amount).
		U8("decimals", a.Decimals).
		Bytes()
}

// TransferChecked is Transfer with the mint and its decimals checked by the
// program.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L230-L252
func TransferChecked(tokenProgram, mint, owner, recipient ed25519.PublicKey, amount cosmath.Int, decimals uint8) (solana.Instruction, error) {
	//   * Single owner/delegate
	//   0. `[writable]` The source account.
	//   1. `[]` The token mint.
	//   2. `[writable]` The destination account.
	//   3. `[signer]` The source account's owner/delegate.
	ix, _, err := TransferCheckedSchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("mint", mint).
			SetKey("owner", owner).
			SetKey("recipient", recipient),
		&TransferCheckedArgs{
			Amount:   amount,
			Decimals: decimals,
		},
	)
	return ix, err
}

// FreezeAccount freezes the associated account of owner.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L198-L210
func FreezeAccount(tokenProgram, mint, owner, authority ed25519.PublicKey) (solana.Instruction, error) {
	return freezeOrThaw(&FreezeAccountSchema, CommandFreezeAccount, tokenProgram, mint, owner, authority)
}

// ThawAccount thaws the associated account of owner.
func ThawAccount(tokenProgram, mint, owner, authority ed25519.PublicKey) (solana.Instruction, error) {
	return freezeOrThaw(&ThawAccountSchema, CommandThawAccount, tokenProgram, mint, owner, authority)
}

func freezeOrThaw(schema *solana.Schema, command Command, tokenProgram, mint, owner, authority ed25519.PublicKey) (solana.Instruction, error) {
	//   0. `[writable]` The account to freeze or thaw.
	//   1. `[]` The token mint.
	//   2. `[signer]` The mint freeze authority.
	ix, _, err := schema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("mint", mint).
			SetKey("owner", owner).
			SetKey("authority", authority),
		commandArgs(command),
	)
	return ix, err
}

type SetAuthorityArgs struct {
	Type         AuthorityType
	NewAuthority ed25519.PublicKey
}

func (a *SetAuthorityArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(SetAuthoritySchema.Name).
		U8("command", byte(CommandSetAuthority)).
		Enum("authority_type", byte(a.Type), byte(authorityTypeCount)).
		OptionalKey("new_authority", a.NewAuthority).
		Bytes()
}

// SetAuthority sets a new authority of a mint or account. A nil newAuthority
// removes the authority.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L128-L139
func SetAuthority(tokenProgram, account, currentAuthority, newAuthority ed25519.PublicKey, authorityType AuthorityType) (solana.Instruction, error) {
	//   * Single authority
	//   0. `[writable]` The mint or account to change the authority of.
	//   1. `[signer]` The current authority of the mint or account.
	ix, _, err := SetAuthoritySchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("account", account).
			SetKey("current_authority", currentAuthority),
		&SetAuthorityArgs{
			Type:         authorityType,
			NewAuthority: newAuthority,
		},
	)
	return ix, err
}

// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L183-L197
func CloseAccount(tokenProgram, account, dest, owner ed25519.PublicKey) (solana.Instruction, error) {
	//   * Single owner
	//   0. `[writable]` The account to close.
	//   1. `[writable]` The destination account.
	//   2. `[signer]` The account's owner.
	ix, _, err := CloseAccountSchema.Compose(
		solana.Inputs{}.
			SetKey("token_program", tokenProgram).
			SetKey("account", account).
			SetKey("destination", dest).
			SetKey("owner", owner),
		commandArgs(CommandCloseAccount),
	)
	return ix, err
}
