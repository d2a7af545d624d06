package system

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

var ProgramKey [32]byte

const (
	commandCreateAccount       uint32 = 0
	commandTransfer            uint32 = 2
	commandAdvanceNonceAccount uint32 = 4
)

var CreateAccountSchema = solana.Schema{
	Name:    "system/create_account",
	Program: solana.Constant("program", ProgramKey[:]),
	Slots: []solana.SlotSpec{
		solana.Input("funder").Writable().Signer(),
		solana.Input("address").Writable().Signer(),
	},
}

var TransferSchema = solana.Schema{
	Name:    "system/transfer",
	Program: solana.Constant("program", ProgramKey[:]),
	Slots: []solana.SlotSpec{
		solana.Input("from").Writable().Signer(),
		solana.Input("to").Writable(),
	},
}

var AdvanceNonceSchema = solana.Schema{
	Name:    "system/advance_nonce",
	Program: solana.Constant("program", ProgramKey[:]),
	Slots: []solana.SlotSpec{
		solana.Input("nonce").Writable(),
		solana.Constant("recent_blockhashes", RecentBlockhashesSysVar),
		solana.Input("authority").Signer(),
	},
}

type CreateAccountArgs struct {
	Lamports cosmath.Int
	Size     uint64
	Owner    ed25519.PublicKey
}

func (a *CreateAccountArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(CreateAccountSchema.Name).
		U32("command", commandCreateAccount).
		Amount("lamports", a.Lamports).
		U64("space", a.Size).
		Key("owner", a.Owner).
		Bytes()
}

// CreateAccount allocates size bytes for address, funds it with lamports and
// assigns it to owner.
//
// Reference: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/system_instruction.rs#L58-L72
func CreateAccount(funder, address, owner ed25519.PublicKey, lamports cosmath.Int, size uint64) (solana.Instruction, error) {
	// # Account references
	//   0. [WRITE, SIGNER] Funding account
	//   1. [WRITE, SIGNER] New account
	ix, _, err := CreateAccountSchema.Compose(
		solana.Inputs{}.
			SetKey("funder", funder).
			SetKey("address", address),
		&CreateAccountArgs{
			Lamports: lamports,
			Size:     size,
			Owner:    owner,
		},
	)
	return ix, err
}

type TransferArgs struct {
	Lamports cosmath.Int
}

func (a *TransferArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(TransferSchema.Name).
		U32("command", commandTransfer).
		Amount("lamports", a.Lamports).
		Bytes()
}

// Transfer moves lamports between two system owned accounts.
//
// Reference: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/system_instruction.rs#L74-L80
func Transfer(from, to ed25519.PublicKey, lamports cosmath.Int) (solana.Instruction, error) {
	ix, _, err := TransferSchema.Compose(
		solana.Inputs{}.
			SetKey("from", from).
			SetKey("to", to),
		&TransferArgs{Lamports: lamports},
	)
	return ix, err
}

type advanceNonceArgs struct{}

func (advanceNonceArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(AdvanceNonceSchema.Name).
		U32("command", commandAdvanceNonceAccount).
		Bytes()
}

// Reference: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/system_instruction.rs#L113-L119
func AdvanceNonce(nonce, authority ed25519.PublicKey) (solana.Instruction, error) {
	// # Account references
	//   0. [WRITE] Nonce account
	//   1. [] RecentBlockhashes sysvar
	//   2. [SIGNER] Nonce authority
	ix, _, err := AdvanceNonceSchema.Compose(
		solana.Inputs{}.
			SetKey("nonce", nonce).
			SetKey("authority", authority),
		advanceNonceArgs{},
	)
	return ix, err
}
