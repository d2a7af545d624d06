package solana

import (
	"crypto/ed25519"
)

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// Instruction represents a transaction instruction.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
//
// It is used by the fixed-layout programs (memo, compute budget) that have no
// account schema. Inputs are copied.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	metas := make([]AccountMeta, len(accounts))
	for i, a := range accounts {
		metas[i] = AccountMeta{
			PublicKey:  copyKey(a.PublicKey),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		}
	}

	return Instruction{
		Program:  copyKey(program),
		Data:     append([]byte{}, data...),
		Accounts: metas,
	}
}

// Assemble builds an instruction from filled slots and an encoded payload.
//
// Slot order and flags are kept as given. Every slot must carry a 32 byte
// address, otherwise ErrUnresolvedSlot is returned naming the first offending
// slot. Nothing from the arguments is aliased by the result.
func Assemble(program ed25519.PublicKey, slots []FilledSlot, data []byte) (Instruction, error) {
	if len(program) != ed25519.PublicKeySize {
		return Instruction{}, &SchemaError{Slot: "program", Err: ErrUnresolvedSlot}
	}

	metas := make([]AccountMeta, len(slots))
	for i, slot := range slots {
		if len(slot.Address) != ed25519.PublicKeySize {
			return Instruction{}, &SchemaError{Slot: slot.Name, Err: ErrUnresolvedSlot}
		}

		metas[i] = AccountMeta{
			PublicKey:  copyKey(slot.Address),
			IsSigner:   slot.IsSigner,
			IsWritable: slot.IsWritable,
		}
	}

	return Instruction{
		Program:  copyKey(program),
		Accounts: metas,
		Data:     append([]byte{}, data...),
	}, nil
}
