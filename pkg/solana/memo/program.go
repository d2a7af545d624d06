package memo

import (
	"crypto/ed25519"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/code-payments/ixkit/pkg/solana"
)

// ProgramKey is the address of the memo program that should be used.
//
// Current key: Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo
var ProgramKey = ed25519.PublicKey{5, 74, 83, 80, 248, 93, 200, 130, 214, 20, 165, 86, 114, 120, 138, 41, 109, 223, 30, 171, 171, 208, 166, 6, 120, 136, 73, 50, 244, 238, 246, 160}

// Instruction returns a memo instruction. Every signer must sign the
// enclosing transaction; the program rejects payloads that aren't UTF-8.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/master/memo/program/src/entrypoint.rs
func Instruction(data string, signers ...ed25519.PublicKey) (solana.Instruction, error) {
	if !utf8.ValidString(data) {
		return solana.Instruction{}, &solana.FieldError{
			Instruction: "memo",
			Field:       "memo",
			Reason:      "invalid utf-8",
			Err:         solana.ErrArgumentOutOfRange,
		}
	}

	accounts := make([]solana.AccountMeta, len(signers))
	for i, signer := range signers {
		if len(signer) != ed25519.PublicKeySize {
			return solana.Instruction{}, &solana.SchemaError{
				Instruction: "memo",
				Slot:        "signer",
				Err:         errors.Wrapf(solana.ErrMissingAccountInput, "signer %d is %d bytes", i, len(signer)),
			}
		}
		accounts[i] = solana.NewReadonlyAccountMeta(signer, true)
	}

	return solana.NewInstruction(
		ProgramKey,
		[]byte(data),
		accounts...,
	), nil
}
