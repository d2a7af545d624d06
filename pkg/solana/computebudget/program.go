package compute_budget

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

// ComputeBudget111111111111111111111111111111
var ProgramKey = ed25519.PublicKey{3, 6, 70, 111, 229, 33, 23, 50, 255, 236, 173, 186, 114, 195, 155, 231, 188, 140, 229, 187, 197, 247, 18, 107, 44, 67, 155, 58, 64, 0, 0, 0}

const (
	commandRequestUnits uint8 = iota
	commandRequestHeapFrame
	commandSetComputeUnitLimit
	commandSetComputeUnitPrice
)

// The compute budget program takes no accounts.
var (
	SetComputeUnitLimitSchema = solana.Schema{
		Name:    "compute_budget/set_compute_unit_limit",
		Program: solana.Constant("program", ProgramKey),
	}

	SetComputeUnitPriceSchema = solana.Schema{
		Name:    "compute_budget/set_compute_unit_price",
		Program: solana.Constant("program", ProgramKey),
	}
)

type setComputeUnitLimitArgs uint32

func (a setComputeUnitLimitArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(SetComputeUnitLimitSchema.Name).
		U8("command", commandSetComputeUnitLimit).
		U32("units", uint32(a)).
		Bytes()
}

type setComputeUnitPriceArgs uint64

func (a setComputeUnitPriceArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(SetComputeUnitPriceSchema.Name).
		U8("command", commandSetComputeUnitPrice).
		U64("micro_lamports", uint64(a)).
		Bytes()
}

func SetComputeUnitLimit(computeUnitLimit uint32) (solana.Instruction, error) {
	ix, _, err := SetComputeUnitLimitSchema.Compose(solana.Inputs{}, setComputeUnitLimitArgs(computeUnitLimit))
	return ix, err
}

// SetComputeUnitPrice sets the priority fee, in micro-lamports per compute
// unit.
func SetComputeUnitPrice(computeUnitPrice uint64) (solana.Instruction, error) {
	ix, _, err := SetComputeUnitPriceSchema.Compose(solana.Inputs{}, setComputeUnitPriceArgs(computeUnitPrice))
	return ix, err
}

func ParseSetComputeUnitLimitIxnData(data []byte) (uint32, error) {
	if len(data) != 5 {
		return 0, errors.New("invalid length")
	}

	if data[0] != commandSetComputeUnitLimit {
		return 0, errors.New("invalid instruction")
	}

	var limit uint32
	if err := bin.NewBorshDecoder(data[1:]).Decode(&limit); err != nil {
		return 0, errors.Wrap(err, "failed to decode compute unit limit")
	}
	return limit, nil
}

func ParseSetComputeUnitPriceIxnData(data []byte) (uint64, error) {
	if len(data) != 9 {
		return 0, errors.New("invalid length")
	}

	if data[0] != commandSetComputeUnitPrice {
		return 0, errors.New("invalid instruction")
	}

	var price uint64
	if err := bin.NewBorshDecoder(data[1:]).Decode(&price); err != nil {
		return 0, errors.Wrap(err, "failed to decode compute unit price")
	}
	return price, nil
}
