package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"math"

	"github.com/jdgcs/ed25519/edwards25519"
	"github.com/pkg/errors"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32

	programDerivedAddressMarker = "ProgramDerivedAddress"
)

var (
	programHashCtor = sha256.New
)

// DerivationResult is a program derived address along with the bump seed
// that was appended to the seeds to push it off the curve.
//
// The bump cannot be recovered from the address alone, so anything that needs
// to re-create the address on-chain (ie. instruction args that carry a bump)
// must keep it around.
type DerivationResult struct {
	Address ed25519.PublicKey
	Bump    uint8
}

// CreateProgramAddress mirrors the implementation of the Solana SDK's CreateProgramAddress.
//
// ProgramAddresses are public keys that _do not_ lie on the ed25519 curve to ensure that
// there is no associated private key. In the event that the program and seed parameters
// result in a valid public key, ErrInvalidPublicKey is returned.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L158
func CreateProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}

	return createProgramAddress(program, seeds)
}

func createProgramAddress(program ed25519.PublicKey, seeds [][]byte) (ed25519.PublicKey, error) {
	h := programHashCtor()
	for _, s := range seeds {
		if _, err := h.Write(s); err != nil {
			return nil, errors.Wrap(err, "failed to hash seed")
		}
	}

	for _, v := range [][]byte{program, []byte(programDerivedAddressMarker)} {
		if _, err := h.Write(v); err != nil {
			return nil, errors.Wrap(err, "failed to hash seed")
		}
	}

	hash := h.Sum(nil)
	var pub [32]byte
	copy(pub[:], hash)

	// Following the Solana SDK, we want to _reject_ the generated public key
	// if it's a valid compressed EdwardsPoint.
	//
	// The edwards25519.ExtendedGroupElement (the EdwardsPoint) is internal to
	// the golang.org/x/crypto library, so we rely on the jdgcs fork which
	// exposes FromBytes.
	//
	// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L182-L187
	var A edwards25519.ExtendedGroupElement
	if A.FromBytes(&pub) {
		return nil, ErrInvalidPublicKey
	}

	return pub[:], nil
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > maxSeeds {
		return errors.Wrapf(ErrTooManySeeds, "%d seeds (max %d)", len(seeds), maxSeeds)
	}

	for i, s := range seeds {
		if len(s) > maxSeedLength {
			return errors.Wrapf(ErrSeedTooLong, "seed %d is %d bytes (max %d)", i, len(s), maxSeedLength)
		}
	}

	return nil
}

// Derive searches for the program derived address of the provided seeds.
//
// Bumps are tried from 255 down to 0 and the first candidate that falls off
// the curve wins, which matches the Solana SDK's FindProgramAddress. Seed
// limits are checked before any hashing happens. The bump occupies one of the
// 16 seed positions, so at most 15 caller seeds are accepted.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L234
func Derive(program ed25519.PublicKey, seeds ...[]byte) (DerivationResult, error) {
	if len(seeds) > maxSeeds-1 {
		return DerivationResult{}, errors.Wrapf(ErrTooManySeeds, "%d seeds (max %d with bump)", len(seeds), maxSeeds-1)
	}
	if err := validateSeeds(seeds); err != nil {
		return DerivationResult{}, err
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	bumpSeed := []byte{math.MaxUint8}
	withBump[len(seeds)] = bumpSeed

	for bump := math.MaxUint8; bump >= 0; bump-- {
		bumpSeed[0] = uint8(bump)

		pub, err := createProgramAddress(program, withBump)
		if err == nil {
			return DerivationResult{Address: pub, Bump: uint8(bump)}, nil
		}
		if err != ErrInvalidPublicKey {
			return DerivationResult{}, err
		}
	}

	return DerivationResult{}, ErrDerivationExhausted
}

// FindProgramAddressAndBump is Derive with the result unpacked.
func FindProgramAddressAndBump(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	res, err := Derive(program, seeds...)
	if err != nil {
		return nil, 0, err
	}
	return res.Address, res.Bump, nil
}

// FindProgramAddress mirrors the implementation of the Solana SDK's FindProgramAddress.
// It only returns the address.
func FindProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	res, err := Derive(program, seeds...)
	return res.Address, err
}
