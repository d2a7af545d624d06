package metadata

import (
	"crypto/ed25519"

	"github.com/code-payments/ixkit/pkg/solana"
)

var (
	MetadataPrefix = []byte("metadata")
	EditionPrefix  = []byte("edition")
)

type GetMetadataAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetMetadataAddress(args *GetMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetadataPrefix,
		PROGRAM_ID,
		args.Mint,
	)
}

type GetMasterEditionAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetMasterEditionAddress(args *GetMasterEditionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetadataPrefix,
		PROGRAM_ID,
		args.Mint,
		EditionPrefix,
	)
}

// MetadataAccountSlot is a schema slot holding the metadata account of mint.
// Programs that create metadata through CPI use it for their metadata slot.
func MetadataAccountSlot(name string, mint solana.SeedRef) solana.SlotSpec {
	return solana.Derived(
		name,
		solana.KeyRef(PROGRAM_ID),
		solana.Literal(MetadataPrefix),
		solana.KeyRef(PROGRAM_ID),
		mint,
	)
}

func masterEditionSlot(name string) solana.SlotSpec {
	return solana.Derived(
		name,
		solana.KeyRef(PROGRAM_ID),
		solana.Literal(MetadataPrefix),
		solana.KeyRef(PROGRAM_ID),
		solana.SlotRef("mint"),
		solana.Literal(EditionPrefix),
	)
}

// Optional accounts the caller doesn't supply are passed as the program id,
// read-only, which the program treats as None.
func placeholderSlot(name string) solana.SlotSpec {
	return solana.Constant(name, PROGRAM_ID)
}
