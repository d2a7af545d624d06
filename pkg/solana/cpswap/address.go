package cpswap

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"

	"github.com/code-payments/ixkit/pkg/solana"
)

var (
	AmmConfigPrefix   = []byte("amm_config")
	AuthorityPrefix   = []byte("vault_and_lp_mint_auth_seed")
	PoolPrefix        = []byte("pool")
	PoolLpMintPrefix  = []byte("pool_lp_mint")
	PoolVaultPrefix   = []byte("pool_vault")
	ObservationPrefix = []byte("observation")
)

// AmmConfigIndexSeed encodes an amm config index the way the program seeds
// it: big endian, unlike everything else it serializes.
func AmmConfigIndexSeed(index uint16) []byte {
	seed := make([]byte, 2)
	binary.BigEndian.PutUint16(seed, index)
	return seed
}

// SortMints orders a pair of mints the way pools store them, token 0 being
// the smaller key. The second return value is true when the pair was swapped.
func SortMints(a, b ed25519.PublicKey) (token0, token1 ed25519.PublicKey, swapped bool) {
	if bytes.Compare(a, b) > 0 {
		return b, a, true
	}
	return a, b, false
}

type GetAmmConfigAddressArgs struct {
	Program ed25519.PublicKey
	Index   uint16
}

func GetAmmConfigAddress(args *GetAmmConfigAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.Program,
		AmmConfigPrefix,
		AmmConfigIndexSeed(args.Index),
	)
}

type GetAuthorityAddressArgs struct {
	Program ed25519.PublicKey
}

func GetAuthorityAddress(args *GetAuthorityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.Program,
		AuthorityPrefix,
	)
}

type GetPoolStateAddressArgs struct {
	Program   ed25519.PublicKey
	AmmConfig ed25519.PublicKey
	Token0    ed25519.PublicKey
	Token1    ed25519.PublicKey
}

func GetPoolStateAddress(args *GetPoolStateAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.Program,
		PoolPrefix,
		args.AmmConfig,
		args.Token0,
		args.Token1,
	)
}

type GetPoolVaultAddressArgs struct {
	Program ed25519.PublicKey
	Pool    ed25519.PublicKey
	Mint    ed25519.PublicKey
}

func GetPoolVaultAddress(args *GetPoolVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.Program,
		PoolVaultPrefix,
		args.Pool,
		args.Mint,
	)
}

var (
	programRef = solana.InputRef("program")

	authoritySlot = solana.Derived(
		"authority",
		programRef,
		solana.Literal(AuthorityPrefix),
	)
)

func poolVaultSlot(name, mint string) solana.SlotSpec {
	return solana.Derived(
		name,
		programRef,
		solana.Literal(PoolVaultPrefix),
		solana.SlotRef("pool_state"),
		solana.SlotRef(mint),
	)
}

func observationSlot(name string) solana.SlotSpec {
	return solana.Derived(
		name,
		programRef,
		solana.Literal(ObservationPrefix),
		solana.SlotRef("pool_state"),
	)
}
