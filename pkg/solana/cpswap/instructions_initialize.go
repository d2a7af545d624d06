package cpswap

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

var InitializeSchema = solana.Schema{
	Name:    "cpswap/initialize",
	Program: solana.Input("program"),
	Slots: []solana.SlotSpec{
		solana.Input("creator").Writable().Signer(),
		solana.Derived("amm_config", programRef, solana.Literal(AmmConfigPrefix), solana.InputRef("amm_config_index")),
		authoritySlot,
		solana.Derived("pool_state", programRef, solana.Literal(PoolPrefix), solana.SlotRef("amm_config"), solana.SlotRef("token_0_mint"), solana.SlotRef("token_1_mint")).Writable(),
		solana.Input("token_0_mint"),
		solana.Input("token_1_mint"),
		solana.Derived("lp_mint", programRef, solana.Literal(PoolLpMintPrefix), solana.SlotRef("pool_state")).Writable(),
		solana.Input("creator_token_0").Writable(),
		solana.Input("creator_token_1").Writable(),
		// The lp mint is always a legacy token mint.
		token.AssociatedAccountSlot("creator_lp_token", solana.SlotRef("creator"), solana.KeyRef(SPL_TOKEN_PROGRAM_ID), solana.SlotRef("lp_mint")).Writable(),
		poolVaultSlot("token_0_vault", "token_0_mint").Writable(),
		poolVaultSlot("token_1_vault", "token_1_mint").Writable(),
		solana.Input("create_pool_fee").Writable(),
		observationSlot("observation_state").Writable(),
		solana.Constant("token_program", SPL_TOKEN_PROGRAM_ID),
		solana.Input("token_0_program"),
		solana.Input("token_1_program"),
		solana.Constant("associated_token_program", ASSOCIATED_TOKEN_PROGRAM_ID),
		solana.Constant("system_program", SYSTEM_PROGRAM_ID),
		solana.Constant("rent", SYSVAR_RENT_PUBKEY),
	},
}

type InitializeInstructionArgs struct {
	InitAmount0 cosmath.Int
	InitAmount1 cosmath.Int
	OpenTime    uint64
}

func (a *InitializeInstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(InitializeSchema.Name).
		Discriminator(InitializeInstructionDiscriminator).
		Amount("init_amount_0", a.InitAmount0).
		Amount("init_amount_1", a.InitAmount1).
		U64("open_time", a.OpenTime).
		Bytes()
}

// InitializeInstructionAccounts are the caller supplied accounts of a pool
// initialization. Token0Mint must sort before Token1Mint, see SortMints.
type InitializeInstructionAccounts struct {
	Program        ed25519.PublicKey
	AmmConfigIndex uint16

	Creator       ed25519.PublicKey
	Token0Mint    ed25519.PublicKey
	Token1Mint    ed25519.PublicKey
	Token0Program ed25519.PublicKey
	Token1Program ed25519.PublicKey
	CreatorToken0 ed25519.PublicKey
	CreatorToken1 ed25519.PublicKey
	CreatePoolFee ed25519.PublicKey
}

// NewInitializeInstruction creates a pool and seeds it with the creator's
// initial liquidity. The filled plan exposes the derived pool accounts.
func NewInitializeInstruction(
	accounts *InitializeInstructionAccounts,
	args *InitializeInstructionArgs,
) (solana.Instruction, *solana.FilledPlan, error) {
	return InitializeSchema.Compose(
		solana.Inputs{
			"amm_config_index": AmmConfigIndexSeed(accounts.AmmConfigIndex),
		}.
			SetKey("program", accounts.Program).
			SetKey("creator", accounts.Creator).
			SetKey("token_0_mint", accounts.Token0Mint).
			SetKey("token_1_mint", accounts.Token1Mint).
			SetKey("token_0_program", accounts.Token0Program).
			SetKey("token_1_program", accounts.Token1Program).
			SetKey("creator_token_0", accounts.CreatorToken0).
			SetKey("creator_token_1", accounts.CreatorToken1).
			SetKey("create_pool_fee", accounts.CreatePoolFee),
		args,
	)
}
