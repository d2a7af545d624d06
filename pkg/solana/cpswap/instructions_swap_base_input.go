package cpswap

import (
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

var SwapBaseInputSchema = solana.Schema{
	Name:    "cpswap/swap_base_input",
	Program: solana.Input("program"),
	Slots: []solana.SlotSpec{
		solana.Input("payer").Signer(),
		authoritySlot,
		solana.Input("amm_config"),
		solana.Input("pool_state").Writable(),
		solana.Input("input_token_account").Writable(),
		solana.Input("output_token_account").Writable(),
		poolVaultSlot("input_vault", "input_token_mint").Writable(),
		poolVaultSlot("output_vault", "output_token_mint").Writable(),
		solana.Input("input_token_program"),
		solana.Input("output_token_program"),
		solana.Input("input_token_mint"),
		solana.Input("output_token_mint"),
		observationSlot("observation_state").Writable(),
	},
}

type SwapBaseInputInstructionArgs struct {
	AmountIn         cosmath.Int
	MinimumAmountOut cosmath.Int
}

func (a *SwapBaseInputInstructionArgs) Encode() ([]byte, error) {
	return binary.NewEncoder(SwapBaseInputSchema.Name).
		Discriminator(SwapBaseInputInstructionDiscriminator).
		Amount("amount_in", a.AmountIn).
		Amount("minimum_amount_out", a.MinimumAmountOut).
		Bytes()
}

type SwapBaseInputInstructionAccounts struct {
	Program            ed25519.PublicKey
	Payer              ed25519.PublicKey
	AmmConfig          ed25519.PublicKey
	PoolState          ed25519.PublicKey
	InputTokenAccount  ed25519.PublicKey
	OutputTokenAccount ed25519.PublicKey
	InputTokenProgram  ed25519.PublicKey
	OutputTokenProgram ed25519.PublicKey
	InputTokenMint     ed25519.PublicKey
	OutputTokenMint    ed25519.PublicKey
}

// NewSwapBaseInputInstruction swaps an exact input amount for at least
// MinimumAmountOut of the other side of the pool.
func NewSwapBaseInputInstruction(
	accounts *SwapBaseInputInstructionAccounts,
	args *SwapBaseInputInstructionArgs,
) (solana.Instruction, error) {
	ix, _, err := SwapBaseInputSchema.Compose(
		solana.Inputs{}.
			SetKey("program", accounts.Program).
			SetKey("payer", accounts.Payer).
			SetKey("amm_config", accounts.AmmConfig).
			SetKey("pool_state", accounts.PoolState).
			SetKey("input_token_account", accounts.InputTokenAccount).
			SetKey("output_token_account", accounts.OutputTokenAccount).
			SetKey("input_token_program", accounts.InputTokenProgram).
			SetKey("output_token_program", accounts.OutputTokenProgram).
			SetKey("input_token_mint", accounts.InputTokenMint).
			SetKey("output_token_mint", accounts.OutputTokenMint),
		args,
	)
	return ix, err
}
