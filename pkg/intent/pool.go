package intent

import (
	"context"
	"crypto/ed25519"
	"math"

	cosmath "cosmossdk.io/math"
	"github.com/pkg/errors"

	"github.com/code-payments/ixkit/pkg/solana/cpswap"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

type InitializePoolArgs struct {
	Creator ed25519.PublicKey

	// Mints in any order. Nil programs default to the legacy token program.
	MintA        ed25519.PublicKey
	MintB        ed25519.PublicKey
	MintAProgram ed25519.PublicKey
	MintBProgram ed25519.PublicKey

	AmountA  cosmath.Int
	AmountB  cosmath.Int
	OpenTime uint64
}

// InitializePool creates a constant product pool for two mints and seeds it
// from the creator's associated token accounts.
func (c *Composer) InitializePool(ctx context.Context, args *InitializePoolArgs) (*Intent, error) {
	return c.compose(ctx, "InitializePool", func(intent *Intent) error {
		index, err := c.ammConfigIndex(ctx)
		if err != nil {
			return err
		}

		programA, programB := orLegacy(args.MintAProgram), orLegacy(args.MintBProgram)
		amountA, amountB := args.AmountA, args.AmountB

		token0, token1, swapped := cpswap.SortMints(args.MintA, args.MintB)
		if swapped {
			programA, programB = programB, programA
			amountA, amountB = amountB, amountA
		}

		creatorToken0, err := c.associatedAccount(args.Creator, token0, programA)
		if err != nil {
			return errors.Wrap(err, "error getting creator token 0 account")
		}
		creatorToken1, err := c.associatedAccount(args.Creator, token1, programB)
		if err != nil {
			return errors.Wrap(err, "error getting creator token 1 account")
		}

		budget, err := c.computeBudget(ctx)
		if err != nil {
			return err
		}
		intent.add(budget...)

		initialize, filled, err := cpswap.NewInitializeInstruction(
			&cpswap.InitializeInstructionAccounts{
				Program:        c.conf.cpSwapProgram.Get(ctx),
				AmmConfigIndex: index,
				Creator:        args.Creator,
				Token0Mint:     token0,
				Token1Mint:     token1,
				Token0Program:  programA,
				Token1Program:  programB,
				CreatorToken0:  creatorToken0,
				CreatorToken1:  creatorToken1,
				CreatePoolFee:  c.conf.cpSwapCreatePoolFeeReceiver.Get(ctx),
			},
			&cpswap.InitializeInstructionArgs{
				InitAmount0: amountA,
				InitAmount1: amountB,
				OpenTime:    args.OpenTime,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating initialize pool instruction")
		}
		intent.add(initialize)

		for _, name := range []string{
			"amm_config",
			"pool_state",
			"lp_mint",
			"creator_lp_token",
			"token_0_vault",
			"token_1_vault",
			"observation_state",
		} {
			intent.Accounts[name] = filled.Address(name)
		}
		return nil
	})
}

type SwapArgs struct {
	Payer ed25519.PublicKey

	// Nil programs default to the legacy token program.
	InputMint          ed25519.PublicKey
	OutputMint         ed25519.PublicKey
	InputTokenProgram  ed25519.PublicKey
	OutputTokenProgram ed25519.PublicKey

	AmountIn         cosmath.Int
	MinimumAmountOut cosmath.Int
}

// Swap trades an exact input amount against the pool of the two mints under
// the configured amm config. The payer's output token account is created
// first unless associated account creation is disabled.
func (c *Composer) Swap(ctx context.Context, args *SwapArgs) (*Intent, error) {
	return c.compose(ctx, "Swap", func(intent *Intent) error {
		program := c.conf.cpSwapProgram.Get(ctx)

		index, err := c.ammConfigIndex(ctx)
		if err != nil {
			return err
		}

		inputProgram, outputProgram := orLegacy(args.InputTokenProgram), orLegacy(args.OutputTokenProgram)

		ammConfig, _, err := cpswap.GetAmmConfigAddress(&cpswap.GetAmmConfigAddressArgs{
			Program: program,
			Index:   index,
		})
		if err != nil {
			return errors.Wrap(err, "error getting amm config address")
		}

		token0, token1, _ := cpswap.SortMints(args.InputMint, args.OutputMint)
		poolState, _, err := cpswap.GetPoolStateAddress(&cpswap.GetPoolStateAddressArgs{
			Program:   program,
			AmmConfig: ammConfig,
			Token0:    token0,
			Token1:    token1,
		})
		if err != nil {
			return errors.Wrap(err, "error getting pool state address")
		}

		inputAccount, err := c.associatedAccount(args.Payer, args.InputMint, inputProgram)
		if err != nil {
			return errors.Wrap(err, "error getting input token account")
		}
		outputAccount, err := c.associatedAccount(args.Payer, args.OutputMint, outputProgram)
		if err != nil {
			return errors.Wrap(err, "error getting output token account")
		}

		budget, err := c.computeBudget(ctx)
		if err != nil {
			return err
		}
		intent.add(budget...)

		if c.conf.createAssociatedAccounts.Get(ctx) {
			create, _, err := token.CreateAssociatedTokenAccountIdempotent(args.Payer, args.Payer, args.OutputMint, outputProgram)
			if err != nil {
				return errors.Wrap(err, "error creating associated account instruction")
			}
			intent.add(create)
		}

		swap, err := cpswap.NewSwapBaseInputInstruction(
			&cpswap.SwapBaseInputInstructionAccounts{
				Program:            program,
				Payer:              args.Payer,
				AmmConfig:          ammConfig,
				PoolState:          poolState,
				InputTokenAccount:  inputAccount,
				OutputTokenAccount: outputAccount,
				InputTokenProgram:  inputProgram,
				OutputTokenProgram: outputProgram,
				InputTokenMint:     args.InputMint,
				OutputTokenMint:    args.OutputMint,
			},
			&cpswap.SwapBaseInputInstructionArgs{
				AmountIn:         args.AmountIn,
				MinimumAmountOut: args.MinimumAmountOut,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating swap instruction")
		}
		intent.add(swap)

		intent.Accounts["amm_config"] = ammConfig
		intent.Accounts["pool_state"] = poolState
		return nil
	})
}

func (c *Composer) ammConfigIndex(ctx context.Context) (uint16, error) {
	index := c.conf.cpSwapAmmConfigIndex.Get(ctx)
	if index > math.MaxUint16 {
		return 0, errors.Errorf("amm config index %d exceeds %d", index, math.MaxUint16)
	}
	return uint16(index), nil
}

func orLegacy(tokenProgram ed25519.PublicKey) ed25519.PublicKey {
	if tokenProgram == nil {
		return token.ProgramKey
	}
	return tokenProgram
}
