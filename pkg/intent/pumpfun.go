package intent

import (
	"context"
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"
	"github.com/pkg/errors"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/pumpfun"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

type BuyArgs struct {
	Mint       ed25519.PublicKey
	User       ed25519.PublicKey
	Amount     cosmath.Int
	MaxSolCost cosmath.Int
}

// Buy buys tokens off a pump.fun bonding curve. The user's token account is
// created first unless associated account creation is disabled.
func (c *Composer) Buy(ctx context.Context, args *BuyArgs) (*Intent, error) {
	return c.compose(ctx, "Buy", func(intent *Intent) error {
		budget, err := c.computeBudget(ctx)
		if err != nil {
			return err
		}
		intent.add(budget...)

		ixns, err := c.buy(ctx, args)
		if err != nil {
			return err
		}
		intent.add(ixns...)

		intent.Accounts["token_account"] = ixns[len(ixns)-1].Accounts[5].PublicKey
		return nil
	})
}

func (c *Composer) buy(ctx context.Context, args *BuyArgs) ([]solana.Instruction, error) {
	var ixns []solana.Instruction

	// Bonding curve mints are always legacy SPL tokens
	if c.conf.createAssociatedAccounts.Get(ctx) {
		create, _, err := token.CreateAssociatedTokenAccountIdempotent(args.User, args.User, args.Mint, token.ProgramKey)
		if err != nil {
			return nil, errors.Wrap(err, "error creating associated account instruction")
		}
		ixns = append(ixns, create)
	}

	buy, err := pumpfun.NewBuyInstruction(
		&pumpfun.BuyInstructionAccounts{
			Mint:         args.Mint,
			User:         args.User,
			FeeRecipient: c.conf.pumpFeeRecipient.Get(ctx),
		},
		&pumpfun.BuyInstructionArgs{
			Amount:     args.Amount,
			MaxSolCost: args.MaxSolCost,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "error creating buy instruction")
	}
	return append(ixns, buy), nil
}

type SellArgs struct {
	Mint         ed25519.PublicKey
	User         ed25519.PublicKey
	Amount       cosmath.Int
	MinSolOutput cosmath.Int
}

// Sell sells tokens back into a pump.fun bonding curve.
func (c *Composer) Sell(ctx context.Context, args *SellArgs) (*Intent, error) {
	return c.compose(ctx, "Sell", func(intent *Intent) error {
		budget, err := c.computeBudget(ctx)
		if err != nil {
			return err
		}
		intent.add(budget...)

		sell, err := pumpfun.NewSellInstruction(
			&pumpfun.SellInstructionAccounts{
				Mint:         args.Mint,
				User:         args.User,
				FeeRecipient: c.conf.pumpFeeRecipient.Get(ctx),
			},
			&pumpfun.SellInstructionArgs{
				Amount:       args.Amount,
				MinSolOutput: args.MinSolOutput,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating sell instruction")
		}
		intent.add(sell)

		intent.Accounts["token_account"] = sell.Accounts[5].PublicKey
		return nil
	})
}

type LaunchArgs struct {
	Mint   ed25519.PublicKey
	User   ed25519.PublicKey
	Name   string
	Symbol string
	Uri    string

	// BuyAmount, when set and positive, has the creator buy into the curve
	// in the same transaction.
	BuyAmount  cosmath.Int
	MaxSolCost cosmath.Int
}

// Launch creates a mint on a fresh bonding curve, optionally followed by an
// initial buy from the creator.
func (c *Composer) Launch(ctx context.Context, args *LaunchArgs) (*Intent, error) {
	return c.compose(ctx, "Launch", func(intent *Intent) error {
		budget, err := c.computeBudget(ctx)
		if err != nil {
			return err
		}
		intent.add(budget...)

		create, err := pumpfun.NewCreateInstruction(
			&pumpfun.CreateInstructionAccounts{
				Mint: args.Mint,
				User: args.User,
			},
			&pumpfun.CreateInstructionArgs{
				Name:   args.Name,
				Symbol: args.Symbol,
				Uri:    args.Uri,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating launch instruction")
		}
		intent.add(create)

		intent.Accounts["bonding_curve"] = create.Accounts[2].PublicKey
		intent.Accounts["associated_bonding_curve"] = create.Accounts[3].PublicKey
		intent.Accounts["metadata"] = create.Accounts[6].PublicKey

		if !args.BuyAmount.IsNil() && args.BuyAmount.IsPositive() {
			ixns, err := c.buy(ctx, &BuyArgs{
				Mint:       args.Mint,
				User:       args.User,
				Amount:     args.BuyAmount,
				MaxSolCost: args.MaxSolCost,
			})
			if err != nil {
				return err
			}
			intent.add(ixns...)
		}

		return nil
	})
}
