package intent

import (
	"context"
	"crypto/ed25519"

	cosmath "cosmossdk.io/math"
	"github.com/pkg/errors"

	"github.com/code-payments/ixkit/pkg/pointer"
	"github.com/code-payments/ixkit/pkg/solana/metadata"
	"github.com/code-payments/ixkit/pkg/solana/system"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

type DeployMintArgs struct {
	Payer    ed25519.PublicKey
	Mint     ed25519.PublicKey
	Decimals uint8

	Asset               metadata.AssetData
	PrintSupply         *metadata.PrintSupply
	CreateMasterEdition bool

	// RentExemption is the mint account's funding in lamports. It's computed
	// locally when unset.
	RentExemption cosmath.Int
}

// DeployMint creates and initializes a mint, then attaches metadata to it.
// The payer is the mint and freeze authority, and the metadata update
// authority. Both the payer and the mint sign.
func (c *Composer) DeployMint(ctx context.Context, args *DeployMintArgs) (*Intent, error) {
	return c.compose(ctx, "DeployMint", func(intent *Intent) error {
		tokenProgram := c.conf.tokenProgram.Get(ctx)

		lamports := args.RentExemption
		if lamports.IsNil() {
			lamports = cosmath.NewIntFromUint64(system.MinimumBalanceForRentExemption(token.MintSize))
		}

		createAccount, err := system.CreateAccount(args.Payer, args.Mint, tokenProgram, lamports, token.MintSize)
		if err != nil {
			return errors.Wrap(err, "error creating mint account instruction")
		}

		initializeMint, err := token.InitializeMint2(tokenProgram, args.Mint, args.Payer, args.Payer, args.Decimals)
		if err != nil {
			return errors.Wrap(err, "error creating initialize mint instruction")
		}

		createMetadata, err := metadata.NewCreateV1Instruction(
			&metadata.CreateV1InstructionAccounts{
				Mint:                    args.Mint,
				Authority:               args.Payer,
				Payer:                   args.Payer,
				UpdateAuthority:         args.Payer,
				UpdateAuthorityIsSigner: true,
				CreateMasterEdition:     args.CreateMasterEdition,
				SplTokenProgram:         tokenProgram,
			},
			&metadata.CreateV1InstructionArgs{
				AssetData:   args.Asset,
				Decimals:    pointer.Uint8(args.Decimals),
				PrintSupply: args.PrintSupply,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating metadata instruction")
		}

		intent.add(createAccount, initializeMint, createMetadata)
		intent.Accounts["mint"] = args.Mint
		intent.Accounts["metadata"] = createMetadata.Accounts[0].PublicKey
		if args.CreateMasterEdition {
			intent.Accounts["master_edition"] = createMetadata.Accounts[1].PublicKey
		}
		return nil
	})
}

type MintToArgs struct {
	Mint      ed25519.PublicKey
	Recipient ed25519.PublicKey
	Authority ed25519.PublicKey
	Amount    cosmath.Int

	// CreateAccount prepends an idempotent creation of the recipient's
	// associated token account, paid for by the authority.
	CreateAccount bool
}

// MintTo mints Amount base units into the associated token account of the
// recipient.
func (c *Composer) MintTo(ctx context.Context, args *MintToArgs) (*Intent, error) {
	return c.compose(ctx, "MintTo", func(intent *Intent) error {
		tokenProgram := c.conf.tokenProgram.Get(ctx)

		if args.CreateAccount {
			create, _, err := token.CreateAssociatedTokenAccountIdempotent(args.Authority, args.Recipient, args.Mint, tokenProgram)
			if err != nil {
				return errors.Wrap(err, "error creating associated account instruction")
			}
			intent.add(create)
		}

		mintTo, err := token.MintTo(tokenProgram, args.Mint, args.Recipient, args.Authority, args.Amount)
		if err != nil {
			return errors.Wrap(err, "error creating mint to instruction")
		}
		intent.add(mintTo)

		intent.Accounts["destination"] = mintTo.Accounts[1].PublicKey
		return nil
	})
}

type MintWithMetadataArgs struct {
	Mint      ed25519.PublicKey
	Owner     ed25519.PublicKey
	Authority ed25519.PublicKey
	Payer     ed25519.PublicKey
	Amount    cosmath.Int
}

// MintWithMetadata mints through the metadata program, which creates the
// owner's associated token account when it's missing.
func (c *Composer) MintWithMetadata(ctx context.Context, args *MintWithMetadataArgs) (*Intent, error) {
	return c.compose(ctx, "MintWithMetadata", func(intent *Intent) error {
		mint, err := metadata.NewMintV1Instruction(
			&metadata.MintV1InstructionAccounts{
				TokenOwner:      args.Owner,
				Mint:            args.Mint,
				Authority:       args.Authority,
				Payer:           args.Payer,
				SplTokenProgram: c.conf.tokenProgram.Get(ctx),
			},
			&metadata.MintV1InstructionArgs{
				Amount: args.Amount,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating metadata mint instruction")
		}
		intent.add(mint)

		intent.Accounts["token"] = mint.Accounts[0].PublicKey
		return nil
	})
}

type TransferArgs struct {
	Mint      ed25519.PublicKey
	Owner     ed25519.PublicKey
	Recipient ed25519.PublicKey
	Payer     ed25519.PublicKey
	Amount    cosmath.Int
}

// Transfer moves tokens through the metadata program. The owner signs as the
// transfer authority.
func (c *Composer) Transfer(ctx context.Context, args *TransferArgs) (*Intent, error) {
	return c.compose(ctx, "Transfer", func(intent *Intent) error {
		transfer, err := metadata.NewTransferV1Instruction(
			&metadata.TransferV1InstructionAccounts{
				TokenOwner:       args.Owner,
				DestinationOwner: args.Recipient,
				Mint:             args.Mint,
				Authority:        args.Owner,
				Payer:            args.Payer,
				SplTokenProgram:  c.conf.tokenProgram.Get(ctx),
			},
			&metadata.TransferV1InstructionArgs{
				Amount: args.Amount,
			},
		)
		if err != nil {
			return errors.Wrap(err, "error creating metadata transfer instruction")
		}
		intent.add(transfer)

		intent.Accounts["source"] = transfer.Accounts[0].PublicKey
		intent.Accounts["destination"] = transfer.Accounts[2].PublicKey
		return nil
	})
}

type TransferTokensArgs struct {
	Mint      ed25519.PublicKey
	Owner     ed25519.PublicKey
	Recipient ed25519.PublicKey
	Amount    cosmath.Int
	Decimals  uint8

	// CreateAccount prepends an idempotent creation of the recipient's
	// associated token account. Payer funds it, or the owner when nil.
	CreateAccount bool
	Payer         ed25519.PublicKey
}

// TransferTokens is a checked transfer through the token program.
func (c *Composer) TransferTokens(ctx context.Context, args *TransferTokensArgs) (*Intent, error) {
	return c.compose(ctx, "TransferTokens", func(intent *Intent) error {
		tokenProgram := c.conf.tokenProgram.Get(ctx)

		if args.CreateAccount {
			payer := args.Payer
			if payer == nil {
				payer = args.Owner
			}
			create, _, err := token.CreateAssociatedTokenAccountIdempotent(payer, args.Recipient, args.Mint, tokenProgram)
			if err != nil {
				return errors.Wrap(err, "error creating associated account instruction")
			}
			intent.add(create)
		}

		transfer, err := token.TransferChecked(tokenProgram, args.Mint, args.Owner, args.Recipient, args.Amount, args.Decimals)
		if err != nil {
			return errors.Wrap(err, "error creating transfer instruction")
		}
		intent.add(transfer)

		intent.Accounts["source"] = transfer.Accounts[0].PublicKey
		intent.Accounts["destination"] = transfer.Accounts[2].PublicKey
		return nil
	})
}

// Freeze freezes the owner's associated token account.
func (c *Composer) Freeze(ctx context.Context, mint, owner, authority ed25519.PublicKey) (*Intent, error) {
	return c.compose(ctx, "Freeze", func(intent *Intent) error {
		freeze, err := token.FreezeAccount(c.conf.tokenProgram.Get(ctx), mint, owner, authority)
		if err != nil {
			return errors.Wrap(err, "error creating freeze instruction")
		}
		intent.add(freeze)

		intent.Accounts["account"] = freeze.Accounts[0].PublicKey
		return nil
	})
}

// Thaw thaws the owner's associated token account.
func (c *Composer) Thaw(ctx context.Context, mint, owner, authority ed25519.PublicKey) (*Intent, error) {
	return c.compose(ctx, "Thaw", func(intent *Intent) error {
		thaw, err := token.ThawAccount(c.conf.tokenProgram.Get(ctx), mint, owner, authority)
		if err != nil {
			return errors.Wrap(err, "error creating thaw instruction")
		}
		intent.add(thaw)

		intent.Accounts["account"] = thaw.Accounts[0].PublicKey
		return nil
	})
}

// TransferSOL moves lamports between two system accounts.
func (c *Composer) TransferSOL(ctx context.Context, from, to ed25519.PublicKey, lamports cosmath.Int) (*Intent, error) {
	return c.compose(ctx, "TransferSOL", func(intent *Intent) error {
		transfer, err := system.Transfer(from, to, lamports)
		if err != nil {
			return errors.Wrap(err, "error creating transfer instruction")
		}
		intent.add(transfer)

		return nil
	})
}
