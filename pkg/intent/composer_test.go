package intent

import (
	"context"
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	cosmath "cosmossdk.io/math"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/ixkit/pkg/config/memory"
	"github.com/code-payments/ixkit/pkg/config/wrapper"
	"github.com/code-payments/ixkit/pkg/solana"
	compute_budget "github.com/code-payments/ixkit/pkg/solana/computebudget"
	"github.com/code-payments/ixkit/pkg/solana/cpswap"
	"github.com/code-payments/ixkit/pkg/solana/metadata"
	"github.com/code-payments/ixkit/pkg/solana/pumpfun"
	"github.com/code-payments/ixkit/pkg/solana/system"
	"github.com/code-payments/ixkit/pkg/solana/token"
	"github.com/code-payments/ixkit/pkg/testutil"
)

var (
	pumpMint = mustDecode("CcQWG2M56Z1ESomovmzjvNPuDXBjHype7PoQPP2Zpump")
	wsolMint = mustDecode("So11111111111111111111111111111111111111112")
	usdcMint = mustDecode("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
)

func TestDeployMint(t *testing.T) {
	ctx := context.Background()
	payer := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.DeployMint(ctx, &DeployMintArgs{
		Payer:    payer,
		Mint:     pumpMint,
		Decimals: 9,
		Asset: metadata.AssetData{
			Name:                 "Test",
			Symbol:               "TST",
			Uri:                  "https://example.com/test.json",
			SellerFeeBasisPoints: 500,
			IsMutable:            true,
			TokenStandard:        metadata.TokenStandardFungible,
		},
		CreateMasterEdition: true,
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 3)
	assert.Equal(t, "DeployMint", intent.Name)

	createAccount := intent.Instructions[0]
	assert.EqualValues(t, system.ProgramKey[:], createAccount.Program)
	assert.Equal(t, []solana.AccountMeta{
		solana.NewAccountMeta(payer, true),
		solana.NewAccountMeta(pumpMint, true),
	}, createAccount.Accounts)
	require.Len(t, createAccount.Data, 52)
	assert.EqualValues(t, 1461600, binary.LittleEndian.Uint64(createAccount.Data[4:12]))
	assert.EqualValues(t, token.MintSize, binary.LittleEndian.Uint64(createAccount.Data[12:20]))
	assert.EqualValues(t, token.Program2022Key, createAccount.Data[20:])

	initializeMint := intent.Instructions[1]
	assert.EqualValues(t, token.Program2022Key, initializeMint.Program)

	createMetadata := intent.Instructions[2]
	assert.EqualValues(t, metadata.PROGRAM_ID, createMetadata.Program)
	assert.Equal(t, "91FD9mRuZA99255N5HFvhEageTWtcLYqys5RnK52u7pw", base58.Encode(intent.Accounts["metadata"]))
	assert.Equal(t, "HNEeg5o1aWTf2Ux3Z72rHzECTHUWfFLgUhxADxd1vxgF", base58.Encode(intent.Accounts["master_edition"]))
	assert.EqualValues(t, pumpMint, intent.Accounts["mint"])
	assert.EqualValues(t, token.Program2022Key, createMetadata.Accounts[len(createMetadata.Accounts)-1].PublicKey)
}

func TestDeployMint_RentOverrideAndLegacyProgram(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 2)
	payer, mint := keys[0], keys[1]

	composer := NewComposer(WithOverrides(&Overrides{TokenProgram: token.ProgramKey}))
	intent, err := composer.DeployMint(ctx, &DeployMintArgs{
		Payer:         payer,
		Mint:          mint,
		Decimals:      6,
		Asset:         metadata.AssetData{Name: "A", TokenStandard: metadata.TokenStandardFungible},
		RentExemption: cosmath.NewInt(2_000_000),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 3)

	assert.EqualValues(t, 2_000_000, binary.LittleEndian.Uint64(intent.Instructions[0].Data[4:12]))
	assert.EqualValues(t, token.ProgramKey, intent.Instructions[0].Data[20:])
	assert.EqualValues(t, token.ProgramKey, intent.Instructions[1].Program)
	assert.NotContains(t, intent.Accounts, "master_edition")
}

func TestDeployMint_InvalidAsset(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	composer := NewComposer(WithOverrides(&Overrides{}))
	_, err := composer.DeployMint(context.Background(), &DeployMintArgs{
		Payer: keys[0],
		Mint:  keys[1],
		Asset: metadata.AssetData{Symbol: "WAYTOOLONGSYMBOL"},
	})
	testutil.AssertFieldError(t, err, "symbol")
}

func TestMintTo(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 3)
	mint, recipient, authority := keys[0], keys[1], keys[2]

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.MintTo(ctx, &MintToArgs{
		Mint:          mint,
		Recipient:     recipient,
		Authority:     authority,
		Amount:        cosmath.NewInt(1_000),
		CreateAccount: true,
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 2)

	destination, err := token.GetAssociatedAccountWithProgram(recipient, mint, token.Program2022Key)
	require.NoError(t, err)
	assert.EqualValues(t, destination, intent.Accounts["destination"])

	create := intent.Instructions[0]
	assert.EqualValues(t, token.AssociatedTokenAccountProgramKey, create.Program)
	assert.Equal(t, []byte{1}, create.Data)
	assert.EqualValues(t, authority, create.Accounts[0].PublicKey)
	assert.EqualValues(t, destination, create.Accounts[1].PublicKey)

	mintTo := intent.Instructions[1]
	assert.EqualValues(t, token.Program2022Key, mintTo.Program)
	assert.EqualValues(t, destination, mintTo.Accounts[1].PublicKey)
	assert.EqualValues(t, 1_000, binary.LittleEndian.Uint64(mintTo.Data[1:]))

	intent, err = composer.MintTo(ctx, &MintToArgs{
		Mint:      mint,
		Recipient: recipient,
		Authority: authority,
		Amount:    cosmath.NewInt(1),
	})
	require.NoError(t, err)
	assert.Len(t, intent.Instructions, 1)
}

func TestMintTo_MissingRecipient(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	composer := NewComposer(WithOverrides(&Overrides{}))
	_, err := composer.MintTo(context.Background(), &MintToArgs{
		Mint:      keys[0],
		Authority: keys[1],
		Amount:    cosmath.NewInt(1),
	})
	testutil.AssertSchemaError(t, err, "destination", solana.ErrMissingAccountInput)
}

func TestMintWithMetadataAndTransfer(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 4)
	mint, owner, recipient, payer := keys[0], keys[1], keys[2], keys[3]

	composer := NewComposer(WithOverrides(&Overrides{TokenProgram: token.ProgramKey}))

	intent, err := composer.MintWithMetadata(ctx, &MintWithMetadataArgs{
		Mint:      mint,
		Owner:     owner,
		Authority: payer,
		Payer:     payer,
		Amount:    cosmath.NewInt(5),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 1)
	assert.EqualValues(t, metadata.PROGRAM_ID, intent.Instructions[0].Program)

	ownerAccount, err := token.GetAssociatedAccount(owner, mint)
	require.NoError(t, err)
	assert.EqualValues(t, ownerAccount, intent.Accounts["token"])

	intent, err = composer.Transfer(ctx, &TransferArgs{
		Mint:      mint,
		Owner:     owner,
		Recipient: recipient,
		Payer:     payer,
		Amount:    cosmath.NewInt(5),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 1)

	recipientAccount, err := token.GetAssociatedAccount(recipient, mint)
	require.NoError(t, err)
	assert.EqualValues(t, ownerAccount, intent.Accounts["source"])
	assert.EqualValues(t, recipientAccount, intent.Accounts["destination"])
}

func TestTransferTokens(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 3)
	mint, owner, recipient := keys[0], keys[1], keys[2]

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.TransferTokens(ctx, &TransferTokensArgs{
		Mint:          mint,
		Owner:         owner,
		Recipient:     recipient,
		Amount:        cosmath.NewInt(42),
		Decimals:      9,
		CreateAccount: true,
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 2)

	// The owner pays for the recipient account when no payer is given
	assert.EqualValues(t, owner, intent.Instructions[0].Accounts[0].PublicKey)

	transfer := intent.Instructions[1]
	assert.EqualValues(t, token.Program2022Key, transfer.Program)
	assert.Equal(t, []byte{byte(token.CommandTransferChecked), 42, 0, 0, 0, 0, 0, 0, 0, 9}, transfer.Data)

	destination, err := token.GetAssociatedAccountWithProgram(recipient, mint, token.Program2022Key)
	require.NoError(t, err)
	assert.EqualValues(t, destination, intent.Accounts["destination"])
}

func TestFreezeAndThaw(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 3)
	mint, owner, authority := keys[0], keys[1], keys[2]

	account, err := token.GetAssociatedAccountWithProgram(owner, mint, token.Program2022Key)
	require.NoError(t, err)

	composer := NewComposer(WithOverrides(&Overrides{}))

	freeze, err := composer.Freeze(ctx, mint, owner, authority)
	require.NoError(t, err)
	require.Len(t, freeze.Instructions, 1)
	assert.EqualValues(t, token.Program2022Key, freeze.Instructions[0].Program)
	assert.Equal(t, []byte{byte(token.CommandFreezeAccount)}, freeze.Instructions[0].Data)
	assert.EqualValues(t, account, freeze.Accounts["account"])

	thaw, err := composer.Thaw(ctx, mint, owner, authority)
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(token.CommandThawAccount)}, thaw.Instructions[0].Data)
	assert.EqualValues(t, account, thaw.Accounts["account"])
}

func TestTransferSOL(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 2)

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.TransferSOL(context.Background(), keys[0], keys[1], cosmath.NewInt(10))
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 1)
	assert.Equal(t, []byte{2, 0, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0}, intent.Instructions[0].Data)

	_, err = composer.TransferSOL(context.Background(), keys[0], keys[1], cosmath.NewInt(-1))
	assert.True(t, errors.Is(err, solana.ErrArgumentOutOfRange))
}

func TestBuy(t *testing.T) {
	ctx := context.Background()
	user := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.Buy(ctx, &BuyArgs{
		Mint:       pumpMint,
		User:       user,
		Amount:     cosmath.NewInt(1_000_000),
		MaxSolCost: cosmath.NewInt(10_000_000),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 2)

	userAccount, err := token.GetAssociatedAccount(user, pumpMint)
	require.NoError(t, err)

	create := intent.Instructions[0]
	assert.EqualValues(t, token.AssociatedTokenAccountProgramKey, create.Program)
	assert.EqualValues(t, userAccount, create.Accounts[1].PublicKey)
	assert.EqualValues(t, token.ProgramKey, create.Accounts[5].PublicKey)

	buy := intent.Instructions[1]
	assert.EqualValues(t, pumpfun.PROGRAM_ID, buy.Program)
	assert.EqualValues(t, pumpfun.FEE_RECIPIENT, buy.Accounts[1].PublicKey)
	assert.Equal(t, "Ab4DiSUzi4tHLkE2W1k4W24mvmFoxsMvKCcpfNixNTJF", base58.Encode(buy.Accounts[3].PublicKey))
	assert.EqualValues(t, userAccount, intent.Accounts["token_account"])
}

func TestBuy_ConfiguredFeeRecipientAndComputeBudget(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 2)
	user, feeRecipient := keys[0], keys[1]

	composer := NewComposer(WithOverrides(&Overrides{
		DisableAssociatedAccounts: true,
		PumpFeeRecipient:          feeRecipient,
		ComputeUnitLimit:          200_000,
		ComputeUnitPrice:          1_000,
	}))
	intent, err := composer.Buy(ctx, &BuyArgs{
		Mint:       pumpMint,
		User:       user,
		Amount:     cosmath.NewInt(1),
		MaxSolCost: cosmath.NewInt(1),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 3)

	limit := intent.Instructions[0]
	assert.EqualValues(t, compute_budget.ProgramKey, limit.Program)
	parsedLimit, err := compute_budget.ParseSetComputeUnitLimitIxnData(limit.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 200_000, parsedLimit)

	price := intent.Instructions[1]
	assert.EqualValues(t, compute_budget.ProgramKey, price.Program)
	parsedPrice, err := compute_budget.ParseSetComputeUnitPriceIxnData(price.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000, parsedPrice)

	assert.EqualValues(t, feeRecipient, intent.Instructions[2].Accounts[1].PublicKey)
}

func TestSell(t *testing.T) {
	user := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.Sell(context.Background(), &SellArgs{
		Mint:         pumpMint,
		User:         user,
		Amount:       cosmath.NewInt(1_000),
		MinSolOutput: cosmath.NewInt(0),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 1)

	sell := intent.Instructions[0]
	assert.Equal(t, pumpfun.SellInstructionDiscriminator[:], sell.Data[:8])

	userAccount, err := token.GetAssociatedAccount(user, pumpMint)
	require.NoError(t, err)
	assert.EqualValues(t, userAccount, intent.Accounts["token_account"])
}

func TestLaunch(t *testing.T) {
	ctx := context.Background()
	user := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))

	args := &LaunchArgs{
		Mint:   pumpMint,
		User:   user,
		Name:   "Pump",
		Symbol: "PMP",
		Uri:    "https://example.com/pump.json",
	}

	intent, err := composer.Launch(ctx, args)
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 1)
	assert.Equal(t, pumpfun.CreateInstructionDiscriminator[:], intent.Instructions[0].Data[:8])
	assert.Equal(t, "Ab4DiSUzi4tHLkE2W1k4W24mvmFoxsMvKCcpfNixNTJF", base58.Encode(intent.Accounts["bonding_curve"]))
	assert.Equal(t, "YhTHuJANfML4Zd54mpDpCXYCeJp7qjPUJhpQoX8d6BT", base58.Encode(intent.Accounts["associated_bonding_curve"]))
	assert.Equal(t, "91FD9mRuZA99255N5HFvhEageTWtcLYqys5RnK52u7pw", base58.Encode(intent.Accounts["metadata"]))

	args.BuyAmount = cosmath.NewInt(0)
	intent, err = composer.Launch(ctx, args)
	require.NoError(t, err)
	assert.Len(t, intent.Instructions, 1)

	args.BuyAmount = cosmath.NewInt(500)
	args.MaxSolCost = cosmath.NewInt(1_000)
	intent, err = composer.Launch(ctx, args)
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 3)
	assert.EqualValues(t, token.AssociatedTokenAccountProgramKey, intent.Instructions[1].Program)
	assert.Equal(t, pumpfun.BuyInstructionDiscriminator[:], intent.Instructions[2].Data[:8])

	args.Symbol = "WAYTOOLONGSYMBOL"
	_, err = composer.Launch(ctx, args)
	testutil.AssertFieldError(t, err, "symbol")
}

func TestInitializePool(t *testing.T) {
	ctx := context.Background()
	creator := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))

	// USDC sorts after wSOL, so the amounts and programs are swapped to match.
	intent, err := composer.InitializePool(ctx, &InitializePoolArgs{
		Creator:      creator,
		MintA:        usdcMint,
		MintB:        wsolMint,
		MintAProgram: token.Program2022Key,
		AmountA:      cosmath.NewInt(100),
		AmountB:      cosmath.NewInt(200),
		OpenTime:     7,
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 1)

	for name, expected := range map[string]string{
		"amm_config":        "D4FPEruKEHrG5TenZ2mpDGEfu1iUvTiqBxvpU8HLBvC2",
		"pool_state":        "HcYqyPP6VNqtT1txrzZHKd4nK6iN7tQdw92Zt4BYuynE",
		"lp_mint":           "AivudR3w1r7y4nbMLKUQzWiETykxxYE2j4vLvivGTmU5",
		"token_0_vault":     "Cc78yDcjC8SFvsPcVqfbmC8cMMix7ivbKoUYCug5raAV",
		"token_1_vault":     "BD6udtEjzxRB8rjBMsQ6mDj6FZLYaDDrA1mM3Z5merim",
		"observation_state": "7ACMJi2TA5BS98PNtkrAx8vKfmzsadMe2NKpnKdsfVLT",
	} {
		assert.Equal(t, expected, base58.Encode(intent.Accounts[name]), name)
	}

	initialize := intent.Instructions[0]
	assert.EqualValues(t, cpswap.MAINNET_PROGRAM_ID, initialize.Program)
	assert.Equal(t, cpswap.InitializeInstructionDiscriminator[:], initialize.Data[:8])
	assert.EqualValues(t, 200, binary.LittleEndian.Uint64(initialize.Data[8:16]))
	assert.EqualValues(t, 100, binary.LittleEndian.Uint64(initialize.Data[16:24]))
	assert.EqualValues(t, 7, binary.LittleEndian.Uint64(initialize.Data[24:32]))

	creatorToken0, err := token.GetAssociatedAccountWithProgram(creator, wsolMint, token.ProgramKey)
	require.NoError(t, err)
	creatorToken1, err := token.GetAssociatedAccountWithProgram(creator, usdcMint, token.Program2022Key)
	require.NoError(t, err)

	assert.EqualValues(t, wsolMint, initialize.Accounts[4].PublicKey)
	assert.EqualValues(t, usdcMint, initialize.Accounts[5].PublicKey)
	assert.EqualValues(t, creatorToken0, initialize.Accounts[7].PublicKey)
	assert.EqualValues(t, creatorToken1, initialize.Accounts[8].PublicKey)
	assert.EqualValues(t, cpswap.MAINNET_CREATE_POOL_FEE_RECEIVER, initialize.Accounts[12].PublicKey)
	assert.EqualValues(t, token.ProgramKey, initialize.Accounts[15].PublicKey)
	assert.EqualValues(t, token.Program2022Key, initialize.Accounts[16].PublicKey)
}

func TestInitializePool_AmmConfigIndexOutOfRange(t *testing.T) {
	t.Setenv(CpSwapAmmConfigIndexConfigEnvName, "70000")
	keys := testutil.GenerateSolanaKeys(t, 3)

	composer := NewComposer(WithEnvConfigs())
	_, err := composer.InitializePool(context.Background(), &InitializePoolArgs{
		Creator: keys[0],
		MintA:   keys[1],
		MintB:   keys[2],
		AmountA: cosmath.NewInt(1),
		AmountB: cosmath.NewInt(1),
	})
	assert.Error(t, err)
}

func TestSwap(t *testing.T) {
	ctx := context.Background()
	payer := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))
	intent, err := composer.Swap(ctx, &SwapArgs{
		Payer:            payer,
		InputMint:        usdcMint,
		OutputMint:       wsolMint,
		AmountIn:         cosmath.NewInt(1_000_000),
		MinimumAmountOut: cosmath.NewInt(1),
	})
	require.NoError(t, err)
	require.Len(t, intent.Instructions, 2)

	assert.Equal(t, "D4FPEruKEHrG5TenZ2mpDGEfu1iUvTiqBxvpU8HLBvC2", base58.Encode(intent.Accounts["amm_config"]))
	assert.Equal(t, "HcYqyPP6VNqtT1txrzZHKd4nK6iN7tQdw92Zt4BYuynE", base58.Encode(intent.Accounts["pool_state"]))

	outputAccount, err := token.GetAssociatedAccount(payer, wsolMint)
	require.NoError(t, err)
	assert.EqualValues(t, outputAccount, intent.Instructions[0].Accounts[1].PublicKey)

	swap := intent.Instructions[1]
	assert.Equal(t, cpswap.SwapBaseInputInstructionDiscriminator[:], swap.Data[:8])
	assert.Equal(t, "BD6udtEjzxRB8rjBMsQ6mDj6FZLYaDDrA1mM3Z5merim", base58.Encode(swap.Accounts[6].PublicKey))
	assert.Equal(t, "Cc78yDcjC8SFvsPcVqfbmC8cMMix7ivbKoUYCug5raAV", base58.Encode(swap.Accounts[7].PublicKey))
	assert.EqualValues(t, outputAccount, swap.Accounts[5].PublicKey)
}

func TestWithEnvConfigs(t *testing.T) {
	feeRecipient := testutil.GenerateSolanaKeys(t, 1)[0]
	t.Setenv(TokenProgramConfigEnvName, base58.Encode(token.ProgramKey))
	t.Setenv(CreateAssociatedAccountsConfigEnvName, "false")
	t.Setenv(PumpFeeRecipientConfigEnvName, base58.Encode(feeRecipient))
	t.Setenv(ComputeUnitPriceConfigEnvName, "5")

	ctx := context.Background()
	composer := NewComposer(WithEnvConfigs())

	assert.EqualValues(t, token.ProgramKey, composer.conf.tokenProgram.Get(ctx))
	assert.False(t, composer.conf.createAssociatedAccounts.Get(ctx))
	assert.EqualValues(t, feeRecipient, composer.conf.pumpFeeRecipient.Get(ctx))
	assert.EqualValues(t, cpswap.MAINNET_PROGRAM_ID, composer.conf.cpSwapProgram.Get(ctx))
	assert.EqualValues(t, 0, composer.conf.computeUnitLimit.Get(ctx))
	assert.EqualValues(t, 5, composer.conf.computeUnitPrice.Get(ctx))
}

func mustDecode(value string) ed25519.PublicKey {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}


func TestComposer_ConfigFailureKeepsLastValue(t *testing.T) {
	ctx := context.Background()
	keys := testutil.GenerateSolanaKeys(t, 3)
	mint, owner, authority := keys[0], keys[1], keys[2]

	override := memory.NewConfig(base58.Encode(token.ProgramKey))
	composer := NewComposer(func() *conf {
		c := WithOverrides(&Overrides{})()
		c.tokenProgram = wrapper.NewPublicKeyConfig(override, defaultTokenProgram)
		return c
	})

	intent, err := composer.Freeze(ctx, mint, owner, authority)
	require.NoError(t, err)
	assert.EqualValues(t, token.ProgramKey, intent.Instructions[0].Program)

	override.InduceErrors()
	intent, err = composer.Freeze(ctx, mint, owner, authority)
	require.NoError(t, err)
	assert.EqualValues(t, token.ProgramKey, intent.Instructions[0].Program)

	override.StopInducingErrors()
	override.ClearValue()
	intent, err = composer.Freeze(ctx, mint, owner, authority)
	require.NoError(t, err)
	assert.EqualValues(t, token.Program2022Key, intent.Instructions[0].Program)
}

func TestComposer_AssociatedAccountMemo(t *testing.T) {
	wallet := testutil.GenerateSolanaKeys(t, 1)[0]

	composer := NewComposer(WithOverrides(&Overrides{}))

	expected, err := token.GetAssociatedAccountWithProgram(wallet, usdcMint, token.ProgramKey)
	require.NoError(t, err)

	first, err := composer.associatedAccount(wallet, usdcMint, token.ProgramKey)
	require.NoError(t, err)
	assert.EqualValues(t, expected, first)
	assert.Equal(t, 1, composer.associatedAccounts.GetWeight())

	// Mutating a returned key leaves the memoized entry intact
	first[0] ^= 0xff
	second, err := composer.associatedAccount(wallet, usdcMint, token.ProgramKey)
	require.NoError(t, err)
	assert.EqualValues(t, expected, second)
	assert.Equal(t, 1, composer.associatedAccounts.GetWeight())

	_, err = composer.associatedAccount(wallet[:31], usdcMint, token.ProgramKey)
	assert.True(t, errors.Is(err, solana.ErrMissingAccountInput))
}
