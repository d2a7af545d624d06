package intent

import (
	"crypto/ed25519"

	"github.com/code-payments/ixkit/pkg/config"
	"github.com/code-payments/ixkit/pkg/config/env"
	"github.com/code-payments/ixkit/pkg/config/memory"
	"github.com/code-payments/ixkit/pkg/config/wrapper"
	"github.com/code-payments/ixkit/pkg/solana/cpswap"
	"github.com/code-payments/ixkit/pkg/solana/pumpfun"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

const (
	envConfigPrefix = "INTENT_"

	TokenProgramConfigEnvName = envConfigPrefix + "TOKEN_PROGRAM"

	CreateAssociatedAccountsConfigEnvName = envConfigPrefix + "CREATE_ASSOCIATED_ACCOUNTS"
	defaultCreateAssociatedAccounts       = true

	PumpFeeRecipientConfigEnvName = envConfigPrefix + "PUMP_FEE_RECIPIENT"

	CpSwapProgramConfigEnvName = envConfigPrefix + "CPSWAP_PROGRAM"

	CpSwapCreatePoolFeeReceiverConfigEnvName = envConfigPrefix + "CPSWAP_CREATE_POOL_FEE_RECEIVER"

	CpSwapAmmConfigIndexConfigEnvName = envConfigPrefix + "CPSWAP_AMM_CONFIG_INDEX"
	defaultCpSwapAmmConfigIndex       = 0

	// Zero disables the corresponding compute budget instruction
	ComputeUnitLimitConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_LIMIT"
	defaultComputeUnitLimit       = 0

	ComputeUnitPriceConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_PRICE"
	defaultComputeUnitPrice       = 0
)

var (
	// Mints deployed by this package are Token-2022 mints
	defaultTokenProgram = token.Program2022Key

	defaultPumpFeeRecipient            = pumpfun.FEE_RECIPIENT
	defaultCpSwapProgram               = cpswap.MAINNET_PROGRAM_ID
	defaultCpSwapCreatePoolFeeReceiver = cpswap.MAINNET_CREATE_POOL_FEE_RECEIVER
)

type conf struct {
	tokenProgram                config.PublicKey
	createAssociatedAccounts    config.Bool
	pumpFeeRecipient            config.PublicKey
	cpSwapProgram               config.PublicKey
	cpSwapCreatePoolFeeReceiver config.PublicKey
	cpSwapAmmConfigIndex        config.Uint64
	computeUnitLimit            config.Uint64
	computeUnitPrice            config.Uint64
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			tokenProgram:                env.NewPublicKeyConfig(TokenProgramConfigEnvName, defaultTokenProgram),
			createAssociatedAccounts:    env.NewBoolConfig(CreateAssociatedAccountsConfigEnvName, defaultCreateAssociatedAccounts),
			pumpFeeRecipient:            env.NewPublicKeyConfig(PumpFeeRecipientConfigEnvName, defaultPumpFeeRecipient),
			cpSwapProgram:               env.NewPublicKeyConfig(CpSwapProgramConfigEnvName, defaultCpSwapProgram),
			cpSwapCreatePoolFeeReceiver: env.NewPublicKeyConfig(CpSwapCreatePoolFeeReceiverConfigEnvName, defaultCpSwapCreatePoolFeeReceiver),
			cpSwapAmmConfigIndex:        env.NewUint64Config(CpSwapAmmConfigIndexConfigEnvName, defaultCpSwapAmmConfigIndex),
			computeUnitLimit:            env.NewUint64Config(ComputeUnitLimitConfigEnvName, defaultComputeUnitLimit),
			computeUnitPrice:            env.NewUint64Config(ComputeUnitPriceConfigEnvName, defaultComputeUnitPrice),
		}
	}
}

// Overrides are fixed config values, for callers that configure the composer
// in code. Nil keys and zero values keep the defaults.
type Overrides struct {
	TokenProgram                ed25519.PublicKey
	DisableAssociatedAccounts   bool
	PumpFeeRecipient            ed25519.PublicKey
	CpSwapProgram               ed25519.PublicKey
	CpSwapCreatePoolFeeReceiver ed25519.PublicKey
	CpSwapAmmConfigIndex        uint16
	ComputeUnitLimit            uint32
	ComputeUnitPrice            uint64
}

// WithOverrides returns configuration backed by in memory values
func WithOverrides(overrides *Overrides) ConfigProvider {
	return func() *conf {
		return &conf{
			tokenProgram:                wrapper.NewPublicKeyConfig(keyConfig(overrides.TokenProgram), defaultTokenProgram),
			createAssociatedAccounts:    wrapper.NewBoolConfig(memory.NewConfig(!overrides.DisableAssociatedAccounts), defaultCreateAssociatedAccounts),
			pumpFeeRecipient:            wrapper.NewPublicKeyConfig(keyConfig(overrides.PumpFeeRecipient), defaultPumpFeeRecipient),
			cpSwapProgram:               wrapper.NewPublicKeyConfig(keyConfig(overrides.CpSwapProgram), defaultCpSwapProgram),
			cpSwapCreatePoolFeeReceiver: wrapper.NewPublicKeyConfig(keyConfig(overrides.CpSwapCreatePoolFeeReceiver), defaultCpSwapCreatePoolFeeReceiver),
			cpSwapAmmConfigIndex:        wrapper.NewUint64Config(memory.NewConfig(uint64(overrides.CpSwapAmmConfigIndex)), defaultCpSwapAmmConfigIndex),
			computeUnitLimit:            wrapper.NewUint64Config(memory.NewConfig(uint64(overrides.ComputeUnitLimit)), defaultComputeUnitLimit),
			computeUnitPrice:            wrapper.NewUint64Config(memory.NewConfig(overrides.ComputeUnitPrice), defaultComputeUnitPrice),
		}
	}
}

func keyConfig(key ed25519.PublicKey) config.Config {
	if key == nil {
		return config.NoopConfig
	}
	return memory.NewConfig(key)
}
