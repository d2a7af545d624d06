package token

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/ixkit/pkg/solana"
	"github.com/code-payments/ixkit/pkg/solana/system"
	"github.com/code-payments/ixkit/pkg/testutil"
)

func TestGetAssociatedAccount(t *testing.T) {
	// Values generated from taken from spl code.
	wallet, err := base58.Decode("4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM")
	require.NoError(t, err)
	mint, err := base58.Decode("8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh")
	require.NoError(t, err)
	addr, err := base58.Decode("H7MQwEzt97tUJryocn3qaEoy2ymWstwyEk1i9Yv3EmuZ")
	require.NoError(t, err)

	actual, err := GetAssociatedAccount(wallet, mint)
	require.NoError(t, err)
	assert.EqualValues(t, addr, actual)
}

func TestGetAssociatedAccount_MainnetVectors(t *testing.T) {
	const (
		sender    = "3w1iMvjKGxpbGaaSekNUsZBcVKERg2BCsUZMGrjcTMsj"
		recipient = "9FE5ttsHschGHSyhun8N1X3R9KXupcbbojosCFWoZq3x"
		mnde      = "MNDEFzGvMt87ueuHvVU9VcTqsAP5b3fTGPsHuuPA5ey"
		usdc      = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	)

	for _, tc := range []struct {
		wallet    string
		mint      string
		legacy    string
		token2022 string
	}{
		{wallet: sender, mint: mnde, legacy: "DNF1LVkvg4ZiefjwMBiHdX5RTt4BZhLzN6H9h7rm719b", token2022: "9Anic25gBRxyebG45wV8jVzCdZ86gpAQLQ46KSYSB41Y"},
		{wallet: recipient, mint: mnde, legacy: "39jGmWURj2NsLUy6XHeDcPTQrmTTBeeZF4PMFzpuqUdg", token2022: "6mFxhaujPn3JQsUru45sUuKsDpeioAJ6knzsfU15Vhre"},
		{wallet: sender, mint: usdc, legacy: "GrfQTEskA8ZP2eNorbRogpw5DFGNEHBiZGHE2EiGHDqm", token2022: "C5h7CHHEG5grgWbvTYVZL2XjMcrbSJouSR9D2w8j4Sm3"},
		{wallet: recipient, mint: usdc, legacy: "251p5FGaW787Jcrj6KYDSLY5tMsvCrFt68kjoS1Y2QjJ", token2022: "GmiPYgHCRU2fB8cW8ho3NmDqEZ7XxrFXQDZJvXREXUN"},
	} {
		wallet := mustDecode(t, tc.wallet)
		mint := mustDecode(t, tc.mint)

		actual, err := GetAssociatedAccount(wallet, mint)
		require.NoError(t, err)
		assert.Equal(t, tc.legacy, base58.Encode(actual))

		actual, err = GetAssociatedAccountWithProgram(wallet, mint, Program2022Key)
		require.NoError(t, err)
		assert.Equal(t, tc.token2022, base58.Encode(actual))
	}
}

func TestCreateAssociatedAccount(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	for _, tokenProgram := range []ed25519.PublicKey{ProgramKey, Program2022Key} {
		expectedAddr, err := GetAssociatedAccountWithProgram(keys[1], keys[2], tokenProgram)
		require.NoError(t, err)

		instruction, addr, err := CreateAssociatedTokenAccount(keys[0], keys[1], keys[2], tokenProgram)
		require.NoError(t, err)
		assert.Equal(t, expectedAddr, addr)

		assert.Empty(t, instruction.Data)
		assert.EqualValues(t, AssociatedTokenAccountProgramKey, instruction.Program)
		assertCreateAccounts(t, instruction, keys, addr, tokenProgram)
	}
}

func TestCreateAssociatedAccountIdempotent(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	expectedAddr, err := GetAssociatedAccount(keys[1], keys[2])
	require.NoError(t, err)

	instruction, addr, err := CreateAssociatedTokenAccountIdempotent(keys[0], keys[1], keys[2], ProgramKey)
	require.NoError(t, err)
	assert.Equal(t, expectedAddr, addr)

	assert.Equal(t, []byte{commandCreateIdempotent}, instruction.Data)
	assertCreateAccounts(t, instruction, keys, addr, ProgramKey)
}

func TestCreateAssociatedAccount_MissingInput(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 3)

	_, _, err := CreateAssociatedTokenAccount(keys[0], keys[1], nil, ProgramKey)
	assert.True(t, errors.Is(err, solana.ErrMissingAccountInput))

	var schemaErr *solana.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "associated_token/create", schemaErr.Instruction)
	assert.Equal(t, "mint", schemaErr.Slot)
}

func assertCreateAccounts(t *testing.T, instruction solana.Instruction, keys []ed25519.PublicKey, addr, tokenProgram ed25519.PublicKey) {
	require.Len(t, instruction.Accounts, 6)

	assert.Equal(t, solana.NewAccountMeta(keys[0], true), instruction.Accounts[0])
	assert.Equal(t, solana.NewAccountMeta(addr, false), instruction.Accounts[1])
	assert.Equal(t, solana.NewReadonlyAccountMeta(keys[1], false), instruction.Accounts[2])
	assert.Equal(t, solana.NewReadonlyAccountMeta(keys[2], false), instruction.Accounts[3])
	assert.Equal(t, solana.NewReadonlyAccountMeta(system.ProgramKey[:], false), instruction.Accounts[4])
	assert.Equal(t, solana.NewReadonlyAccountMeta(tokenProgram, false), instruction.Accounts[5])
}

func mustDecode(t *testing.T, value string) ed25519.PublicKey {
	decoded, err := base58.Decode(value)
	require.NoError(t, err)
	return decoded
}
