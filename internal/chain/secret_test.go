package chain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/dwebname/dwebup/internal/chain"
)

// The well-known development mnemonic and its first derived account.
const (
	testMnemonic   = "test test test test test test test test test test test junk"
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestParseSecretMnemonic(t *testing.T) {
	t.Parallel()

	key, err := chain.ParseSecret(testMnemonic)
	require.NoError(t, err)
	require.Equal(t, testAddress, crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func TestParseSecretPrivateKey(t *testing.T) {
	t.Parallel()

	for _, secret := range [...]string{testPrivateKey, "0x" + testPrivateKey} {
		key, err := chain.ParseSecret(secret)
		require.NoError(t, err)
		require.Equal(t, testAddress, crypto.PubkeyToAddress(key.PublicKey).Hex())
	}
}

func TestParseSecretWhitespace(t *testing.T) {
	t.Parallel()

	key, err := chain.ParseSecret("  " + testMnemonic + "\n")
	require.NoError(t, err)
	require.Equal(t, testAddress, crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func TestParseSecretInvalid(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"bad-hex", "not-a-key"},
		{"short-hex", "ac0974"},
		{"bad-mnemonic", "test test test test test test test test test test test jumk"},
		{"short-mnemonic", "test junk"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := chain.ParseSecret(tc.secret)
			require.ErrorIs(t, err, chain.ErrInvalidSecret)
		})
	}
}
