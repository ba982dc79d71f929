package registry_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/dwebname/dwebup/internal/domain"
	"github.com/dwebname/dwebup/internal/registry"
)

// Vectors from EIP-137.
func TestNamehash(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		name     domain.Name
		expected string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
	} {
		require.Equal(t, common.HexToHash(tc.expected), registry.Namehash(tc.name), "namehash(%q)", tc.name)
	}
}

func TestTokenID(t *testing.T) {
	t.Parallel()

	hash := registry.Namehash("example.crypto")
	require.Equal(t, hash.Big(), registry.TokenID("example.crypto"))
	require.NotZero(t, registry.TokenID("example.crypto").Sign())
}
