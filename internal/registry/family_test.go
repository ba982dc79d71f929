package registry_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/domain"
	"github.com/dwebname/dwebup/internal/registry"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		name     domain.Name
		expected registry.Family
		ok       bool
	}{
		{"example.eth", registry.ENS, true},
		{"sub.example.eth", registry.ENS, true},
		{"example.crypto", registry.CNS, true},
		{"example.wallet", registry.UNS, true},
		{"example.x", registry.UNS, true},
		{"example.nft", registry.UNS, true},
		{"example.888", registry.UNS, true},
		{"example.com", registry.Family(-1), false},
		{"example.zil", registry.Family(-1), false},
		{"example", registry.Family(-1), false},
	} {
		tc := tc
		t.Run(tc.name.ASCII(), func(t *testing.T) {
			t.Parallel()

			family, err := registry.Classify(tc.name)
			require.Equal(t, tc.expected, family)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, registry.ErrUnsupportedDomain)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		family   registry.Family
		typ      contenthash.Type
		expected bool
	}{
		{registry.ENS, contenthash.IPFS, true},
		{registry.ENS, contenthash.Swarm, true},
		{registry.CNS, contenthash.IPFS, true},
		{registry.CNS, contenthash.Swarm, false},
		{registry.UNS, contenthash.IPFS, true},
		{registry.UNS, contenthash.Swarm, false},
	} {
		require.Equal(t, tc.expected, tc.family.Supports(tc.typ),
			"%s + %s", tc.family.Describe(), tc.typ)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		family  registry.Family
		chainID int64
		ok      bool
	}{
		{registry.ENS, 1, true},
		{registry.ENS, 11155111, true},
		{registry.CNS, 1, true},
		{registry.UNS, 1, true},
		{registry.UNS, 137, true},
		{registry.ENS, 56, false},
		{registry.CNS, 137, false},
	} {
		addr, ok := tc.family.Registry(big.NewInt(tc.chainID))
		require.Equal(t, tc.ok, ok)
		if ok {
			require.NotZero(t, addr)
		}
	}

	_, ok := registry.ENS.Registry(nil)
	require.False(t, ok)
}
