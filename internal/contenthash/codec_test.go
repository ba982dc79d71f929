package contenthash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwebname/dwebup/internal/contenthash"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		name  string
		typ   contenthash.Type
		human string
	}{
		{"cidv0", contenthash.IPFS, "QmQYE8p9oRPs9nzS1tsrzNsZWmrkVmRqKvMqEXpx2HQgdp"},
		{"cidv0-other", contenthash.IPFS, "QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4"},
		{"swarm", contenthash.Swarm, "d1de9994b4d039f6548d191eb26786769f580809256b4685ef316805265ea162"},
		{"swarm-0x", contenthash.Swarm, "0xd1de9994b4d039f6548d191eb26786769f580809256b4685ef316805265ea162"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := contenthash.Encode(tc.human, tc.typ)
			require.NoError(t, err)
			require.Equal(t, tc.typ, encoded.Type)
			require.NotEmpty(t, encoded.Raw)

			decoded, err := contenthash.Decode(encoded.Raw)
			require.NoError(t, err)
			require.Equal(t, tc.typ, decoded.Type)
			require.Equal(t, encoded.Human, decoded.Human)
			require.Equal(t, encoded.Raw, decoded.Raw)
		})
	}
}

func TestEncodeIPFSPrefix(t *testing.T) {
	t.Parallel()

	encoded, err := contenthash.Encode("QmQYE8p9oRPs9nzS1tsrzNsZWmrkVmRqKvMqEXpx2HQgdp", contenthash.IPFS)
	require.NoError(t, err)

	// namespace ipfs-ns, CIDv1, dag-pb, sha2-256, 32 bytes
	require.Equal(t, []byte{0xe3, 0x01, 0x01, 0x70, 0x12, 0x20}, encoded.Raw[:6])
	require.Len(t, encoded.Raw, 6+32)
}

func TestEncodeSwarmPrefix(t *testing.T) {
	t.Parallel()

	encoded, err := contenthash.Encode(
		"d1de9994b4d039f6548d191eb26786769f580809256b4685ef316805265ea162", contenthash.Swarm)
	require.NoError(t, err)

	// namespace swarm-ns, CIDv1, swarm-manifest, keccak-256, 32 bytes
	require.Equal(t, []byte{0xe4, 0x01, 0x01, 0xfa, 0x01, 0x1b, 0x20}, encoded.Raw[:7])
	require.Len(t, encoded.Raw, 7+32)
	require.Equal(t, "0x"+"e40101fa011b20"+"d1de9994b4d039f6548d191eb26786769f580809256b4685ef316805265ea162",
		encoded.Hex())
}

func TestEncodeMalformed(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		name  string
		typ   contenthash.Type
		human string
	}{
		{"empty-ipfs", contenthash.IPFS, ""},
		{"bad-base58", contenthash.IPFS, "QmQYE8p9oRPs9nzS1tsrzNsZWmrkVmRqKvMqEXpx2HQgd!"},
		{"truncated-cid", contenthash.IPFS, "QmQYE8"},
		{"swarm-as-ipfs", contenthash.IPFS, "zz"},
		{"empty-swarm", contenthash.Swarm, ""},
		{"bad-hex", contenthash.Swarm, "x1de9994b4d039f6548d191eb26786769f580809256b4685ef316805265ea162"},
		{"short-swarm", contenthash.Swarm, "d1de9994"},
		{"unknown-type", contenthash.Type("dns-ns"), "example.org"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := contenthash.Encode(tc.human, tc.typ)
			require.ErrorIs(t, err, contenthash.ErrMalformedContentHash)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"unknown-namespace", []byte{0xb3, 0x01, 0x01}},
		{"truncated-payload", []byte{0xe3, 0x01, 0x01}},
		{"swarm-wrong-hash", []byte{0xe4, 0x01, 0x01, 0xfa, 0x12, 0x20}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := contenthash.Decode(tc.raw)
			require.ErrorIs(t, err, contenthash.ErrMalformedContentHash)
		})
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		input    string
		expected contenthash.Type
		ok       bool
	}{
		{"ipfs-ns", contenthash.IPFS, true},
		{"swarm-ns", contenthash.Swarm, true},
		{"ipfs", "", false},
		{"", "", false},
	} {
		parsed, ok := contenthash.ParseType(tc.input)
		require.Equal(t, tc.ok, ok)
		require.Equal(t, tc.expected, parsed)
	}
}
