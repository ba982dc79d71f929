package registry

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// RecordKey is the record key under which Unstoppable registries store
// the content hash of a name.
const RecordKey = "dweb.ipfs.hash"

func mustParseABI(fragment string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(fragment))
	if err != nil {
		panic(err)
	}
	return parsed
}

// ABI fragments of the methods actually invoked, not the full contracts.
//
//nolint:gochecknoglobals,lll
var (
	// ENSRegistryABI covers the ownership and resolver reads of the ENS registry.
	ENSRegistryABI = mustParseABI(`[
		{"type":"function","stateMutability":"view","name":"owner","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","stateMutability":"view","name":"resolver","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","stateMutability":"view","name":"isApprovedForAll","inputs":[{"name":"owner","type":"address"},{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"bool"}]}
	]`)

	// ENSResolverABI covers the contenthash record of an ENS public resolver (EIP-1577).
	ENSResolverABI = mustParseABI(`[
		{"type":"function","stateMutability":"view","name":"contenthash","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"bytes"}]},
		{"type":"function","stateMutability":"nonpayable","name":"setContenthash","inputs":[{"name":"node","type":"bytes32"},{"name":"hash","type":"bytes"}],"outputs":[]}
	]`)

	// CNSRegistryABI covers the ownership and resolver reads of the legacy Unstoppable registry.
	CNSRegistryABI = mustParseABI(`[
		{"type":"function","stateMutability":"view","name":"ownerOf","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
		{"type":"function","stateMutability":"view","name":"isApprovedOrOwner","inputs":[{"name":"spender","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","stateMutability":"view","name":"resolverOf","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]}
	]`)

	// CNSResolverABI covers the key-value records of a legacy Unstoppable resolver.
	CNSResolverABI = mustParseABI(`[
		{"type":"function","stateMutability":"view","name":"get","inputs":[{"name":"key","type":"string"},{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
		{"type":"function","stateMutability":"nonpayable","name":"set","inputs":[{"name":"key","type":"string"},{"name":"value","type":"string"},{"name":"tokenId","type":"uint256"}],"outputs":[]}
	]`)

	// UNSRegistryABI covers the current Unstoppable registry, which stores records itself.
	UNSRegistryABI = mustParseABI(`[
		{"type":"function","stateMutability":"view","name":"exists","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","stateMutability":"view","name":"isApprovedOrOwner","inputs":[{"name":"spender","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","stateMutability":"view","name":"get","inputs":[{"name":"key","type":"string"},{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
		{"type":"function","stateMutability":"nonpayable","name":"set","inputs":[{"name":"key","type":"string"},{"name":"value","type":"string"},{"name":"tokenId","type":"uint256"}],"outputs":[]}
	]`)
)
