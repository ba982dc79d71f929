// Package registry classifies domain names into naming-registry
// families and carries each family's on-chain data: recognized
// suffixes, supported content-hash namespaces, contract address books,
// and the ABI fragments of the read/write methods.
package registry

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/domain"
)

// Family is the type of naming-registry families.
type Family int

// All known families.
const (
	ENS Family = iota // Ethereum Name Service
	CNS               // legacy Unstoppable Domains (.crypto)
	UNS               // current Unstoppable Domains
)

// ErrUnsupportedDomain means a domain suffix matches no known family.
var ErrUnsupportedDomain = errors.New("unsupported domain suffix")

// ErrUnsupportedContentType means a content-hash namespace is not
// valid for the classified family.
var ErrUnsupportedContentType = errors.New("unsupported content type")

//nolint:gochecknoglobals
var (
	suffixes = map[Family][]string{
		ENS: {"eth"},
		CNS: {"crypto"},
		UNS: {"wallet", "x", "nft", "blockchain", "bitcoin", "dao", "888", "klever", "hi", "unstoppable"},
	}

	contentTypes = map[Family][]contenthash.Type{
		ENS: {contenthash.IPFS, contenthash.Swarm},
		CNS: {contenthash.IPFS},
		UNS: {contenthash.IPFS},
	}
)

// Classify maps a name to its registry family by the name's suffix.
// Suffix matching is case-insensitive because names are IDNA-normalized.
func Classify(name domain.Name) (Family, error) {
	suffix := name.Suffix()
	for family, ss := range suffixes {
		for _, s := range ss {
			if suffix == s {
				return family, nil
			}
		}
	}

	return Family(-1), fmt.Errorf("%w: %q", ErrUnsupportedDomain, name.Describe())
}

// Describe gives a human-readable name of the family.
func (f Family) Describe() string {
	switch f {
	case ENS:
		return "ENS"
	case CNS:
		return "CNS (legacy Unstoppable Domains)"
	case UNS:
		return "UNS (Unstoppable Domains)"
	default:
		return "unknown registry"
	}
}

// ContentTypes lists the content-hash namespaces the family can store.
func (f Family) ContentTypes() []contenthash.Type {
	return contentTypes[f]
}

// Supports checks whether the family can store records of namespace t.
func (f Family) Supports(t contenthash.Type) bool {
	for _, supported := range contentTypes[f] {
		if t == supported {
			return true
		}
	}
	return false
}

// Registry looks up the family's registry contract on the given chain.
// The second return value reports whether the chain is in the address book.
func (f Family) Registry(chainID *big.Int) (common.Address, bool) {
	if chainID == nil || !chainID.IsInt64() {
		return common.Address{}, false
	}

	addr, ok := registries[f][chainID.Int64()]
	return addr, ok
}
