package registry

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dwebname/dwebup/internal/domain"
)

// Namehash derives the EIP-137 record identifier of a name. Both ENS
// and the Unstoppable registries address records by this hash.
func Namehash(name domain.Name) common.Hash {
	node := make([]byte, common.HashLength)

	if ascii := name.ASCII(); ascii != "" {
		labels := strings.Split(ascii, ".")
		for i := len(labels) - 1; i >= 0; i-- {
			node = crypto.Keccak256(node, crypto.Keccak256([]byte(labels[i])))
		}
	}

	return common.BytesToHash(node)
}

// TokenID gives the namehash as a uint256, the token form used by the
// ERC-721-style Unstoppable registries.
func TokenID(name domain.Name) *big.Int {
	hash := Namehash(name)
	return new(big.Int).SetBytes(hash[:])
}
