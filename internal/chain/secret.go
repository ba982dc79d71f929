package chain

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// ParseSecret derives the signing key of the invocation from a secret.
// A secret with multiple words is treated as a BIP-39 mnemonic phrase
// (derived at the standard Ethereum path m/44'/60'/0'/0/0); anything
// else is treated as a hexadecimal private key.
func ParseSecret(secret string) (*ecdsa.PrivateKey, error) {
	fields := strings.Fields(secret)

	switch {
	case len(fields) == 0:
		return nil, fmt.Errorf("%w: the secret is empty", ErrInvalidSecret)

	case len(fields) > 1:
		seed, err := bip39.NewSeedWithErrorChecking(strings.Join(fields, " "), "")
		if err != nil {
			return nil, fmt.Errorf("%w: invalid mnemonic phrase: %s", ErrInvalidSecret, err)
		}
		return deriveEthereumKey(seed)

	default:
		key, err := crypto.HexToECDSA(strings.TrimPrefix(fields[0], "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid private key: %s", ErrInvalidSecret, err)
		}
		return key, nil
	}
}

// deriveEthereumKey walks m/44'/60'/0'/0/0 from the seed.
func deriveEthereumKey(seed []byte) (*ecdsa.PrivateKey, error) {
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSecret, err)
	}

	for _, child := range [...]uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + 60,
		hdkeychain.HardenedKeyStart,
		0,
		0,
	} {
		key, err = key.Derive(child)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSecret, err)
		}
	}

	private, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSecret, err)
	}

	return private.ToECDSA(), nil
}
