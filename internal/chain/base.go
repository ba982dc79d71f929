// Package chain wraps the JSON-RPC connection to a chain together with
// the signing identity of the invocation.
package chain

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dwebname/dwebup/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_client.go -package=mocks . Client

// Client is the abstraction of a connected chain with a signing identity.
type Client interface {
	// Address gives the address of the signing identity.
	Address() common.Address

	// ChainID gives the chain ID reported by the endpoint.
	ChainID() *big.Int

	// Call performs a read-only call against the contract at to.
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// Send signs and submits a state-changing transaction to the
	// contract at to and blocks until it is included or ctx expires.
	Send(ctx context.Context, ppfmt pp.PP, to common.Address, data []byte) (common.Hash, error)

	// Close closes the underlying connection.
	Close()
}

// A Dialer constructs a [Client] from a secret and an RPC endpoint.
type Dialer func(ctx context.Context, ppfmt pp.PP, secret string, rpcURL string) (Client, error)

var (
	// ErrInvalidSecret means the supplied secret parses as neither a
	// mnemonic phrase nor a raw private key.
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrUnreachableEndpoint means the RPC endpoint did not respond.
	ErrUnreachableEndpoint = errors.New("unreachable RPC endpoint")

	// ErrTransactionReverted means the chain rejected the transaction.
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrTransactionTimeout means the transaction was not included
	// within the bounded wait window.
	ErrTransactionTimeout = errors.New("transaction not confirmed in time")
)
