package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/dwebname/dwebup/internal/pp"
)

// receiptPollInterval is how often we ask the endpoint for the receipt
// of a submitted transaction.
const receiptPollInterval = 2 * time.Second

// An ethereumClient implements [Client] over go-ethereum's ethclient.
type ethereumClient struct {
	eth     *ethclient.Client
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// Dial parses the secret, connects to the RPC endpoint, and probes its
// liveness by asking for the chain ID. It is the default [Dialer].
func Dial(ctx context.Context, ppfmt pp.PP, secret string, rpcURL string) (Client, error) {
	key, err := ParseSecret(secret)
	if err != nil {
		return nil, err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	ppfmt.Infof(pp.EmojiKey, "The signing identity is %s", address)

	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachableEndpoint, err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnreachableEndpoint, err)
	}
	ppfmt.Infof(pp.EmojiNetwork, "Connected to chain %d", chainID)

	return ethereumClient{eth: eth, key: key, address: address, chainID: chainID}, nil
}

// Address gives the address of the signing identity.
func (c ethereumClient) Address() common.Address { return c.address }

// ChainID gives the chain ID reported by the endpoint.
func (c ethereumClient) ChainID() *big.Int { return c.chainID }

// Close closes the underlying connection.
func (c ethereumClient) Close() { c.eth.Close() }

// Call performs a read-only eth_call.
func (c ethereumClient) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	out, err := c.eth.CallContract(ctx, ethereum.CallMsg{From: c.address, To: &to, Data: data}, nil)
	if err != nil {
		if reason, ok := revertReason(err); ok {
			return nil, fmt.Errorf("%w: %s", ErrTransactionReverted, reason)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnreachableEndpoint, err)
	}
	return out, nil
}

// Send signs and submits a legacy transaction and waits for its receipt
// until ctx expires.
func (c ethereumClient) Send(ctx context.Context, ppfmt pp.PP, to common.Address, data []byte) (common.Hash, error) {
	nonce, err := c.eth.PendingNonceAt(ctx, c.address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrUnreachableEndpoint, err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrUnreachableEndpoint, err)
	}

	// A failing estimate is the node telling us the call would revert.
	gas, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{From: c.address, To: &to, Data: data})
	if err != nil {
		if reason, ok := revertReason(err); ok {
			return common.Hash{}, fmt.Errorf("%w: %s", ErrTransactionReverted, reason)
		}
		return common.Hash{}, fmt.Errorf("%w: %s", ErrTransactionReverted, err)
	}

	tx, err := types.SignNewTx(c.key, types.LatestSignerForChainID(c.chainID), &types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrTransactionReverted, err)
	}

	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrTransactionReverted, err)
	}
	ppfmt.Noticef(pp.EmojiUpdate, "Submitted transaction %s", tx.Hash())

	return c.waitMined(ctx, ppfmt, tx.Hash())
}

// waitMined polls for the receipt until ctx expires. Transient lookup
// errors are ignored; the deadline is the only bound.
func (c ethereumClient) waitMined(ctx context.Context, ppfmt pp.PP, txHash common.Hash) (common.Hash, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, txHash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return common.Hash{}, fmt.Errorf("%w: transaction %s failed on-chain", ErrTransactionReverted, txHash)
			}
			ppfmt.Noticef(pp.EmojiConfirm, "Confirmed in block %d", receipt.BlockNumber)
			return txHash, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ppfmt.Infof(pp.EmojiAlarm, "Could not fetch the receipt of %s yet: %v", txHash, err)
		}

		select {
		case <-ctx.Done():
			return common.Hash{}, fmt.Errorf("%w: %s is still pending", ErrTransactionTimeout, txHash)
		case <-ticker.C:
		}
	}
}

// revertReason extracts the human-readable revert reason from an RPC
// error, when the node supplied one.
func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}

	data, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", false
	}

	reason, unpackErr := abi.UnpackRevert(common.FromHex(data))
	if unpackErr != nil {
		return "", false
	}

	return reason, true
}
