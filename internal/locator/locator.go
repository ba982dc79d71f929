package locator

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/dwebname/dwebup/internal/chain"
	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/domain"
	"github.com/dwebname/dwebup/internal/pp"
	"github.com/dwebname/dwebup/internal/registry"
)

// call packs a method call, performs it read-only, and unpacks the
// single return value.
func call[T any](ctx context.Context, c chain.Client, contract common.Address,
	contractABI abi.ABI, method string, args ...any,
) (T, error) {
	var zero T

	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return zero, fmt.Errorf("packing %s: %w", method, err)
	}

	out, err := c.Call(ctx, contract, data)
	if err != nil {
		return zero, err
	}

	values, err := contractABI.Unpack(method, out)
	if err != nil {
		return zero, fmt.Errorf("unpacking %s: %w", method, err)
	}

	value, ok := values[0].(T)
	if !ok {
		return zero, fmt.Errorf("unpacking %s: unexpected type %T", method, values[0])
	}

	return value, nil
}

// Locate derives the on-chain record identifier of name, verifies that
// the record exists and that the signing identity may write it, and
// returns the plan bound to the family's write method.
func Locate(ctx context.Context, ppfmt pp.PP, c chain.Client,
	family registry.Family, name domain.Name, record contenthash.Record,
) (Plan, error) {
	registryAddr, ok := family.Registry(c.ChainID())
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s has no known registry on chain %d",
			ErrUnsupportedChain, family.Describe(), c.ChainID())
	}

	switch family {
	case registry.ENS:
		return locateENS(ctx, ppfmt, c, registryAddr, name, record)
	case registry.CNS:
		return locateCNS(ctx, ppfmt, c, registryAddr, name, record)
	case registry.UNS:
		return locateUNS(ctx, ppfmt, c, registryAddr, name, record)
	default:
		ppfmt.Errorf(pp.EmojiImpossible, "Unknown domain family %d; please report this bug", family)
		return Plan{}, fmt.Errorf("%w: unknown family", registry.ErrUnsupportedDomain)
	}
}

func locateENS(ctx context.Context, ppfmt pp.PP, c chain.Client,
	registryAddr common.Address, name domain.Name, record contenthash.Record,
) (Plan, error) {
	node := registry.Namehash(name)

	owner, err := call[common.Address](ctx, c, registryAddr, registry.ENSRegistryABI, "owner", node)
	if err != nil {
		return Plan{}, err
	}
	if owner == (common.Address{}) {
		return Plan{}, fmt.Errorf("%w: %q is not registered", ErrDomainNotFound, name.Describe())
	}
	ppfmt.Infof(pp.EmojiLookup, "The owner of %q is %s", name.Describe(), owner)

	if owner != c.Address() {
		approved, err := call[bool](ctx, c, registryAddr, registry.ENSRegistryABI,
			"isApprovedForAll", owner, c.Address())
		if err != nil {
			return Plan{}, err
		}
		if !approved {
			return Plan{}, fmt.Errorf("%w: %q is owned by %s, not by the signing identity %s",
				ErrNotAuthorized, name.Describe(), owner, c.Address())
		}
	}

	resolver, err := call[common.Address](ctx, c, registryAddr, registry.ENSRegistryABI, "resolver", node)
	if err != nil {
		return Plan{}, err
	}
	if resolver == (common.Address{}) {
		return Plan{}, fmt.Errorf("%w: %q has no resolver configured", ErrDomainNotFound, name.Describe())
	}
	ppfmt.Infof(pp.EmojiLookup, "The resolver of %q is %s", name.Describe(), resolver)

	// Resolvers predating EIP-1577 revert here; treat that as "no record yet".
	current, err := call[[]byte](ctx, c, resolver, registry.ENSResolverABI, "contenthash", node)
	if err != nil && !errors.Is(err, chain.ErrTransactionReverted) {
		return Plan{}, err
	}

	data, err := registry.ENSResolverABI.Pack("setContenthash", node, record.Raw)
	if err != nil {
		return Plan{}, fmt.Errorf("packing setContenthash: %w", err)
	}

	return Plan{
		Family:   registry.ENS,
		Name:     name,
		Contract: resolver,
		Method:   "setContenthash",
		Data:     data,
		Record:   record,
		UpToDate: bytes.Equal(current, record.Raw),
	}, nil
}

func locateCNS(ctx context.Context, ppfmt pp.PP, c chain.Client,
	registryAddr common.Address, name domain.Name, record contenthash.Record,
) (Plan, error) {
	token := registry.TokenID(name)

	// The registry reverts ownership queries for unregistered tokens.
	approved, err := call[bool](ctx, c, registryAddr, registry.CNSRegistryABI,
		"isApprovedOrOwner", c.Address(), token)
	if err != nil {
		if errors.Is(err, chain.ErrTransactionReverted) {
			return Plan{}, fmt.Errorf("%w: %q is not registered", ErrDomainNotFound, name.Describe())
		}
		return Plan{}, err
	}
	if !approved {
		return Plan{}, fmt.Errorf("%w: the signing identity %s may not manage %q",
			ErrNotAuthorized, c.Address(), name.Describe())
	}

	resolver, err := call[common.Address](ctx, c, registryAddr, registry.CNSRegistryABI, "resolverOf", token)
	if err != nil {
		if errors.Is(err, chain.ErrTransactionReverted) {
			return Plan{}, fmt.Errorf("%w: %q has no resolver configured", ErrDomainNotFound, name.Describe())
		}
		return Plan{}, err
	}
	if resolver == (common.Address{}) {
		return Plan{}, fmt.Errorf("%w: %q has no resolver configured", ErrDomainNotFound, name.Describe())
	}
	ppfmt.Infof(pp.EmojiLookup, "The resolver of %q is %s", name.Describe(), resolver)

	return planRecordSet(ctx, c, registry.CNS, name, resolver, registry.CNSResolverABI, token, record)
}

func locateUNS(ctx context.Context, ppfmt pp.PP, c chain.Client,
	registryAddr common.Address, name domain.Name, record contenthash.Record,
) (Plan, error) {
	token := registry.TokenID(name)

	exists, err := call[bool](ctx, c, registryAddr, registry.UNSRegistryABI, "exists", token)
	if err != nil {
		return Plan{}, err
	}
	if !exists {
		return Plan{}, fmt.Errorf("%w: %q is not registered", ErrDomainNotFound, name.Describe())
	}

	approved, err := call[bool](ctx, c, registryAddr, registry.UNSRegistryABI,
		"isApprovedOrOwner", c.Address(), token)
	if err != nil {
		return Plan{}, err
	}
	if !approved {
		return Plan{}, fmt.Errorf("%w: the signing identity %s may not manage %q",
			ErrNotAuthorized, c.Address(), name.Describe())
	}
	ppfmt.Infof(pp.EmojiLookup, "%q is managed by the signing identity", name.Describe())

	// The UNS registry stores its records itself.
	return planRecordSet(ctx, c, registry.UNS, name, registryAddr, registry.UNSRegistryABI, token, record)
}

// planRecordSet builds the plan for the key-value record stores shared
// by the Unstoppable registries.
func planRecordSet(ctx context.Context, c chain.Client, family registry.Family, name domain.Name,
	contract common.Address, contractABI abi.ABI, token any, record contenthash.Record,
) (Plan, error) {
	current, err := call[string](ctx, c, contract, contractABI, "get", registry.RecordKey, token)
	if err != nil && !errors.Is(err, chain.ErrTransactionReverted) {
		return Plan{}, err
	}

	data, err := contractABI.Pack("set", registry.RecordKey, record.Human, token)
	if err != nil {
		return Plan{}, fmt.Errorf("packing set: %w", err)
	}

	return Plan{
		Family:   family,
		Name:     name,
		Contract: contract,
		Method:   "set",
		Data:     data,
		Record:   record,
		UpToDate: current == record.Human,
	}, nil
}
