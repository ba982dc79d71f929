// Package updater orchestrates one content-hash update: classify the
// name, encode the record, connect to the chain, locate and authorize
// the target, and then simulate or submit the transaction.
package updater

import (
	"context"
	"fmt"

	"github.com/dwebname/dwebup/internal/chain"
	"github.com/dwebname/dwebup/internal/config"
	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/domain"
	"github.com/dwebname/dwebup/internal/locator"
	"github.com/dwebname/dwebup/internal/pp"
	"github.com/dwebname/dwebup/internal/registry"
)

// An Updater performs single content-hash updates.
type Updater struct {
	dial chain.Dialer
}

// New creates a new [Updater] dialing chains with dial.
func New(dial chain.Dialer) Updater {
	return Updater{dial: dial}
}

// Update performs one update (or dry run) as configured. Every failure
// aborts the invocation; nothing is retried. The chain is not touched
// before the name, the content type, and the content hash all validate
// locally, and state is only mutated by the final send.
func (u Updater) Update(ctx context.Context, ppfmt pp.PP, c *config.Config) (Result, error) {
	name, err := domain.New(c.Domain)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q: %s", registry.ErrUnsupportedDomain, c.Domain, err)
	}

	family, err := registry.Classify(name)
	if err != nil {
		return Result{}, err
	}
	ppfmt.Infof(pp.EmojiName, "%q belongs to %s", name.Describe(), family.Describe())

	if !family.Supports(c.ContentType) {
		return Result{}, fmt.Errorf("%w: %s does not store %s records (supported: %s)",
			registry.ErrUnsupportedContentType, family.Describe(), c.ContentType,
			pp.JoinMap(contenthash.Type.String, family.ContentTypes()))
	}

	record, err := contenthash.Encode(c.ContentHash, c.ContentType)
	if err != nil {
		return Result{}, err
	}
	ppfmt.Infof(pp.EmojiEncode, "Encoded the %s record as %s", record.Type.Describe(), record.Hex())

	dialCtx, cancelDial := context.WithTimeout(ctx, c.RPCTimeout)
	defer cancelDial()
	client, err := u.dial(dialCtx, ppfmt, c.Secret, c.RPCURL)
	if err != nil {
		return Result{}, err
	}
	defer client.Close()

	locateCtx, cancelLocate := context.WithTimeout(ctx, c.RPCTimeout)
	defer cancelLocate()
	plan, err := locator.Locate(locateCtx, ppfmt, client, family, name, record)
	if err != nil {
		return Result{}, err
	}

	if plan.UpToDate {
		ppfmt.Noticef(pp.EmojiAlreadyDone, "The content hash of %q is already up to date", name.Describe())
		return Result{Plan: plan, DryRun: c.DryRun}, nil
	}

	if c.DryRun {
		ppfmt.Noticef(pp.EmojiDryRun, "Dry run: would call %s", plan.Describe())
		return Result{Plan: plan, DryRun: true}, nil
	}

	sendCtx, cancelSend := context.WithTimeout(ctx, c.TxTimeout)
	defer cancelSend()
	txHash, err := client.Send(sendCtx, ppfmt, plan.Contract, plan.Data)
	if err != nil {
		return Result{}, err
	}

	ppfmt.Noticef(pp.EmojiGood, "Updated the content hash of %q", name.Describe())
	return Result{Plan: plan, TxHash: txHash, Sent: true}, nil
}
