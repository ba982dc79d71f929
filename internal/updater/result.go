package updater

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dwebname/dwebup/internal/locator"
)

// A Result reports what an update did. Either the transaction in TxHash
// was submitted and confirmed (Sent), or nothing touched chain state at
// all (dry runs and already-up-to-date records).
type Result struct {
	Plan   locator.Plan
	TxHash common.Hash
	DryRun bool
	Sent   bool
}

// Describe gives a human-readable summary of the result.
func (r Result) Describe() string {
	switch {
	case r.Sent:
		return fmt.Sprintf("submitted %s via %s", r.TxHash, r.Plan.Describe())
	case r.Plan.UpToDate:
		return fmt.Sprintf("already up to date: %s", r.Plan.Describe())
	default:
		return fmt.Sprintf("dry run: %s", r.Plan.Describe())
	}
}
