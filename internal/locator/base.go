// Package locator resolves a classified domain name to a concrete
// update plan: the contract to write to, the method, and the encoded
// arguments. It always verifies existence and write authority against
// live chain state first, which is what makes dry runs faithful.
package locator

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/domain"
	"github.com/dwebname/dwebup/internal/registry"
)

var (
	// ErrDomainNotFound means the name has no record on the connected chain.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrNotAuthorized means the signing identity cannot write the record.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrUnsupportedChain means the family has no registry on the connected chain.
	ErrUnsupportedChain = errors.New("no registry on this chain")
)

// A Plan is the resolved target of an update. It is complete before any
// transaction is sent, so a dry run can stop after constructing it.
type Plan struct {
	Family   registry.Family
	Name     domain.Name
	Contract common.Address
	Method   string
	Data     []byte
	Record   contenthash.Record

	// UpToDate reports that the stored record already matches Record
	// and nothing needs to be sent.
	UpToDate bool
}

// Describe gives a human-readable description of the plan.
func (p Plan) Describe() string {
	return fmt.Sprintf("%s(...) on %s at %s for %q",
		p.Method, p.Family.Describe(), p.Contract, p.Name.Describe())
}
