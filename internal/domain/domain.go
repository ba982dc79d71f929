// Package domain parses distributed domain names.
package domain

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

// profileDroppingLeadingDots does C2 in UTS#46 with all checks on + removing leading dots.
// This is the main conversion profile in use.
//
//nolint:gochecknoglobals
var (
	profileDroppingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
	profileKeepingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(false),
	)
)

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToA := profileKeepingLeadingDots.ToUnicode(ascii)
	roundTrip, errToU := profileKeepingLeadingDots.ToASCII(unicode)
	if errToA != nil || errToU != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

// ErrNotFQDN means a domain name is not fully qualified.
var ErrNotFQDN error = errors.New("not fully qualified")

// A Name is a fully qualified distributed domain name in its ASCII form.
type Name string

// New normalizes a domain to its ASCII form. Normalization is
// case-insensitive and handles internationalized labels, so suffix
// matching downstream can assume lowercase ASCII.
func New(domain string) (Name, error) {
	normalized, err := profileDroppingLeadingDots.ToASCII(domain)

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	if err != nil {
		return Name(normalized), err
	}

	// A registrable name must have at least a label and a suffix.
	if strings.IndexByte(normalized, '.') == -1 {
		return Name(normalized), ErrNotFQDN
	}

	return Name(normalized), nil
}

// ASCII returns the ASCII form of the name, the form hashed on-chain.
func (n Name) ASCII() string { return string(n) }

// Describe gives the most human-readable form that is still unambiguous.
func (n Name) Describe() string {
	return safelyToUnicode(string(n))
}

// Suffix returns the last label of the name, e.g. "eth" for "example.eth".
func (n Name) Suffix() string {
	s := string(n)
	if i := strings.LastIndexByte(s, '.'); i != -1 {
		return s[i+1:]
	}
	return s
}
