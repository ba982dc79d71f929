// Package contenthash encodes and decodes namespaced content-hash
// records, the binary form stored on-chain to point a name at
// off-chain content.
package contenthash

// Type is the type of content-addressing namespaces.
type Type string

// All supported namespaces.
const (
	IPFS  Type = "ipfs-ns"  // IPFS CIDs
	Swarm Type = "swarm-ns" // Swarm hashes
)

// ParseType parses a namespace tag such as "ipfs-ns".
func ParseType(tag string) (Type, bool) {
	switch Type(tag) {
	case IPFS:
		return IPFS, true
	case Swarm:
		return Swarm, true
	default:
		return "", false
	}
}

// String returns the namespace tag.
func (t Type) String() string { return string(t) }

// Describe gives a human-readable name of the namespace.
func (t Type) Describe() string {
	switch t {
	case IPFS:
		return "IPFS"
	case Swarm:
		return "Swarm"
	default:
		return string(t)
	}
}
