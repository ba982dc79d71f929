package contenthash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

// Namespace codes from the multicodec table.
const (
	nsIPFS  uint64 = 0xe3
	nsSwarm uint64 = 0xe4
)

// swarmManifest is the multicodec code of Swarm manifests.
const swarmManifest uint64 = 0xfa

// ErrMalformedContentHash means a content identifier cannot be decoded
// under its declared namespace.
var ErrMalformedContentHash = errors.New("malformed content hash")

// A Record is a namespaced binary content-hash record together with the
// human-readable identifier it was derived from.
type Record struct {
	Type  Type
	Human string
	Raw   []byte
}

// Hex gives the 0x-prefixed hexadecimal form of the record,
// the form accepted by string-valued registry records.
func (r Record) Hex() string {
	return "0x" + hex.EncodeToString(r.Raw)
}

// Encode decodes the human-readable identifier under the declared
// namespace and prepends the namespace prefix.
func Encode(human string, t Type) (Record, error) {
	switch t {
	case IPFS:
		return encodeIPFS(human)
	case Swarm:
		return encodeSwarm(human)
	default:
		return Record{}, fmt.Errorf("%w: unknown namespace %q", ErrMalformedContentHash, string(t))
	}
}

func encodeIPFS(human string) (Record, error) {
	c, err := cid.Decode(human)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q is not a valid CID: %s", ErrMalformedContentHash, human, err)
	}

	// Version-0 CIDs are stored in their version-1 form.
	if c.Version() == 0 {
		c = cid.NewCidV1(cid.DagProtobuf, c.Hash())
	}

	return Record{
		Type:  IPFS,
		Human: human,
		Raw:   append(varint.ToUvarint(nsIPFS), c.Bytes()...),
	}, nil
}

func encodeSwarm(human string) (Record, error) {
	digest, err := hex.DecodeString(strings.TrimPrefix(human, "0x"))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q is not a valid Swarm hash: %s", ErrMalformedContentHash, human, err)
	}
	if len(digest) != 32 {
		return Record{}, fmt.Errorf("%w: a Swarm hash must have 32 bytes; %q has %d",
			ErrMalformedContentHash, human, len(digest))
	}

	keccak, err := mh.Encode(digest, mh.KECCAK_256)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrMalformedContentHash, err)
	}
	c := cid.NewCidV1(swarmManifest, mh.Multihash(keccak))

	return Record{
		Type:  Swarm,
		Human: hex.EncodeToString(digest),
		Raw:   append(varint.ToUvarint(nsSwarm), c.Bytes()...),
	}, nil
}

// Decode inspects the namespace prefix of a binary record and
// re-derives the human-readable identifier from the payload.
func Decode(raw []byte) (Record, error) {
	ns, read, err := varint.FromUvarint(raw)
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid namespace prefix: %s", ErrMalformedContentHash, err)
	}

	switch ns {
	case nsIPFS:
		return decodeIPFS(raw, raw[read:])
	case nsSwarm:
		return decodeSwarm(raw, raw[read:])
	default:
		return Record{}, fmt.Errorf("%w: unknown namespace code %#x", ErrMalformedContentHash, ns)
	}
}

func decodeIPFS(raw, payload []byte) (Record, error) {
	c, err := cid.Cast(payload)
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid CID payload: %s", ErrMalformedContentHash, err)
	}

	decoded, err := mh.Decode(c.Hash())
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid multihash payload: %s", ErrMalformedContentHash, err)
	}

	// Records encoded from version-0 CIDs render back to the "Qm" form.
	human := c.String()
	if c.Type() == cid.DagProtobuf && decoded.Code == mh.SHA2_256 && decoded.Length == 32 {
		human = cid.NewCidV0(c.Hash()).String()
	}

	return Record{Type: IPFS, Human: human, Raw: raw}, nil
}

func decodeSwarm(raw, payload []byte) (Record, error) {
	c, err := cid.Cast(payload)
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid Swarm payload: %s", ErrMalformedContentHash, err)
	}

	decoded, err := mh.Decode(c.Hash())
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid multihash payload: %s", ErrMalformedContentHash, err)
	}
	if decoded.Code != mh.KECCAK_256 || decoded.Length != 32 {
		return Record{}, fmt.Errorf("%w: a Swarm record must carry a 32-byte Keccak-256 digest",
			ErrMalformedContentHash)
	}

	return Record{Type: Swarm, Human: hex.EncodeToString(decoded.Digest), Raw: raw}, nil
}
