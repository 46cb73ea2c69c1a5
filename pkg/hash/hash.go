package hash

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/silentledger/mimble/internal/params"
	"github.com/zeebo/blake3"
)

const DigestLengthBytes = params.SecBytes * 2 // 64

// Hash is the hash function we use for deriving session identifiers,
// binding transcripts, and deriving challenge scalars.
//
// Internally, this is a wrapper around blake3, but any hash function with
// an easily extendable output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash struct, and writes out the initial data to its state.
func New(initialData ...WriterToWithDomain) *Hash {
	hash := &Hash{h: blake3.New()}
	for _, d := range initialData {
		_ = hash.WriteAny(d)
	}
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
// If a different length is required, use io.ReadFull(hash.Digest(), out) instead.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - uint64
//   - hash.WriterToWithDomain
//   - encoding.BinaryMarshaler
//
// This function applies its own domain separation for the first two types.
// The third type already suggests which domain to use, and this function respects it.
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case uint64:
			var bytes [8]byte
			binary.BigEndian.PutUint64(bytes[:], t)
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "uint64",
				Bytes:     bytes[:],
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write uint64: %w", err)
			}
		case WriterToWithDomain:
			if err = writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write %s: %w", t.Domain(), err)
			}
		case encoding.BinaryMarshaler:
			var bytes []byte
			if bytes, err = t.MarshalBinary(); err != nil {
				return fmt.Errorf("hash.Hash: marshal: %w", err)
			}
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "BinaryMarshaler",
				Bytes:     bytes,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write BinaryMarshaler: %w", err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
