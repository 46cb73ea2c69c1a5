package pedersen

import (
	"io"

	"github.com/silentledger/mimble/pkg/math/curve"
)

// Commitment is a Pedersen commitment, an opaque element of the curve group.
//
// Commitments are value types: operations return new commitments and never
// mutate their operands.
type Commitment struct {
	p curve.Point
}

// EmptyCommitment returns an uninitialized commitment for the given group,
// suitable as a decoding target for wire messages.
func EmptyCommitment(group curve.Curve) *Commitment {
	return &Commitment{p: group.NewPoint()}
}

// Add returns the sum of both commitments.
//
// By the homomorphic property, this is a commitment to the sum of the values
// and the sum of the blinding factors.
func (c Commitment) Add(other Commitment) Commitment {
	return Commitment{p: c.p.Add(other.p)}
}

// Sub returns the difference of both commitments.
func (c Commitment) Sub(other Commitment) Commitment {
	return Commitment{p: c.p.Sub(other.p)}
}

// Equal checks if both commitments are the same group element.
func (c Commitment) Equal(other Commitment) bool {
	if c.p == nil || other.p == nil {
		return false
	}
	return c.p.Equal(other.p)
}

// IsValid returns true if the commitment is an initialized, non-identity
// group element. Off-curve encodings are already rejected during decoding.
func (c Commitment) IsValid() bool {
	return c.p != nil && !c.p.IsIdentity()
}

// PublicPoint returns a copy of the underlying curve point.
func (c Commitment) PublicPoint() curve.Point {
	return c.p.Curve().NewPoint().Set(c.p)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Commitment) MarshalBinary() ([]byte, error) {
	if c.p == nil {
		return nil, ErrNilFields
	}
	return c.p.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// The wire format pins the curve: a commitment decoded from bytes is always
// a secp256k1 point, unless the commitment was pre-initialized for another
// group with EmptyCommitment.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	if c.p == nil {
		c.p = curve.Secp256k1{}.NewPoint()
	}
	if err := c.p.UnmarshalBinary(data); err != nil {
		return ErrInvalidCommitment
	}
	return nil
}

// WriteTo makes Commitment implement the io.WriterTo interface.
func (c Commitment) WriteTo(w io.Writer) (int64, error) {
	data, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (Commitment) Domain() string {
	return "Pedersen Commitment"
}
