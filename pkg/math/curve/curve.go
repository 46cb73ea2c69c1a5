package curve

import (
	"encoding"

	"github.com/cronokirby/saferith"
)

// Curve represents the starting point for working with an elliptic curve group.
//
// The expectation is that this interface will be implemented by a concrete
// empty struct, and use this to bootstrap operations by creating scalars and
// points.
type Curve interface {
	// NewPoint creates a new identity point.
	NewPoint() Point
	// NewBasePoint creates the generator of this group.
	NewBasePoint() Point
	// NewScalar creates a new scalar with the value of 0.
	NewScalar() Scalar
	// Name returns the name of this curve.
	//
	// This should be unique between curves.
	Name() string
	// SafeScalarBytes returns the number of random bytes needed to sample
	// a scalar through modular reduction.
	//
	// Usually, this is going to be the number of bytes in the scalar, plus
	// an extra security parameters worth of bytes, say 32. This is to make
	// sure that the modular reduction doesn't introduce any bias.
	SafeScalarBytes() int
	// Order returns a Modulus holding the order of this group.
	Order() *saferith.Modulus
}

// Scalar represents a number modulo the order of some elliptic curve group.
//
// Scalars act on points of the group.
//
// The methods on Scalar are all defined to mutate the receiver, and then
// return it, for chaining.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the Curve associated with this kind of scalar.
	Curve() Curve
	// Add mutates this scalar, by adding in another.
	Add(Scalar) Scalar
	// Sub mutates this scalar, by subtracting another.
	Sub(Scalar) Scalar
	// Negate mutates this scalar, replacing it with its negation.
	Negate() Scalar
	// Mul mutates this scalar, multiplying it with another.
	Mul(Scalar) Scalar
	// Invert mutates this scalar, replacing it with its multiplicative inverse.
	Invert() Scalar
	// Equal checks if this scalar is equal to another.
	//
	// This check should be done in constant time.
	Equal(Scalar) bool
	// IsZero checks if this scalar is equal to 0.
	IsZero() bool
	// Set mutates this scalar, replacing its value with another.
	Set(Scalar) Scalar
	// SetNat mutates this scalar, replacing its value with a number.
	//
	// The number is reduced modulo the order of the group.
	SetNat(*saferith.Nat) Scalar
	// SetUInt64 mutates this scalar, replacing its value with a small integer.
	SetUInt64(uint64) Scalar
	// Act acts on a point with this scalar, returning a new point.
	Act(Point) Point
	// ActOnBase acts on the base point with this scalar, returning a new point.
	ActOnBase() Point
}

// Point represents an element of our elliptic curve group.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the Curve associated with this kind of point.
	Curve() Curve
	// Add returns the sum of this point with another, without modifying either.
	Add(Point) Point
	// Sub returns the difference of this point with another, without modifying either.
	Sub(Point) Point
	// Negate returns the negation of this point, without modifying it.
	Negate() Point
	// Set mutates this point, replacing its value with another.
	Set(Point) Point
	// Equal checks if this point is equal to another.
	Equal(Point) bool
	// IsIdentity checks if this is the identity element of this group.
	IsIdentity() bool
}

// FromHash converts a hash value to a Scalar.
//
// There is some disagreement about how this should be done.
// [NSA] suggests that this is done in the obvious
// manner, but [SECG] truncates the hash to the bit-length of the curve order
// first. We follow [SECG] because that's what OpenSSL does. Additionally,
// OpenSSL right shifts excess bits from the number if the hash is too large
// and we mirror that too.
func FromHash(group Curve, h []byte) Scalar {
	order := group.Order()
	orderBits := order.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(h) > orderBytes {
		h = h[:orderBytes]
	}
	s := new(saferith.Nat).SetBytes(h)
	excess := len(h)*8 - orderBits
	if excess > 0 {
		s.Rsh(s, uint(excess), -1)
	}
	return group.NewScalar().SetNat(s)
}
