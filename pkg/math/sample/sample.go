package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/silentledger/mimble/pkg/math/curve"
)

// maxIterations is the number of times we attempt to read random bytes before
// giving up.
const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar returns a new scalar, sampled from the uniform distribution, using
// entropy from rand.
//
// We sample more bytes than strictly necessary, so that the modular reduction
// doesn't introduce any bias.
func Scalar(rand io.Reader, group curve.Curve) curve.Scalar {
	buffer := make([]byte, group.SafeScalarBytes())
	mustReadBits(rand, buffer)
	n := new(saferith.Nat).SetBytes(buffer)
	return group.NewScalar().SetNat(n)
}

// ScalarPointPair returns a new scalar, sampled like Scalar, along with the
// result of acting on the group's base point with it.
func ScalarPointPair(rand io.Reader, group curve.Curve) (curve.Scalar, curve.Point) {
	s := Scalar(rand, group)
	return s, s.ActOnBase()
}
