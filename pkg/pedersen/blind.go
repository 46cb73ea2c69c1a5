package pedersen

import (
	"github.com/silentledger/mimble/pkg/math/curve"
)

// Combine folds the given blinding factors with field addition.
//
// The sum is associative and commutative, and an empty list yields the zero
// scalar. The inputs are not modified.
func Combine(group curve.Curve, factors ...curve.Scalar) curve.Scalar {
	sum := group.NewScalar()
	for _, f := range factors {
		sum.Add(f)
	}
	return sum
}

// BlindSum computes the net blinding factor Σpositives − Σnegatives.
//
// When positives are the blinding factors of a transaction's outputs and
// negatives those of its inputs, the result is the excess blinding factor:
// the scalar under which the kernel excess commits to zero whenever the
// transaction's values balance.
func BlindSum(group curve.Curve, positives, negatives []curve.Scalar) curve.Scalar {
	sum := Combine(group, positives...)
	return sum.Sub(Combine(group, negatives...))
}
