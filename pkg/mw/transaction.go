// Package mw assembles and verifies the public side of a confidential
// transfer: the transaction kernel, the aggregate signature, and the single
// algebraic identity a third party checks to accept a transaction.
package mw

import (
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/pedersen"
)

// TxSignature is the aggregate of both parties' partial signatures.
//
// PartialsSum is the field sum of the individual signature scalars, and
// NoncesSum the group sum of the individual public nonce commitments. Both
// summands are public before aggregation; no secret material is combined.
type TxSignature struct {
	PartialsSum curve.Scalar
	NoncesSum   pedersen.Commitment
}

// Transaction is the finalized, public form of a transfer: the input and
// output commitments and the aggregate signature authorizing them.
//
// A Transaction is never mutated after construction.
type Transaction struct {
	Inputs    []pedersen.Commitment
	Outputs   []pedersen.Commitment
	Signature TxSignature
}

// Kernel computes the transaction's excess commitment Σoutputs − Σinputs.
//
// If and only if the output values sum to the input values, the kernel is a
// commitment to the value 0 under the excess blinding factor, which is what
// the aggregate signature proves knowledge of.
func (tx *Transaction) Kernel(p *pedersen.Parameters) pedersen.Commitment {
	return p.Sum(tx.Outputs, tx.Inputs)
}
