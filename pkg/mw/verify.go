package mw

import (
	"fmt"

	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/pedersen"
)

type Error string

const (
	ErrMalformedCommitment Error = "commitment is not a valid group element"
	ErrMalformedSignature  Error = "signature contains nil or invalid fields"
	ErrKernelMismatch      Error = "aggregate signature does not match kernel excess"
	ErrBalanceViolation    Error = "kernel excess does not commit to zero"
)

func (e Error) Error() string {
	return fmt.Sprintf("mw: %s", string(e))
}

// Verify checks the kernel identity
//
//	partialsSum·G == noncesSum + e·kernel
//
// which simultaneously proves that both parties know the blinding factors
// behind their commitments, that nonce and excess were aggregated correctly,
// and that no value was created or destroyed.
//
// Verify is a pure function of public data: it takes no secret input and
// performs no mutation. All commitments are validated before any arithmetic.
func (tx *Transaction) Verify(p *pedersen.Parameters) error {
	for _, c := range tx.Inputs {
		if !c.IsValid() {
			return ErrMalformedCommitment
		}
	}
	for _, c := range tx.Outputs {
		if !c.IsValid() {
			return ErrMalformedCommitment
		}
	}
	if tx.Signature.PartialsSum == nil || !tx.Signature.NoncesSum.IsValid() {
		return ErrMalformedSignature
	}

	kernel := tx.Kernel(p)
	e := Challenge(p.Group(), tx.Signature.NoncesSum, kernel)

	lhs := p.CommitZero(tx.Signature.PartialsSum).PublicPoint()
	rhs := tx.Signature.NoncesSum.PublicPoint().Add(e.Act(kernel.PublicPoint()))
	if !lhs.Equal(rhs) {
		return ErrKernelMismatch
	}
	return nil
}

// VerifyBalance is a stronger check available to a party that knows the
// excess blinding factor: the kernel excess must be exactly the commitment
// to 0 under it. This holds if and only if the transaction's values balance.
func (tx *Transaction) VerifyBalance(p *pedersen.Parameters, excess curve.Scalar) error {
	if excess == nil {
		return ErrMalformedSignature
	}
	if !tx.Kernel(p).Equal(p.CommitZero(excess)) {
		return ErrBalanceViolation
	}
	return nil
}
