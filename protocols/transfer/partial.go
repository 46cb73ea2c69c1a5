package transfer

import (
	"errors"

	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/mw"
	"github.com/silentledger/mimble/pkg/pedersen"
)

// ErrInvalidPartialSignature is returned when a party's partial signature
// does not match its public nonce and blinding commitments. Aggregation must
// never proceed past this error.
var ErrInvalidPartialSignature = errors.New("transfer: partial signature does not match its commitments")

// PartialSign computes one party's contribution to the aggregate signature,
//
//	s = k + e·b
//
// over the scalar field, for nonce k, challenge e and blinding factor b.
// The inputs are not modified.
func PartialSign(group curve.Curve, e, nonce, blinding curve.Scalar) curve.Scalar {
	s := group.NewScalar().Set(e).Mul(blinding)
	return s.Add(nonce)
}

// VerifyPartial checks the identity
//
//	Commit(0, s) == nonceCommit + e·blindingCommit
//
// which holds exactly when s was formed as nonce + e·blinding for the secrets
// behind the two commitments. This lets a counterparty confirm a partial
// signature is well-formed without learning either secret.
func VerifyPartial(p *pedersen.Parameters, e, sig curve.Scalar, nonceCommit, blindingCommit pedersen.Commitment) error {
	if e == nil || sig == nil {
		return ErrInvalidPartialSignature
	}
	if !nonceCommit.IsValid() || !blindingCommit.IsValid() {
		return pedersen.ErrInvalidCommitment
	}
	lhs := p.CommitZero(sig).PublicPoint()
	rhs := nonceCommit.PublicPoint().Add(e.Act(blindingCommit.PublicPoint()))
	if !lhs.Equal(rhs) {
		return ErrInvalidPartialSignature
	}
	return nil
}

// Aggregate sums the already-public partial signature scalars and nonce
// commitments into the final transaction signature. No secret material is
// combined here: every summand has crossed the wire or is derivable from
// public data.
func Aggregate(p *pedersen.Parameters, partials []curve.Scalar, nonceCommits []pedersen.Commitment) mw.TxSignature {
	return mw.TxSignature{
		PartialsSum: pedersen.Combine(p.Group(), partials...),
		NoncesSum:   p.Sum(nonceCommits, nil),
	}
}
