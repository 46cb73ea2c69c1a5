package mw

import (
	"github.com/silentledger/mimble/pkg/hash"
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/math/sample"
	"github.com/silentledger/mimble/pkg/pedersen"
)

// Challenge derives the shared challenge scalar e for a transfer.
//
// The challenge is bound to the aggregate nonce commitment and the kernel
// excess of the transaction being signed, so a signature for one transaction
// cannot be replayed against another. Both parties, and any verifier, can
// derive it because it depends on public data only.
func Challenge(group curve.Curve, noncesSum, kernel pedersen.Commitment) curve.Scalar {
	h := hash.New(hash.BytesWithDomain{
		TheDomain: "Transfer Challenge",
		Bytes:     []byte(group.Name()),
	})
	_ = h.WriteAny(noncesSum, kernel)
	return sample.Scalar(h.Digest(), group)
}
