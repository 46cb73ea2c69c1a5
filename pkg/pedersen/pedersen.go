// Package pedersen implements homomorphic value commitments of the form
//
//	C = value·H + blinding·G
//
// where G is the group's base point and H is a second generator with no known
// discrete logarithm relation to G. The commitments are additively
// homomorphic, which is what lets a verifier check that the values behind a
// set of commitments balance without learning any of them.
package pedersen

import (
	"fmt"
	"io"

	"github.com/silentledger/mimble/internal/params"
	"github.com/silentledger/mimble/pkg/math/curve"
	"golang.org/x/crypto/sha3"
)

type Error string

const (
	ErrNilFields         Error = "contains nil field"
	ErrInvalidCommitment Error = "commitment is not a valid group element"
)

func (e Error) Error() string {
	return fmt.Sprintf("pedersen: %s", string(e))
}

// hGeneratorTag seeds the derivation of the value generator H.
//
// Deriving H from a fixed public string gives it the nothing-up-my-sleeve
// property: nobody knows a scalar h with H = h·G.
const hGeneratorTag = "mimble/pedersen/generator/H"

// Parameters binds the group and the two generators used for value
// commitments. It is immutable after creation, and is passed explicitly to
// every operation instead of living in global state.
type Parameters struct {
	group curve.Curve
	h     curve.Point
}

// New derives the value generator H for the given group and returns the
// resulting commitment parameters.
//
// The derivation is deterministic, so both parties of a transfer end up with
// the same generators without any negotiation.
func New(group curve.Curve) *Parameters {
	return &Parameters{group: group, h: deriveH(group)}
}

// deriveH maps the fixed tag to a curve point by try-and-increment: we read a
// candidate x coordinate from a cSHAKE stream until one decompresses to a
// point on the curve. Around half of all x coordinates are valid, so this
// terminates quickly.
func deriveH(group curve.Curve) curve.Point {
	shake := sha3.NewCShake128(nil, []byte(hGeneratorTag))
	_, _ = shake.Write([]byte(group.Name()))

	buf := make([]byte, params.BytesPoint)
	buf[0] = 2 // compressed encoding, even y
	for {
		if _, err := io.ReadFull(shake, buf[1:]); err != nil {
			panic(fmt.Sprintf("pedersen: generator derivation failed: %v", err))
		}
		h := group.NewPoint()
		if err := h.UnmarshalBinary(buf); err == nil {
			return h
		}
	}
}

// Group returns the curve these parameters are defined over.
func (p *Parameters) Group() curve.Curve {
	return p.group
}

// H returns a copy of the value generator.
func (p *Parameters) H() curve.Point {
	return p.group.NewPoint().Set(p.h)
}

// Commit computes value·H + blinding·G.
//
// The value is hidden by the blinding factor, but the commitment is binding:
// it can only be opened with the pair that created it.
func (p *Parameters) Commit(value uint64, blinding curve.Scalar) Commitment {
	vH := p.group.NewScalar().SetUInt64(value).Act(p.h)
	bG := blinding.ActOnBase()
	return Commitment{p: vH.Add(bG)}
}

// CommitZero lifts a blinding factor to a commitment of the value 0.
//
// This is the public key of the blinding factor: Commit(0, b) = b·G. It is
// used whenever a party must prove knowledge of a blinding factor without
// revealing a value.
func (p *Parameters) CommitZero(blinding curve.Scalar) Commitment {
	return Commitment{p: blinding.ActOnBase()}
}

// Sum computes Σpositives − Σnegatives over the commitment group.
//
// Both lists may be empty, in which case the result is the commitment to
// (0, 0), i.e. the identity element.
func (p *Parameters) Sum(positives, negatives []Commitment) Commitment {
	sum := p.group.NewPoint()
	for _, c := range positives {
		sum = sum.Add(c.p)
	}
	for _, c := range negatives {
		sum = sum.Sub(c.p)
	}
	return Commitment{p: sum}
}
