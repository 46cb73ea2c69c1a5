package pedersen

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/math/sample"
)

func TestDeterministicGenerator(t *testing.T) {
	group := curve.Secp256k1{}
	p1 := New(group)
	p2 := New(group)

	assert.True(t, p1.H().Equal(p2.H()), "both parties must derive the same H")
	assert.False(t, p1.H().IsIdentity())
	assert.False(t, p1.H().Equal(group.NewBasePoint()), "H must differ from the base point")
}

func TestCommitHomomorphism(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	r1 := sample.Scalar(rand.Reader, group)
	r2 := sample.Scalar(rand.Reader, group)

	c1 := p.Commit(17, r1)
	c2 := p.Commit(25, r2)

	sum := p.Commit(42, Combine(group, r1, r2))
	assert.True(t, c1.Add(c2).Equal(sum), "Commit(a,r1) + Commit(b,r2) should equal Commit(a+b,r1+r2)")
	assert.True(t, sum.Sub(c2).Equal(c1))
}

func TestCommitHidesValue(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	r1 := sample.Scalar(rand.Reader, group)
	r2 := sample.Scalar(rand.Reader, group)

	assert.False(t, p.Commit(5, r1).Equal(p.Commit(5, r2)),
		"commitments to the same value under different blindings must differ")
	assert.False(t, p.Commit(5, r1).Equal(p.Commit(6, r1)),
		"commitments are binding in the value")
}

func TestCommitZero(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	b := sample.Scalar(rand.Reader, group)
	assert.True(t, p.CommitZero(b).Equal(p.Commit(0, b)),
		"CommitZero(b) should equal Commit(0, b)")
	assert.True(t, p.CommitZero(b).PublicPoint().Equal(b.ActOnBase()),
		"CommitZero is the public key lift of the blinding factor")
}

func TestSumBalancedTransaction(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	bIn := sample.Scalar(rand.Reader, group)
	bChange := sample.Scalar(rand.Reader, group)
	bOut := sample.Scalar(rand.Reader, group)

	input := p.Commit(40, bIn)
	change := p.Commit(15, bChange)
	output := p.Commit(25, bOut)

	kernel := p.Sum([]Commitment{change, output}, []Commitment{input})
	excess := BlindSum(group, []curve.Scalar{bChange, bOut}, []curve.Scalar{bIn})

	assert.True(t, kernel.Equal(p.CommitZero(excess)),
		"balanced values leave the kernel committing to zero under the excess blinding factor")
}

func TestSumUnbalancedTransaction(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	bIn := sample.Scalar(rand.Reader, group)
	bOut := sample.Scalar(rand.Reader, group)

	input := p.Commit(40, bIn)
	output := p.Commit(41, bOut)

	kernel := p.Sum([]Commitment{output}, []Commitment{input})
	excess := BlindSum(group, []curve.Scalar{bOut}, []curve.Scalar{bIn})

	assert.False(t, kernel.Equal(p.CommitZero(excess)),
		"an unbalanced value must surface in the kernel")
}

func TestSumEmpty(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	sum := p.Sum(nil, nil)
	assert.False(t, sum.IsValid(), "the empty sum is the identity and not a valid commitment")
}

func TestBlindSumEmpty(t *testing.T) {
	group := curve.Secp256k1{}
	assert.True(t, Combine(group).IsZero())
	assert.True(t, BlindSum(group, nil, nil).IsZero())
}

func TestCommitmentMarshal(t *testing.T) {
	group := curve.Secp256k1{}
	p := New(group)

	b := sample.Scalar(rand.Reader, group)
	c := p.Commit(123, b)

	data, err := c.MarshalBinary()
	require.NoError(t, err)

	var decoded Commitment
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, decoded.Equal(c))
	assert.True(t, decoded.IsValid())

	var fromEmpty Commitment
	err = fromEmpty.UnmarshalBinary(data[:16])
	assert.ErrorIs(t, err, ErrInvalidCommitment)

	bad := make([]byte, len(data))
	for i := range bad {
		bad[i] = 0xFF
	}
	assert.ErrorIs(t, fromEmpty.UnmarshalBinary(bad), ErrInvalidCommitment)

	var zero Commitment
	_, err = zero.MarshalBinary()
	assert.ErrorIs(t, err, ErrNilFields)
	assert.False(t, zero.IsValid())
}
