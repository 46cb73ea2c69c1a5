package transfer

import (
	"github.com/silentledger/mimble/internal/round"
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/mw"
	"github.com/silentledger/mimble/pkg/pedersen"
)

type round2S struct {
	*round1S

	// input and change are the sender's commitments from the proposal.
	input, change pedersen.Commitment
	// nonce is the sender's secret nonce k, nonceCommit its public lift.
	nonce       curve.Scalar
	nonceCommit pedersen.Commitment
	// excess is the sender's share of the excess blinding factor.
	excess curve.Scalar

	response *message2R
}

func (r *round2S) VerifyMessage(msg round.Message) error {
	body, ok := msg.Content.(*message2R)
	if !ok || body == nil {
		return round.ErrInvalidContent
	}
	if body.Sig == nil || body.NonceCommit == nil || body.BlindingCommit == nil {
		return round.ErrNilFields
	}
	if !body.NonceCommit.IsValid() || !body.BlindingCommit.IsValid() {
		return pedersen.ErrInvalidCommitment
	}
	if body.Output != nil && !body.Output.IsValid() {
		return pedersen.ErrInvalidCommitment
	}
	return nil
}

func (r *round2S) StoreMessage(msg round.Message) error {
	r.response = msg.Content.(*message2R)
	return nil
}

func (r *round2S) Finalize(chan<- *round.Message) (round.Session, error) {
	group := r.Group()
	body := r.response

	// A response without an explicit output commitment means the receiver's
	// blinding commitment doubles as a zero-value output.
	output := body.Output
	if output == nil {
		output = body.BlindingCommit
	}

	inputs := []pedersen.Commitment{r.input}
	outputs := []pedersen.Commitment{r.change, *output}

	noncesSum := r.nonceCommit.Add(*body.NonceCommit)
	kernel := r.pedersen.Sum(outputs, inputs)
	e := mw.Challenge(group, noncesSum, kernel)

	// A malformed partial must never be summed into the aggregate.
	if err := VerifyPartial(r.pedersen, e, body.Sig, *body.NonceCommit, *body.BlindingCommit); err != nil {
		return r.AbortRound(err, r.OtherID()), nil
	}

	ownSig := PartialSign(group, e, r.nonce, r.excess)
	sig := Aggregate(r.pedersen,
		[]curve.Scalar{ownSig, body.Sig},
		[]pedersen.Commitment{r.nonceCommit, *body.NonceCommit})

	tx := &mw.Transaction{
		Inputs:    inputs,
		Outputs:   outputs,
		Signature: sig,
	}
	if err := tx.Verify(r.pedersen); err != nil {
		return r.AbortRound(err), nil
	}

	return r.ResultRound(tx), nil
}

func (r *round2S) MessageContent() round.Content {
	group := r.Group()
	return &message2R{
		Sig:            group.NewScalar(),
		NonceCommit:    pedersen.EmptyCommitment(group),
		BlindingCommit: pedersen.EmptyCommitment(group),
	}
}

func (round2S) Number() round.Number { return 2 }
