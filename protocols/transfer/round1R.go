package transfer

import (
	"io"

	"github.com/silentledger/mimble/internal/round"
	"github.com/silentledger/mimble/pkg/math/sample"
	"github.com/silentledger/mimble/pkg/mw"
	"github.com/silentledger/mimble/pkg/pedersen"
)

type round1R struct {
	*round.Helper
	config   *ReceiverConfig
	pedersen *pedersen.Parameters
	rand     io.Reader

	proposal *message1S
}

func (r *round1R) VerifyMessage(msg round.Message) error {
	body, ok := msg.Content.(*message1S)
	if !ok || body == nil {
		return round.ErrInvalidContent
	}
	if body.Input == nil || body.Change == nil || body.NonceCommit == nil || body.SumCommit == nil {
		return round.ErrNilFields
	}
	if !body.Input.IsValid() || !body.Change.IsValid() ||
		!body.NonceCommit.IsValid() || !body.SumCommit.IsValid() {
		return pedersen.ErrInvalidCommitment
	}
	return nil
}

func (r *round1R) StoreMessage(msg round.Message) error {
	r.proposal = msg.Content.(*message1S)
	return nil
}

func (r *round1R) Finalize(out chan<- *round.Message) (round.Session, error) {
	group := r.Group()
	body := r.proposal

	blinding := sample.Scalar(r.rand, group)
	nonce := sample.Scalar(r.rand, group)

	output := r.pedersen.Commit(body.Amount, blinding)
	nonceCommit := r.pedersen.CommitZero(nonce)
	blindingCommit := r.pedersen.CommitZero(blinding)

	inputs := []pedersen.Commitment{*body.Input}
	outputs := []pedersen.Commitment{*body.Change, output}
	kernel := r.pedersen.Sum(outputs, inputs)

	// The sender's SumCommit lets us check that the proposal balances
	// before signing anything: when the values cancel, the kernel excess is
	// exactly the sum of both parties' blinding commitments.
	if !kernel.Equal(body.SumCommit.Add(blindingCommit)) {
		return r.AbortRound(mw.ErrBalanceViolation, r.OtherID()), nil
	}

	noncesSum := body.NonceCommit.Add(nonceCommit)
	e := mw.Challenge(group, noncesSum, kernel)
	sig := PartialSign(group, e, nonce, blinding)

	msg := &message2R{
		Sig:            sig,
		NonceCommit:    &nonceCommit,
		BlindingCommit: &blindingCommit,
		Output:         &output,
	}
	if err := r.SendMessage(out, msg, r.OtherID()); err != nil {
		return r, err
	}

	return r.ResultRound(&ReceiverResult{
		Amount:   body.Amount,
		Output:   output,
		Blinding: blinding,
	}), nil
}

func (r *round1R) MessageContent() round.Content {
	group := r.Group()
	return &message1S{
		Input:       pedersen.EmptyCommitment(group),
		Change:      pedersen.EmptyCommitment(group),
		NonceCommit: pedersen.EmptyCommitment(group),
		SumCommit:   pedersen.EmptyCommitment(group),
	}
}

func (round1R) Number() round.Number { return 1 }
