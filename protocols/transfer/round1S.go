package transfer

import (
	"io"

	"github.com/silentledger/mimble/internal/round"
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/math/sample"
	"github.com/silentledger/mimble/pkg/pedersen"
)

type round1S struct {
	*round.Helper
	config   *SenderConfig
	pedersen *pedersen.Parameters
	rand     io.Reader
}

func (round1S) VerifyMessage(round.Message) error { return nil }

func (round1S) StoreMessage(round.Message) error { return nil }

func (r *round1S) Finalize(out chan<- *round.Message) (round.Session, error) {
	group := r.Group()
	changeAmount := r.config.InputAmount - r.config.TransferAmount

	inputBlinding := sample.Scalar(r.rand, group)
	changeBlinding := sample.Scalar(r.rand, group)
	nonce := sample.Scalar(r.rand, group)

	input := r.pedersen.Commit(r.config.InputAmount, inputBlinding)
	change := r.pedersen.Commit(changeAmount, changeBlinding)
	nonceCommit := r.pedersen.CommitZero(nonce)

	// rs = changeBlinding − inputBlinding is the sender's share of the
	// excess blinding factor, and the secret it signs with.
	rs := pedersen.BlindSum(group,
		[]curve.Scalar{changeBlinding},
		[]curve.Scalar{inputBlinding})
	sumCommit := r.pedersen.CommitZero(rs)

	msg := &message1S{
		Amount:      r.config.TransferAmount,
		Input:       &input,
		Change:      &change,
		NonceCommit: &nonceCommit,
		SumCommit:   &sumCommit,
	}
	if err := r.SendMessage(out, msg, r.OtherID()); err != nil {
		return r, err
	}

	return &round2S{
		round1S:     r,
		input:       input,
		change:      change,
		nonce:       nonce,
		nonceCommit: nonceCommit,
		excess:      rs,
	}, nil
}

func (round1S) MessageContent() round.Content { return nil }

func (round1S) Number() round.Number { return 1 }
