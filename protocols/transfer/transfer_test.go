package transfer

import (
	"crypto/rand"
	"sync"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/math/sample"
	"github.com/silentledger/mimble/pkg/mw"
	"github.com/silentledger/mimble/pkg/party"
	"github.com/silentledger/mimble/pkg/pedersen"
	"github.com/silentledger/mimble/pkg/protocol"
)

const (
	aliceID party.ID = "alice"
	bobID   party.ID = "bob"
)

// runHandlers shuttles messages between both parties until both finish.
func runHandlers(h0, h1 *protocol.TwoPartyHandler) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for msg := range h0.Listen() {
			h1.Accept(msg)
		}
	}()
	go func() {
		defer wg.Done()
		for msg := range h1.Listen() {
			h0.Accept(msg)
		}
	}()
	wg.Wait()
}

func newHandlers(t *testing.T, senderConfig *SenderConfig) (sender, receiver *protocol.TwoPartyHandler) {
	t.Helper()
	sessionID := []byte("test session")
	sender, err := protocol.NewTwoPartyHandler(StartSender(senderConfig, aliceID, bobID), sessionID, true)
	require.NoError(t, err)
	receiver, err = protocol.NewTwoPartyHandler(StartReceiver(&ReceiverConfig{}, bobID, aliceID), sessionID, false)
	require.NoError(t, err)
	return sender, receiver
}

func TestPartialSignature(t *testing.T) {
	group := curve.Secp256k1{}
	p := pedersen.New(group)

	blinding := sample.Scalar(rand.Reader, group)
	nonce := sample.Scalar(rand.Reader, group)
	e := sample.Scalar(rand.Reader, group)

	nonceCommit := p.CommitZero(nonce)
	blindingCommit := p.CommitZero(blinding)

	sig := PartialSign(group, e, nonce, blinding)
	require.NoError(t, VerifyPartial(p, e, sig, nonceCommit, blindingCommit))

	one := group.NewScalar().SetUInt64(1)

	badSig := group.NewScalar().Set(sig).Add(one)
	assert.ErrorIs(t, VerifyPartial(p, e, badSig, nonceCommit, blindingCommit), ErrInvalidPartialSignature)

	badE := group.NewScalar().Set(e).Add(one)
	assert.ErrorIs(t, VerifyPartial(p, badE, sig, nonceCommit, blindingCommit), ErrInvalidPartialSignature)

	badNonceCommit := p.CommitZero(group.NewScalar().Set(nonce).Add(one))
	assert.ErrorIs(t, VerifyPartial(p, e, sig, badNonceCommit, blindingCommit), ErrInvalidPartialSignature)

	badBlindingCommit := p.CommitZero(group.NewScalar().Set(blinding).Add(one))
	assert.ErrorIs(t, VerifyPartial(p, e, sig, nonceCommit, badBlindingCommit), ErrInvalidPartialSignature)

	assert.ErrorIs(t, VerifyPartial(p, nil, sig, nonceCommit, blindingCommit), ErrInvalidPartialSignature)
	assert.ErrorIs(t, VerifyPartial(p, e, sig, pedersen.Commitment{}, blindingCommit), pedersen.ErrInvalidCommitment)
}

func TestAggregate(t *testing.T) {
	group := curve.Secp256k1{}
	p := pedersen.New(group)

	e := sample.Scalar(rand.Reader, group)

	b1 := sample.Scalar(rand.Reader, group)
	k1 := sample.Scalar(rand.Reader, group)
	b2 := sample.Scalar(rand.Reader, group)
	k2 := sample.Scalar(rand.Reader, group)

	s1 := PartialSign(group, e, k1, b1)
	s2 := PartialSign(group, e, k2, b2)

	nonceCommits := []pedersen.Commitment{p.CommitZero(k1), p.CommitZero(k2)}
	sig := Aggregate(p, []curve.Scalar{s1, s2}, nonceCommits)

	blindingSum := p.CommitZero(pedersen.Combine(group, b1, b2))
	lhs := p.CommitZero(sig.PartialsSum).PublicPoint()
	rhs := sig.NoncesSum.PublicPoint().Add(e.Act(blindingSum.PublicPoint()))
	assert.True(t, lhs.Equal(rhs),
		"the aggregate must satisfy the identity the partials satisfy individually")
}

func TestTransfer(t *testing.T) {
	sender, receiver := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 25})
	runHandlers(sender, receiver)

	senderResult, err := sender.Result()
	require.NoError(t, err)
	tx, ok := senderResult.(*mw.Transaction)
	require.True(t, ok)

	receiverResult, err := receiver.Result()
	require.NoError(t, err)
	rr, ok := receiverResult.(*ReceiverResult)
	require.True(t, ok)

	p := pedersen.New(curve.Secp256k1{})
	require.NoError(t, tx.Verify(p))

	assert.EqualValues(t, 25, rr.Amount)
	assert.True(t, p.Commit(rr.Amount, rr.Blinding).Equal(rr.Output),
		"the receiver must be able to open its output")

	require.Len(t, tx.Inputs, 1)
	require.Len(t, tx.Outputs, 2)
	assert.True(t, tx.Outputs[1].Equal(rr.Output),
		"the receiver's output must appear in the final transaction")
}

func TestTransferZeroAmount(t *testing.T) {
	sender, receiver := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 0})
	runHandlers(sender, receiver)

	senderResult, err := sender.Result()
	require.NoError(t, err)
	tx := senderResult.(*mw.Transaction)

	p := pedersen.New(curve.Secp256k1{})
	require.NoError(t, tx.Verify(p))

	receiverResult, err := receiver.Result()
	require.NoError(t, err)
	rr := receiverResult.(*ReceiverResult)
	assert.EqualValues(t, 0, rr.Amount)
	assert.True(t, p.Commit(0, rr.Blinding).Equal(rr.Output))
}

func TestTransferFullAmount(t *testing.T) {
	sender, receiver := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 40})
	runHandlers(sender, receiver)

	senderResult, err := sender.Result()
	require.NoError(t, err)
	tx := senderResult.(*mw.Transaction)

	p := pedersen.New(curve.Secp256k1{})
	require.NoError(t, tx.Verify(p))
}

func TestTransferAmountExceedsInput(t *testing.T) {
	start := StartSender(&SenderConfig{InputAmount: 10, TransferAmount: 11}, aliceID, bobID)
	_, err := protocol.NewTwoPartyHandler(start, []byte("test session"), true)
	assert.Error(t, err)
}

func TestTransferTamperedResponse(t *testing.T) {
	group := curve.Secp256k1{}
	sender, receiver := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 25})

	proposal := <-sender.Listen()
	receiver.Accept(proposal)
	response := <-receiver.Listen()

	content := &message2R{
		Sig:            group.NewScalar(),
		NonceCommit:    pedersen.EmptyCommitment(group),
		BlindingCommit: pedersen.EmptyCommitment(group),
	}
	require.NoError(t, cbor.Unmarshal(response.Data, content))
	content.Sig = content.Sig.Add(group.NewScalar().SetUInt64(1))
	data, err := cbor.Marshal(content)
	require.NoError(t, err)
	response.Data = data

	sender.Accept(response)

	_, err = sender.Result()
	assert.ErrorIs(t, err, ErrInvalidPartialSignature,
		"a tampered partial must abort the protocol before aggregation")
}

func TestTransferUnbalancedProposal(t *testing.T) {
	group := curve.Secp256k1{}
	sender, receiver := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 25})

	proposal := <-sender.Listen()

	content := &message1S{
		Input:       pedersen.EmptyCommitment(group),
		Change:      pedersen.EmptyCommitment(group),
		NonceCommit: pedersen.EmptyCommitment(group),
		SumCommit:   pedersen.EmptyCommitment(group),
	}
	require.NoError(t, cbor.Unmarshal(proposal.Data, content))
	content.Amount++
	data, err := cbor.Marshal(content)
	require.NoError(t, err)
	proposal.Data = data

	receiver.Accept(proposal)

	_, err = receiver.Result()
	assert.ErrorIs(t, err, mw.ErrBalanceViolation,
		"the receiver must refuse to sign a proposal whose values do not balance")
}

func TestTransferResponseWithoutOutput(t *testing.T) {
	group := curve.Secp256k1{}
	sender, receiver := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 0})

	proposal := <-sender.Listen()
	receiver.Accept(proposal)
	response := <-receiver.Listen()

	content := &message2R{
		Sig:            group.NewScalar(),
		NonceCommit:    pedersen.EmptyCommitment(group),
		BlindingCommit: pedersen.EmptyCommitment(group),
	}
	require.NoError(t, cbor.Unmarshal(response.Data, content))
	// For a zero amount the output commitment equals the blinding commitment,
	// so leaving it out must yield the same transaction.
	content.Output = nil
	data, err := cbor.Marshal(content)
	require.NoError(t, err)
	response.Data = data

	sender.Accept(response)

	senderResult, err := sender.Result()
	require.NoError(t, err)
	tx := senderResult.(*mw.Transaction)

	p := pedersen.New(group)
	require.NoError(t, tx.Verify(p))
	require.Len(t, tx.Outputs, 2)
	assert.True(t, tx.Outputs[1].Equal(*content.BlindingCommit))
}

func TestTransferSessionBinding(t *testing.T) {
	sender, _ := newHandlers(t, &SenderConfig{InputAmount: 40, TransferAmount: 25})
	other, err := protocol.NewTwoPartyHandler(
		StartReceiver(&ReceiverConfig{}, bobID, aliceID), []byte("another session"), false)
	require.NoError(t, err)

	proposal := <-sender.Listen()
	assert.False(t, other.CanAccept(proposal),
		"a message from a different session must be rejected")
}
