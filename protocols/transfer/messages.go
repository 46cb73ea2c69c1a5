package transfer

import (
	"github.com/silentledger/mimble/internal/round"
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/pedersen"
)

// message1S is the sender's proposal: the transfer amount and the sender's
// public commitments.
type message1S struct {
	// Amount is the value offered to the receiver.
	Amount uint64
	// Input commits to the value being spent.
	Input *pedersen.Commitment
	// Change commits to the part of the input the sender keeps.
	Change *pedersen.Commitment
	// NonceCommit is the sender's public nonce Commit(0, k).
	NonceCommit *pedersen.Commitment
	// SumCommit commits to the sender's net blinding factor
	// changeBlinding − inputBlinding under the value 0. The receiver uses it
	// to check that the proposal balances before signing anything.
	SumCommit *pedersen.Commitment
}

func (message1S) RoundNumber() round.Number { return 1 }

// message2R is the receiver's response.
type message2R struct {
	// Sig is the receiver's partial signature s = k + e·b over the shared
	// challenge e.
	Sig curve.Scalar
	// NonceCommit is the receiver's public nonce Commit(0, k).
	NonceCommit *pedersen.Commitment
	// BlindingCommit is Commit(0, b) for the receiver's blinding factor.
	BlindingCommit *pedersen.Commitment
	// Output commits to the transferred amount under the receiver's blinding
	// factor. It may be omitted, in which case BlindingCommit doubles as a
	// zero-value output; the resulting transaction only balances for a
	// transfer of amount 0.
	Output *pedersen.Commitment `cbor:",omitempty"`
}

func (message2R) RoundNumber() round.Number { return 2 }
