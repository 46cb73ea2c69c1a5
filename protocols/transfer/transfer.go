// Package transfer implements a two-party confidential transfer.
//
// The sender proposes a transaction spending one of its value commitments
// into a change output and an output for the receiver. The receiver commits
// to the transferred amount under its own blinding factor and returns a
// partial signature over a challenge both parties derive from the
// transaction's public data. The sender verifies the partial, adds its own,
// and assembles the final transaction, which anyone can check against the
// kernel identity without learning any amount.
//
// Neither party ever transmits a secret: only commitments and partial
// signature scalars cross the wire.
package transfer

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/silentledger/mimble/internal/round"
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/party"
	"github.com/silentledger/mimble/pkg/pedersen"
	"github.com/silentledger/mimble/pkg/protocol"
)

const (
	protocolID = "mimble/transfer"
	// This protocol has 2 concrete rounds: the sender's proposal and the
	// receiver's response.
	protocolRounds round.Number = 2
)

// SenderConfig describes the initiator's side of a transfer.
type SenderConfig struct {
	// InputAmount is the value of the input commitment being spent.
	InputAmount uint64
	// TransferAmount is the value sent to the receiver. The remainder
	// InputAmount − TransferAmount becomes the sender's change output.
	TransferAmount uint64
	// Rand is the entropy source used for blinding factors and nonces.
	// It defaults to crypto/rand.Reader.
	Rand io.Reader
}

// ReceiverConfig describes the responding side of a transfer.
type ReceiverConfig struct {
	// Rand is the entropy source used for the blinding factor and nonce.
	// It defaults to crypto/rand.Reader.
	Rand io.Reader
}

// ReceiverResult is the receiver's record of a completed transfer.
type ReceiverResult struct {
	// Amount is the value received.
	Amount uint64
	// Output is the commitment added to the transaction for the receiver.
	Output pedersen.Commitment
	// Blinding opens Output together with Amount. It must be kept secret:
	// knowing it is what authorizes spending the output later.
	Blinding curve.Scalar
}

// StartSender initiates the transfer protocol for the sender.
//
// The sender acts as the leader: it emits the proposal, verifies the
// receiver's partial signature, and assembles the final transaction, which
// is the protocol result for this side.
func StartSender(config *SenderConfig, selfID, otherID party.ID) protocol.StartFunc {
	return func(sessionID []byte) (round.Session, error) {
		if config.TransferAmount > config.InputAmount {
			return nil, fmt.Errorf("transfer.StartSender: transfer amount %d exceeds input amount %d",
				config.TransferAmount, config.InputAmount)
		}
		group := curve.Secp256k1{}
		info := round.Info{
			ProtocolID:       protocolID,
			FinalRoundNumber: protocolRounds,
			SelfID:           selfID,
			PartyIDs:         []party.ID{selfID, otherID},
			Group:            group,
		}
		helper, err := round.NewSession(info, sessionID)
		if err != nil {
			return nil, fmt.Errorf("transfer.StartSender: %w", err)
		}
		return &round1S{
			Helper:   helper,
			config:   config,
			pedersen: pedersen.New(group),
			rand:     entropy(config.Rand),
		}, nil
	}
}

// StartReceiver initiates the transfer protocol for the receiver.
//
// The protocol result for this side is a *ReceiverResult holding the new
// output commitment and the blinding factor opening it.
func StartReceiver(config *ReceiverConfig, selfID, otherID party.ID) protocol.StartFunc {
	return func(sessionID []byte) (round.Session, error) {
		group := curve.Secp256k1{}
		info := round.Info{
			ProtocolID:       protocolID,
			FinalRoundNumber: protocolRounds,
			SelfID:           selfID,
			PartyIDs:         []party.ID{selfID, otherID},
			Group:            group,
		}
		helper, err := round.NewSession(info, sessionID)
		if err != nil {
			return nil, fmt.Errorf("transfer.StartReceiver: %w", err)
		}
		return &round1R{
			Helper:   helper,
			config:   config,
			pedersen: pedersen.New(group),
			rand:     entropy(config.Rand),
		}, nil
	}
}

func entropy(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}
