package round

import (
	"github.com/silentledger/mimble/pkg/hash"
	"github.com/silentledger/mimble/pkg/math/curve"
	"github.com/silentledger/mimble/pkg/party"
)

type Info struct {
	// ProtocolID is an identifier for this protocol.
	ProtocolID string
	// FinalRoundNumber is the number of rounds before the output round.
	FinalRoundNumber Number
	// SelfID is this party's ID.
	SelfID party.ID
	// PartyIDs contains the two parties participating in the protocol.
	PartyIDs []party.ID
	// Group is the curve used for this protocol execution.
	Group curve.Curve
}

// Session represents the current execution of a two-party protocol.
// It embeds the current round, and provides additional context.
type Session interface {
	// Round is the current round being executed.
	Round
	// Group returns the curve used for this protocol execution.
	Group() curve.Curve
	// Hash returns a cloned hash function with the current hash state.
	Hash() *hash.Hash
	// ProtocolID is an identifier for this protocol.
	ProtocolID() string
	// FinalRoundNumber is the number of rounds before the output round.
	FinalRoundNumber() Number
	// SSID the unique identifier for this protocol execution.
	SSID() []byte
	// SelfID is this party's ID.
	SelfID() party.ID
	// PartyIDs is a sorted slice of the two participating parties.
	PartyIDs() party.IDSlice
	// OtherID is the counterparty's ID.
	OtherID() party.ID
}
