package protocol

import (
	"github.com/silentledger/mimble/internal/round"
	"github.com/silentledger/mimble/pkg/party"
)

// Message is the unit of communication between parties.
//
// The Data field carries the cbor encoding of the current round's content;
// everything else is routing and consistency metadata.
type Message struct {
	// SSID is a byte string which uniquely identifies the session this
	// message belongs to.
	SSID []byte
	// From is the party.ID of the sender.
	From party.ID
	// To is the intended recipient. The empty ID addresses the counterparty.
	To party.ID
	// Protocol identifies the protocol this message belongs to.
	Protocol string
	// RoundNumber is the round this message is intended for.
	// A RoundNumber of 0 signals an abort by the sender.
	RoundNumber round.Number
	// Data is the serialized content of the round message.
	Data []byte
}

// IsFor returns true if the message is intended for the designated party.
func (msg *Message) IsFor(id party.ID) bool {
	if msg.From == id {
		return false
	}
	return msg.To == "" || msg.To == id
}
