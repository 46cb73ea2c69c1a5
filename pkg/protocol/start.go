package protocol

import (
	"github.com/silentledger/mimble/internal/round"
)

// StartFunc initializes a protocol session for one party.
//
// sessionID is an optional identifier binding this execution; both parties
// must provide the same value.
type StartFunc func(sessionID []byte) (round.Session, error)
