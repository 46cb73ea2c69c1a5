package round

import "errors"

var (
	// ErrInvalidContent is returned when the message content is not the one
	// expected by the current round.
	ErrInvalidContent = errors.New("round: invalid content")
	// ErrNilFields is returned when the message content contains nil fields.
	ErrNilFields = errors.New("round: message contains nil fields")
	// ErrOutChanFull is returned when the out channel cannot accept another
	// message. It indicates a misuse of the round by the caller.
	ErrOutChanFull = errors.New("round: out channel is full")
)
