package round

type Round interface {
	// VerifyMessage handles an incoming Message and validates its content with
	// regard to the protocol specification.
	// The content argument can be cast to the appropriate type for this round
	// without error check.
	// In a round expecting no message, this function returns nil.
	// This function should not modify any saved state as it may be running
	// concurrently.
	VerifyMessage(msg Message) error

	// StoreMessage should be called after VerifyMessage and should only store
	// the appropriate fields from the content.
	StoreMessage(msg Message) error

	// Finalize is called after the expected message for the current round has
	// been processed. The message for the next round is sent out through the
	// out channel.
	// If a non-critical error occurs (like a failure to sample or send a
	// message), the current round can be returned so that the caller may try
	// to finalize again.
	//
	// In the last round, Finalize should return
	//   r.ResultRound(result), nil
	// where result is the output of the protocol.
	// When the protocol aborts because the other party misbehaved, it should
	// return
	//   r.AbortRound(err, culprit), nil
	Finalize(out chan<- *Message) (Session, error)

	// MessageContent returns an uninitialized message.Content for this round.
	//
	// A round expecting no message should return nil.
	MessageContent() Content

	// Number returns the current round number.
	Number() Number
}
