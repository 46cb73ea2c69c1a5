package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// BytesScalar is the length of an encoded secp256k1 scalar.
	BytesScalar = 32
	// BytesPoint is the length of a compressed secp256k1 point.
	BytesPoint = 33
)
