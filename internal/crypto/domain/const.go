package domain

// Algorithm names an authenticated cipher with a 256-bit key and a
// nonce of at least 192 bits, long enough to be drawn at random for every
// message without tracking counters.
type Algorithm string

const (
	// XSalsa20Poly1305 is NaCl secretbox: XSalsa20 stream cipher with a
	// Poly1305 one-time authenticator.
	//
	// Key features:
	//   - 32-byte key
	//   - 24-byte nonce (192 bits)
	//   - 16-byte tag prepended to the ciphertext
	//   - no associated data
	//
	// Envelopes produced with this algorithm are byte-compatible with
	// tweetnacl's secretbox, which the mobile client uses.
	XSalsa20Poly1305 Algorithm = "xsalsa20-poly1305"

	// XChaCha20Poly1305 is the extended-nonce variant of ChaCha20-Poly1305.
	//
	// Key features:
	//   - 32-byte key
	//   - 24-byte nonce (192 bits)
	//   - 16-byte tag appended to the ciphertext
	//   - optional associated data
	XChaCha20Poly1305 Algorithm = "xchacha20-poly1305"
)

const (
	// KeySize is the length in bytes of every master and group key.
	KeySize = 32

	// NonceSize is the nonce length shared by all supported algorithms.
	NonceSize = 24

	// MinNonceSize is the shortest nonce an algorithm may use and still be
	// safe with randomly generated nonces.
	MinNonceSize = 24
)

// ParseAlgorithm maps a configured name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(name); alg {
	case XSalsa20Poly1305, XChaCha20Poly1305:
		return alg, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	return string(a)
}
