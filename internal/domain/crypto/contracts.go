package crypto

// AuthenticatedCipher seals and opens payloads under a key fixed at construction.
type AuthenticatedCipher interface {
	// Algorithm returns the algorithm tag recorded next to every sealed payload.
	Algorithm() string

	// Seal encrypts plaintext under a freshly drawn nonce. associatedData is authenticated
	// but not encrypted and must be presented unchanged to Open.
	Seal(plaintext, associatedData []byte) (*SealedPayload, error)

	// Open verifies the payload and returns the plaintext. Any mismatch in ciphertext,
	// nonce, tag, associated data or key yields ErrAuthenticationFailure and no plaintext.
	Open(payload *SealedPayload, associatedData []byte) ([]byte, error)
}
