package crypto

// SealedPayload is the output of a single seal. The tag is kept apart from the ciphertext,
// so len(Ciphertext) equals the plaintext length.
type SealedPayload struct {
	Algorithm  string
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
}
