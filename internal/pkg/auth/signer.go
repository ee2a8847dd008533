package auth

// Signer protects session identifiers carried in cookies from tampering.
type Signer interface {
	Sign(value string) string
	Verify(signed string) (string, error)
	Name() string
}
