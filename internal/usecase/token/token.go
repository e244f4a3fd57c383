package token

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/jaevor/go-nanoid"
)

const (
	publicIDLength    = 8
	secretBytesLength = 16
)

// Authority mints the two independent tokens issued at order creation: a
// short public id safe to appear in URLs, and the long capability secret
// that is the sole proof of order ownership.
type Authority struct {
	publicID func() string
}

func NewAuthority() (*Authority, error) {
	generator, err := nanoid.Standard(publicIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to init public id generator: %w", err)
	}
	return &Authority{publicID: generator}, nil
}

func (a *Authority) MintPublicID() string {
	return a.publicID()
}

func (a *Authority) MintSecret() (string, error) {
	buf := make([]byte, secretBytesLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to mint token secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Verify compares the stored secret against the supplied token. Exact match
// only; an empty stored secret never verifies.
func Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
