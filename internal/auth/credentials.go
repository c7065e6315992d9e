package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown users and wrong
// passwords, so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credential schemes
const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// Verifier checks a presented password against the stored credential.
// Keeping the comparison behind an interface lets the storage scheme
// change without touching the API layer.
type Verifier interface {
	Verify(stored, given string) error
}

type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, given string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, given string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// VerifierFor maps a configured scheme name to its verifier. Unknown
// schemes fall back to plaintext, the scheme the seed data uses.
func VerifierFor(scheme string) Verifier {
	if scheme == SchemeBcrypt {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}

// Credential produces the stored form of a password under the given
// scheme. Used by the seeding script.
func Credential(scheme, password string) (string, error) {
	if scheme == SchemeBcrypt {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		return string(hash), nil
	}
	return password, nil
}

// RoleFor returns the role reported at login. Only the literal
// username "admin" gets the admin role.
func RoleFor(username string) string {
	if username == "admin" {
		return "admin"
	}
	return "user"
}
