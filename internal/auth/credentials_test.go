package auth_test

import (
	"testing"

	"kanbanlive/internal/auth"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPlaintextVerifier(t *testing.T) {
	v := auth.PlaintextVerifier{}

	assert.NoError(t, v.Verify("admin123", "admin123"))
	assert.ErrorIs(t, v.Verify("admin123", "wrong"), auth.ErrInvalidCredentials)
	assert.ErrorIs(t, v.Verify("admin123", ""), auth.ErrInvalidCredentials)
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	assert.NoError(t, err)

	v := auth.BcryptVerifier{}
	assert.NoError(t, v.Verify(string(hash), "admin123"))
	assert.ErrorIs(t, v.Verify(string(hash), "wrong"), auth.ErrInvalidCredentials)
}

func TestVerifiersAgreeOnOutcome(t *testing.T) {
	// Both schemes must accept and reject the same passwords; only the
	// stored form differs.
	password := "123"

	plainStored, err := auth.Credential(auth.SchemePlaintext, password)
	assert.NoError(t, err)
	bcryptStored, err := auth.Credential(auth.SchemeBcrypt, password)
	assert.NoError(t, err)

	assert.NoError(t, auth.PlaintextVerifier{}.Verify(plainStored, password))
	assert.NoError(t, auth.BcryptVerifier{}.Verify(bcryptStored, password))
	assert.Error(t, auth.PlaintextVerifier{}.Verify(plainStored, "nope"))
	assert.Error(t, auth.BcryptVerifier{}.Verify(bcryptStored, "nope"))
}

func TestVerifierFor(t *testing.T) {
	assert.IsType(t, auth.BcryptVerifier{}, auth.VerifierFor(auth.SchemeBcrypt))
	assert.IsType(t, auth.PlaintextVerifier{}, auth.VerifierFor(auth.SchemePlaintext))
	assert.IsType(t, auth.PlaintextVerifier{}, auth.VerifierFor("unknown"))
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, "admin", auth.RoleFor("admin"))
	assert.Equal(t, "user", auth.RoleFor("stephen"))
	assert.Equal(t, "user", auth.RoleFor("Admin"))
}
