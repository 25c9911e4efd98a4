package security

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTokenRoundTrip(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	base64Secret := base64.StdEncoding.EncodeToString(secret)

	identity := &Identity{
		EmployeeID: "emp-1",
		Name:       "Maria Lopez",
		Email:      "maria@westsiderising.org",
		Role:       "manager",
	}

	token, err := CreateIdentityToken(identity, base64Secret, 3600)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseIdentityToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, identity.EmployeeID, parsed.EmployeeID)
	assert.Equal(t, identity.Name, parsed.Name)
	assert.Equal(t, identity.Email, parsed.Email)
	assert.Equal(t, identity.Role, parsed.Role)
}

func TestParseIdentityTokenWrongSecret(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	base64Secret := base64.StdEncoding.EncodeToString(secret)

	token, err := CreateIdentityToken(&Identity{EmployeeID: "emp-1"}, base64Secret, 3600)
	require.NoError(t, err)

	_, err = ParseIdentityToken(token, []byte("another-secret-another-secret-xx"))
	assert.Error(t, err)
}

func TestCreateIdentityTokenBadSecret(t *testing.T) {
	_, err := CreateIdentityToken(&Identity{EmployeeID: "emp-1"}, "not base64!!!", 3600)
	assert.Error(t, err)
}
