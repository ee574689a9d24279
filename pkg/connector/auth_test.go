package connector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthValidate(t *testing.T) {
	assert.NoError(t, AuthConfig{}.Validate())
	assert.NoError(t, AuthConfig{Method: AuthNone}.Validate())
	assert.NoError(t, AuthConfig{Method: AuthAPIKey, APIKey: "k"}.Validate())
	assert.NoError(t, AuthConfig{Method: AuthBearer, Token: "t"}.Validate())
	assert.NoError(t, AuthConfig{Method: AuthBasic, Username: "u", Password: "p"}.Validate())

	assert.Error(t, AuthConfig{Method: AuthAPIKey}.Validate())
	assert.Error(t, AuthConfig{Method: AuthBearer}.Validate())
	assert.Error(t, AuthConfig{Method: AuthBasic, Username: "u"}.Validate())
	assert.Error(t, AuthConfig{Method: "kerberos"}.Validate())
}

func TestAuthHeaders(t *testing.T) {
	assert.Nil(t, AuthConfig{}.Headers())

	h := AuthConfig{Method: AuthAPIKey, APIKey: "k1"}.Headers()
	assert.Equal(t, map[string]string{"X-Api-Key": "k1"}, h)

	h = AuthConfig{Method: AuthAPIKey, APIKey: "k1", Header: "X-Custom"}.Headers()
	assert.Equal(t, map[string]string{"X-Custom": "k1"}, h)

	h = AuthConfig{Method: AuthBearer, Token: "tok"}.Headers()
	assert.Equal(t, map[string]string{"Authorization": "Bearer tok"}, h)

	h = AuthConfig{Method: AuthBasic, Username: "admin", Password: "pw"}.Headers()
	require.Contains(t, h, "Authorization")
	// base64("admin:pw")
	assert.Equal(t, "Basic YWRtaW46cHc=", h["Authorization"])
}

func TestAuthSecretsNotSerialized(t *testing.T) {
	cfg := AuthConfig{Method: AuthAPIKey, APIKey: "s3cret", Token: "s3cret", Password: "s3cret", Username: "admin"}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "s3cret")
	assert.Contains(t, string(data), "admin")
}
