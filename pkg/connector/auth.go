package connector

import (
	"encoding/base64"
	"fmt"
)

// AuthMethod selects how a connector authenticates against its backend.
type AuthMethod string

// Supported auth methods.
const (
	AuthNone   AuthMethod = "none"
	AuthAPIKey AuthMethod = "api_key"
	AuthBearer AuthMethod = "bearer"
	AuthBasic  AuthMethod = "basic"
)

// AuthConfig holds connector credentials. Values arrive already
// env-expanded by the config loader; raw secrets never live in YAML.
type AuthConfig struct {
	Method   AuthMethod `yaml:"method" json:"method"`
	APIKey   string     `yaml:"apiKey" json:"-"`
	Header   string     `yaml:"header" json:"header"` // api_key header name, default X-Api-Key
	Token    string     `yaml:"token" json:"-"`
	Username string     `yaml:"username" json:"username"`
	Password string     `yaml:"password" json:"-"`
}

// Validate checks that the configured method has its required fields.
func (a AuthConfig) Validate() error {
	switch a.Method {
	case "", AuthNone:
		return nil
	case AuthAPIKey:
		if a.APIKey == "" {
			return fmt.Errorf("auth method %s requires apiKey", a.Method)
		}
	case AuthBearer:
		if a.Token == "" {
			return fmt.Errorf("auth method %s requires token", a.Method)
		}
	case AuthBasic:
		if a.Username == "" || a.Password == "" {
			return fmt.Errorf("auth method %s requires username and password", a.Method)
		}
	default:
		return fmt.Errorf("unknown auth method %q", a.Method)
	}
	return nil
}

// Headers renders the request headers for the configured method.
func (a AuthConfig) Headers() map[string]string {
	switch a.Method {
	case AuthAPIKey:
		header := a.Header
		if header == "" {
			header = "X-Api-Key"
		}
		return map[string]string{header: a.APIKey}
	case AuthBearer:
		return map[string]string{"Authorization": "Bearer " + a.Token}
	case AuthBasic:
		cred := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		return map[string]string{"Authorization": "Basic " + cred}
	default:
		return nil
	}
}
