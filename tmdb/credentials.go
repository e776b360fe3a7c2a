package tmdb

import (
	"fmt"
	"net/url"
)

// Credentials identifies the account the client acts on behalf of
type Credentials struct {
	APIKey    string
	SessionID string
	UserID    int
}

// CredentialsProvider supplies credentials from an external store
type CredentialsProvider interface {
	Credentials() (Credentials, error)
}

// Credentials lets a Credentials value act as its own provider.
func (c Credentials) Credentials() (Credentials, error) {
	return c, c.Validate()
}

// Validate checks that every field required by account endpoints is set
func (c Credentials) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if c.SessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidConfig)
	}
	if c.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidConfig)
	}
	return nil
}

// accountParams returns the query parameters for account endpoints
func (c Credentials) accountParams() url.Values {
	return url.Values{
		"api_key":    {c.APIKey},
		"session_id": {c.SessionID},
	}
}
