package osu

import (
	"time"

	"golang.org/x/oauth2"
)

// minimumTokenLifetime is how long a token must still be valid to be used.
const minimumTokenLifetime = 10

var timeNow = time.Now

// AuthTokens is an immutable OAuth2 token set.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	Type         string
	ExpiresAt    time.Time
}

// NewAuthTokens converts a token returned by the oauth2 package.
func NewAuthTokens(token *oauth2.Token) *AuthTokens {
	return &AuthTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Type:         token.Type(),
		ExpiresAt:    token.Expiry,
	}
}

// ExpiresIn is the remaining lifetime in whole seconds.
// It is 0 for tokens without an expiry.
func (t *AuthTokens) ExpiresIn() int64 {
	if t.ExpiresAt.IsZero() {
		return 0
	}
	return int64(t.ExpiresAt.Sub(timeNow()) / time.Second)
}

// IsExpired is false for tokens issued without expires_in, as in x/oauth2.
func (t *AuthTokens) IsExpired() bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return t.ExpiresIn() < minimumTokenLifetime
}

func (t *AuthTokens) IsValid() bool {
	return t != nil && t.AccessToken != "" && !t.IsExpired()
}

// AuthorizationHeader is the value of the Authorization header.
func (t *AuthTokens) AuthorizationHeader() string {
	typ := t.Type
	if typ == "" {
		typ = "Bearer"
	}
	return typ + " " + t.AccessToken
}
