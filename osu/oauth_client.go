package osu

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"
)

// maxAuthorizationAttempts bounds re-authorization after 401 responses.
const maxAuthorizationAttempts = 3

// Authorizer exchanges client credentials for a fresh token set.
type Authorizer func(ctx context.Context, clientId, clientSecret string) (*AuthTokens, error)

// OAuthRequestClient authorizes lazily before requests and re-authorizes on 401.
// Concurrent authorizations are collapsed into one token request.
type OAuthRequestClient struct {
	*RequestClient

	authorizer Authorizer
	group      singleflight.Group

	mu           sync.RWMutex
	clientId     string
	clientSecret string
	tokens       *AuthTokens
}

func NewOAuthRequestClient(base *RequestClient, authorizer Authorizer) *OAuthRequestClient {
	return &OAuthRequestClient{
		RequestClient: base,
		authorizer:    authorizer,
	}
}

// AddCredentials sets the client credentials. Empty values keep the previous ones.
func (c *OAuthRequestClient) AddCredentials(clientId, clientSecret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := false
	if clientId != "" && clientId != c.clientId {
		c.clientId = clientId
		changed = true
	}
	if clientSecret != "" && clientSecret != c.clientSecret {
		c.clientSecret = clientSecret
		changed = true
	}
	if changed {
		c.tokens = nil
	}
}

func (c *OAuthRequestClient) HasCredentials() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientId != "" && c.clientSecret != ""
}

func (c *OAuthRequestClient) Tokens() *AuthTokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

func (c *OAuthRequestClient) IsAuthorized() bool {
	return c.Tokens().IsValid()
}

// Authorize obtains tokens unless the current ones are still valid.
func (c *OAuthRequestClient) Authorize(ctx context.Context) error {
	if c.IsAuthorized() {
		return nil
	}
	return c.authorize(ctx)
}

func (c *OAuthRequestClient) authorize(ctx context.Context) error {
	c.mu.RLock()
	clientId, clientSecret := c.clientId, c.clientSecret
	c.mu.RUnlock()
	if clientId == "" || clientSecret == "" {
		return ErrMissingCredentials
	}

	_, err, shared := c.group.Do("authorize", func() (interface{}, error) {
		c.logger.Debug().Msg("Requesting new access token")
		tokens, err := c.authorizer(ctx, clientId, clientSecret)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.tokens = tokens
		c.mu.Unlock()
		c.logger.Debug().Msgf("Authorized, token expires in %d seconds", tokens.ExpiresIn())
		return nil, nil
	})
	if shared {
		c.logger.Trace().Msg("Joined an in-flight authorization")
	}
	return err
}

// invalidate drops stale unless another caller already replaced it.
func (c *OAuthRequestClient) invalidate(stale *AuthTokens) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tokens == stale {
		c.tokens = nil
	}
}

// Request runs config with the current access token.
// The error is set only for missing credentials or a finished ctx.
func (c *OAuthRequestClient) Request(ctx context.Context, config RequestConfig) (APIResponse, error) {
	if !c.IsAuthorized() {
		if err := c.authorize(ctx); err != nil {
			if fatal := c.fatalAuthorizationError(ctx, err); fatal != nil {
				return APIResponse{}, fatal
			}
		}
	}

	for attempt := 0; ; attempt++ {
		tokens := c.Tokens()
		var headers map[string]string
		if tokens != nil {
			headers = map[string]string{"Authorization": tokens.AuthorizationHeader()}
		}
		response, err := c.Do(ctx, config, headers)
		if err != nil || response.Status != http.StatusUnauthorized || attempt >= maxAuthorizationAttempts {
			return response, err
		}

		c.logger.Debug().Msgf("Unauthorized response from %s, re-authorizing (attempt %d)", config.URL, attempt+1)
		c.invalidate(tokens)
		if err := c.authorize(ctx); err != nil {
			if fatal := c.fatalAuthorizationError(ctx, err); fatal != nil {
				return APIResponse{}, fatal
			}
			return response, nil
		}
	}
}

// fatalAuthorizationError filters errors that must reach the caller.
// Token endpoint failures are logged and end up as a failed response instead.
func (c *OAuthRequestClient) fatalAuthorizationError(ctx context.Context, err error) error {
	if errors.Is(err, ErrMissingCredentials) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	c.logger.Warn().Err(err).Msg("Failed to authorize")
	return nil
}
