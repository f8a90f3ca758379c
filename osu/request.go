package osu

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	MessageConnectionRefused = "Can't connect to API!"
	MessageUnknownError      = "An unknown error has occurred!"
)

var (
	ErrMissingCredentials = errors.New("wrong credentials! Cannot authorize to the API")
	ErrNoAuthorization    = errors.New("this server API does not require any authorization")
)

// RequestConfig is the unit of request fingerprinting and execution.
type RequestConfig struct {
	URL    string
	Method string
	Data   any
}

func (c RequestConfig) method() string {
	if c.Method == "" {
		return http.MethodGet
	}
	return c.Method
}

// Idempotent reports whether the request may be served from cache.
func (c RequestConfig) Idempotent() bool {
	switch c.method() {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Fingerprint is the cache key of the request. Idempotent requests are keyed by URL only.
func (c RequestConfig) Fingerprint() string {
	var source []byte
	if c.Idempotent() {
		source = []byte(c.URL)
	} else {
		body, err := json.Marshal(c.Data)
		if err != nil {
			body = []byte(fmt.Sprintf("%v", c.Data))
		}
		source = bytes.Join([][]byte{[]byte(c.method()), []byte(c.URL), body}, []byte{' '})
	}
	sum := md5.Sum(source)
	return hex.EncodeToString(sum[:])
}

// APIResponse is the result of every request, success or failure.
// Error is empty on success and Data is nil when the server returned no body or null.
type APIResponse struct {
	URL    string
	Status int
	Data   json.RawMessage
	Error  string
}

func (r APIResponse) OK() bool {
	return r.Error == "" && r.Status < http.StatusBadRequest
}

func (r APIResponse) HasData() bool {
	return r.OK() && len(r.Data) > 0 && !bytes.Equal(r.Data, []byte("null"))
}

// Decode unmarshals the payload into v. It reports false when there is nothing to decode.
func (r APIResponse) Decode(v any) (bool, error) {
	if !r.HasData() {
		return false, nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return false, fmt.Errorf("[osu! api] failed to unmarshal response of %s: %w", r.URL, err)
	}
	return true, nil
}

// Fetch runs config and decodes the payload into a new T.
// A nil result with a nil error means the server had nothing to return.
func Fetch[T any](ctx context.Context, requester Requester, config RequestConfig) (*T, error) {
	response, err := requester.Request(ctx, config)
	if err != nil {
		return nil, err
	}
	var result T
	ok, err := response.Decode(&result)
	if !ok || err != nil {
		return nil, err
	}
	return &result, nil
}
