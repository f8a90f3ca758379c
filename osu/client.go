package osu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const maxRetryWait = time.Minute

// Requester executes requests against one server.
type Requester interface {
	Request(ctx context.Context, config RequestConfig) (APIResponse, error)
}

type Option func(*RequestClient)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *RequestClient) {
		c.logger = logger
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *RequestClient) {
		c.ttl = ttl
	}
}

func WithCacheSize(size int) Option {
	return func(c *RequestClient) {
		c.cacheSize = size
	}
}

// WithRateLimit caps outgoing requests per minute. Zero disables limiting.
func WithRateLimit(perMinute int) Option {
	return func(c *RequestClient) {
		if perMinute <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	}
}

// WithMaxRetries sets how often a rate limited (429) request is retried.
func WithMaxRetries(retries int) Option {
	return func(c *RequestClient) {
		c.maxRetries = retries
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *RequestClient) {
		c.timeout = timeout
	}
}

// WithTracing wraps the transport with OpenTelemetry instrumentation.
func WithTracing(enabled bool) Option {
	return func(c *RequestClient) {
		c.tracing = enabled
	}
}

// WithRequestConfig applies the [request] section of the config file.
func WithRequestConfig(config model.RequestConfig) Option {
	return func(c *RequestClient) {
		if config.CacheTTL > 0 {
			c.ttl = time.Duration(config.CacheTTL) * time.Second
		}
		if config.CacheSize > 0 {
			c.cacheSize = config.CacheSize
		}
		if config.Timeout > 0 {
			c.timeout = time.Duration(config.Timeout) * time.Second
		}
		if config.MaxRetries >= 0 {
			c.maxRetries = config.MaxRetries
		}
		c.tracing = config.Tracing
		WithRateLimit(config.RequestsPerMinute)(c)
	}
}

// RequestClient executes HTTP requests, serving idempotent ones from a short-lived cache.
// Transport and HTTP failures are reported through APIResponse, never as errors.
type RequestClient struct {
	http    *resty.Client
	cache   *ResponseCache
	limiter *rate.Limiter
	logger  zerolog.Logger

	ttl        time.Duration
	cacheSize  int
	maxRetries int
	timeout    time.Duration
	tracing    bool
}

func NewRequestClient(module string, opts ...Option) *RequestClient {
	c := &RequestClient{
		logger:     log.With().Str("module", module).Logger(),
		ttl:        DefaultCacheTTL,
		cacheSize:  DefaultCacheSize,
		maxRetries: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = NewResponseCache(c.cacheSize)

	transport := http.DefaultTransport
	if c.tracing {
		transport = otelhttp.NewTransport(transport)
	}
	c.http = resty.New().
		SetTransport(transport).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		}).
		SetRetryCount(c.maxRetries).
		SetRetryMaxWaitTime(maxRetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return r != nil && r.StatusCode() == http.StatusTooManyRequests
		}).
		SetRetryAfter(func(_ *resty.Client, r *resty.Response) (time.Duration, error) {
			if r == nil {
				return 0, nil
			}
			wait, _ := utils.RetryAfter(r.Header())
			return wait, nil
		})
	if c.timeout > 0 {
		c.http.SetTimeout(c.timeout)
	}
	return c
}

// HTTPClient exposes the underlying client so token exchanges share the transport.
func (c *RequestClient) HTTPClient() *http.Client {
	return c.http.GetClient()
}

func (c *RequestClient) Logger() *zerolog.Logger {
	return &c.logger
}

func (c *RequestClient) Request(ctx context.Context, config RequestConfig) (APIResponse, error) {
	return c.Do(ctx, config, nil)
}

// Do executes config with additional headers. The error is only set when ctx is done.
func (c *RequestClient) Do(ctx context.Context, config RequestConfig, headers map[string]string) (APIResponse, error) {
	cacheable := config.Idempotent()
	key := config.Fingerprint()
	if cacheable {
		if cached, ok := c.cache.Get(key); ok {
			c.logger.Debug().Msgf("Cache hit for %s", config.URL)
			return cached.APIResponse, nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return APIResponse{}, err
		}
	}

	method := config.method()
	c.logger.Trace().Msgf("Requesting %s %s", method, config.URL)
	req := c.http.R().SetContext(ctx).SetHeaders(headers)
	if config.Data != nil {
		req.SetBody(config.Data)
	}
	resp, err := req.Execute(method, config.URL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return APIResponse{}, ctxErr
		}
		response := transportFailure(config.URL, err)
		c.logger.Warn().Err(err).Msgf("Request %s %s failed", method, config.URL)
		return response, nil
	}
	if resp.IsError() {
		response := httpFailure(config.URL, resp)
		c.logger.Warn().Int("status", response.Status).Msgf("Request %s %s failed: %s", method, config.URL, response.Error)
		return response, nil
	}

	response := APIResponse{URL: config.URL, Status: resp.StatusCode()}
	if body := bytes.TrimSpace(resp.Body()); len(body) > 0 {
		response.Data = json.RawMessage(body)
	}
	if cacheable {
		c.cache.Set(key, CachedResponse{APIResponse: response, ExpiresIn: c.ttl})
	}
	return response, nil
}

func transportFailure(url string, err error) APIResponse {
	message := MessageUnknownError
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		message = MessageConnectionRefused
	case err.Error() != "":
		message = err.Error()
	}
	return APIResponse{URL: url, Status: http.StatusInternalServerError, Error: message}
}

func httpFailure(url string, resp *resty.Response) APIResponse {
	var body struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)

	status := resp.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	message := utils.FirstNonEmpty(asString(body.Error), asString(body.Message), http.StatusText(status), MessageUnknownError)
	return APIResponse{URL: url, Status: status, Error: message}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
