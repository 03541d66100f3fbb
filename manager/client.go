// Package manager implements the HTTP client for the manager backend, which
// tracks the live node set and proxies requests to individual nodes.
package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/time/rate"

	"github.com/maxpoletaev/meshconsole/mesh"
)

// maxBodySize limits how much of a response is read into memory.
const maxBodySize = 16 << 20

// Client sends requests to the manager API. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	logger  log.Logger
}

// New creates a new client for the manager at conf.BaseURL.
func New(conf Config) (*Client, error) {
	if conf.BaseURL == "" {
		return nil, fmt.Errorf("manager base url cannot be empty")
	}

	baseURL, err := url.Parse(conf.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid manager base url: %w", err)
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid manager base url scheme: %q", baseURL.Scheme)
	}

	httpClient := conf.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: conf.Timeout}
	}

	limit := conf.RateLimit
	if limit <= 0 {
		limit = rate.Inf
	}

	logger := conf.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, conf.Burst),
		logger:  logger,
	}, nil
}

// Get sends a GET request to the given API path.
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

// Post sends a POST request with the body encoded according to opts.Encoding.
// A nil body is sent as an empty object (JSON) or an empty form.
func (c *Client) Post(ctx context.Context, path string, body interface{}, opts RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, opts RequestOptions) (*Response, error) {
	target := c.baseURL.JoinPath(path)

	if len(opts.Params) > 0 {
		query := target.Query()
		for k, v := range opts.Params {
			query.Set(k, v)
		}

		target.RawQuery = query.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)

	if method != http.MethodGet {
		payload, ct, err := encodeBody(body, opts.Encoding)
		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(payload)
		contentType = ct
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	switch opts.ResponseType {
	case ResponseText:
		req.Header.Set("Accept", "text/plain")
	default:
		req.Header.Set("Accept", "application/json")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", mesh.ErrBackendUnavailable, err)
	}

	level.Debug(c.logger).Log("msg", "manager request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mesh.ErrBackendUnavailable, err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", mesh.ErrBackendUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(data)),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Type:       opts.ResponseType,
		Body:       data,
	}, nil
}

var errUnsupportedFormBody = errors.New("unsupported form body")

func encodeBody(body interface{}, enc Encoding) ([]byte, string, error) {
	switch enc {
	case EncodingForm:
		values, err := toFormValues(body)
		if err != nil {
			return nil, "", err
		}

		return []byte(values.Encode()), "application/x-www-form-urlencoded", nil

	default:
		if body == nil {
			return []byte("{}"), "application/json", nil
		}

		payload, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode body: %w", err)
		}

		return payload, "application/json", nil
	}
}

func toFormValues(body interface{}) (url.Values, error) {
	switch b := body.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return b, nil
	case map[string]string:
		values := make(url.Values, len(b))
		for k, v := range b {
			values.Set(k, v)
		}

		return values, nil
	case map[string]interface{}:
		values := make(url.Values, len(b))
		for k, v := range b {
			values.Set(k, fmt.Sprint(v))
		}

		return values, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedFormBody, body)
	}
}
