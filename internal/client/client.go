// Package client is a fasthttp client for the palindrome HTTP API.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_palindrome/internal/adapters/httpapi"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// DefaultTimeout bounds every request made by the client.
const DefaultTimeout = 10 * time.Second

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Is maps status codes onto the domain error taxonomy.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == fasthttp.StatusNotFound
	case domain.ErrInvalidInput:
		return e.isBadRequest(domain.ErrInvalidInput)
	case domain.ErrNotPalindrome:
		return e.isBadRequest(domain.ErrNotPalindrome)
	case domain.ErrDuplicate:
		return e.isBadRequest(domain.ErrDuplicate)
	case domain.ErrRejected:
		return e.isBadRequest(domain.ErrNotPalindrome) || e.isBadRequest(domain.ErrDuplicate)
	}
	return false
}

func (e *APIError) isBadRequest(err error) bool {
	return e.StatusCode == fasthttp.StatusBadRequest && e.Message == err.Error()
}

// Option defines a functional option for configuring the client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithDialer replaces the connection dialer, mainly for in-memory tests.
func WithDialer(dial func(addr string) (net.Conn, error)) Option {
	return func(c *Client) {
		c.http.Dial = dial
	}
}

// Client talks to a palindrome server.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		http: &fasthttp.Client{
			Name: "palindromectl",
			// Escaped slashes in free-text segments must reach the server untouched.
			DisablePathNormalizing: true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs a full palindrome check with explicit options.
func (c *Client) Check(text string, opts domain.Options) (domain.CheckResult, error) {
	req := httpapi.CheckRequest{
		Text:              text,
		IgnoreSpaces:      &opts.IgnoreSpaces,
		IgnoreCase:        &opts.IgnoreCase,
		IgnorePunctuation: &opts.IgnorePunctuation,
	}
	var res domain.CheckResult
	err := c.do(fasthttp.MethodPost, httpapi.BasePath+"/check", req, &res)
	return res, err
}

// QuickCheck checks text with the default options.
func (c *Client) QuickCheck(text string) (httpapi.QuickCheckResponse, error) {
	var res httpapi.QuickCheckResponse
	err := c.do(fasthttp.MethodGet, httpapi.BasePath+"/check/"+url.PathEscape(text), nil, &res)
	return res, err
}

// List returns every stored palindrome, most recent first.
func (c *Client) List() ([]domain.Record, error) {
	var res []domain.Record
	err := c.do(fasthttp.MethodGet, httpapi.BasePath, nil, &res)
	return res, err
}

// Get returns the palindrome with the given id.
func (c *Client) Get(id int) (domain.Record, error) {
	var res domain.Record
	err := c.do(fasthttp.MethodGet, httpapi.BasePath+"/"+strconv.Itoa(id), nil, &res)
	return res, err
}

// ByCategory returns the palindromes in category.
func (c *Client) ByCategory(category string) ([]domain.Record, error) {
	var res []domain.Record
	err := c.do(fasthttp.MethodGet, httpapi.BasePath+"/category/"+url.PathEscape(category), nil, &res)
	return res, err
}

// Add stores text on the server.
func (c *Client) Add(text string) (domain.Record, error) {
	var res domain.Record
	err := c.do(fasthttp.MethodPost, httpapi.BasePath, httpapi.AddRequest{Text: text}, &res)
	return res, err
}

// Delete removes the palindrome with the given id.
func (c *Client) Delete(id int) error {
	return c.do(fasthttp.MethodDelete, httpapi.BasePath+"/"+strconv.Itoa(id), nil, nil)
}

// Statistics returns the aggregate counts.
func (c *Client) Statistics() (domain.Statistics, error) {
	var res domain.Statistics
	err := c.do(fasthttp.MethodGet, httpapi.BasePath+"/statistics", nil, &res)
	return res, err
}

func (c *Client) do(method, path string, body, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		var e httpapi.ErrorResponse
		if err := json.Unmarshal(resp.Body(), &e); err != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(resp.Body()))
		}
		return &APIError{StatusCode: status, Message: e.Error}
	}

	if out == nil || status == fasthttp.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsNotFound reports whether err means the requested palindrome does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
