// Package statsapi talks to the backend that serves the pre-aggregated
// sales, product and payment statistics.
//
// Every endpoint answers with a JSON envelope carrying a success flag. A body
// that is not JSON, or a request that never gets a response, is reported as
// ErrTransport. A well-formed body with success=false is reported as
// ErrAPIFailure and nothing else in the body is decoded.
package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrTransport covers rejected requests, transport timeouts and bodies
	// that are not valid JSON.
	ErrTransport = errors.New("statsapi: transport failure")

	// ErrAPIFailure means the backend answered with success=false.
	ErrAPIFailure = errors.New("statsapi: backend reported failure")
)

// Cause returns the description of err without the ErrTransport prefix,
// suitable for showing on the page.
func Cause(err error) string {
	return strings.TrimPrefix(err.Error(), ErrTransport.Error()+": ")
}

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

// Client issues GET requests against the stats backend.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient returns a Client rooted at baseURL. A nil hc uses a client with
// no overall timeout; callers bound requests through the context.
func NewClient(baseURL string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse stats api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("stats api base url must be absolute http(s), got %q", baseURL)
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: u, http: hc}, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Resolve joins an endpoint path onto the base URL.
func (c *Client) Resolve(path string) string {
	ref := &url.URL{Path: path}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		ref = &url.URL{Path: path[:i], RawQuery: path[i+1:]}
	}
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	u.RawQuery = ref.RawQuery
	return u.String()
}

// Get fetches path and decodes the envelope into out.
//
// The HTTP status code is not inspected: an error page that happens to be
// JSON without success=true is an API failure, anything else that does not
// parse is a transport failure.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Resolve(path), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	return Decode(body, out)
}

// Decode applies the envelope rules to an already read body.
func Decode(body []byte, out any) error {
	var head struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrTransport, err)
	}
	if !head.Success {
		return ErrAPIFailure
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrTransport, err)
	}
	return nil
}

// Ping reports whether the backend answers HTTP at all. Any status code
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return resp.Body.Close()
}

// Close releases idle keep-alive connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
