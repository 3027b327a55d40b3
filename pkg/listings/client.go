package listings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"homeinsight-listings/pkg/logger"
)

// Endpoint paths of the listings API.
const (
	PathListings      = "/api/properties"
	PathAdminListings = "/api/properties/admin/all"
)

// SessionCookie is the cookie the backend reads the auth session from.
const SessionCookie = "token"

// PageSource fetches one page of results for a query that already carries
// page and limit.
type PageSource interface {
	FetchPage(ctx context.Context, q CanonicalQuery) (*Page, error)
}

// Client talks to the listings API.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	sessionToken string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithSessionToken attaches the auth session cookie to every request.
func WithSessionToken(token string) ClientOption {
	return func(c *Client) {
		c.sessionToken = token
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.sessionToken != "" {
		if c.httpClient.Jar == nil {
			jar, err := cookiejar.New(nil)
			if err != nil {
				return nil, fmt.Errorf("failed to create cookie jar: %w", err)
			}
			c.httpClient.Jar = jar
		}
		c.httpClient.Jar.SetCookies(u, []*http.Cookie{{Name: SessionCookie, Value: c.sessionToken, Path: "/"}})
	}
	return c, nil
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Endpoint returns a PageSource bound to path.
func (c *Client) Endpoint(path string) *Endpoint {
	return &Endpoint{client: c, path: path}
}

// Listings is the public search endpoint.
func (c *Client) Listings() *Endpoint {
	return c.Endpoint(PathListings)
}

// AdminListings is the admin listing endpoint.
func (c *Client) AdminListings() *Endpoint {
	return c.Endpoint(PathAdminListings)
}

// ImageURL resolves an image path from a listing against the API base URL.
// Absolute URLs are returned unchanged.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	if ref.IsAbs() {
		return path
	}
	if !strings.HasPrefix(ref.Path, "/") {
		ref.Path = "/" + ref.Path
	}
	return c.baseURL.ResolveReference(ref).String()
}

// Endpoint is one search endpoint of the API.
type Endpoint struct {
	client *Client
	path   string
}

// URL returns the request URL for q.
func (e *Endpoint) URL(q CanonicalQuery) string {
	u := *e.client.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + e.path
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage performs one GET round trip and parses the response.
func (e *Endpoint) FetchPage(ctx context.Context, q CanonicalQuery) (*Page, error) {
	reqURL := e.URL(q)
	body, err := e.client.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	page, err := DecodePage(body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to decode listings response: url=%s, error=%v", reqURL, err)
		return nil, decodeError(err)
	}
	return page, nil
}

// PropertyURL returns the detail URL of listing id.
func (c *Client) PropertyURL(id string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + PathListings + "/" + url.PathEscape(id)
	return u.String()
}

// Property fetches a single listing by id.
func (c *Client) Property(ctx context.Context, id string) (*Listing, error) {
	reqURL := c.PropertyURL(id)
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	listing, err := DecodeListing(body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to decode property response: url=%s, error=%v", reqURL, err)
		return nil, decodeError(err)
	}
	return listing, nil
}

// get performs one GET round trip and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create listings request: url=%s, error=%v", reqURL, err)
		return nil, transportError(err)
	}
	req.Header.Set("Accept", "application/json")

	logger.GlobalLogger.Debugf("Fetching listings: url=%s", reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.GlobalLogger.Debugf("Listings request cancelled: url=%s", reqURL)
		} else {
			logger.GlobalLogger.Errorf("Failed to send listings request: url=%s, error=%v", reqURL, err)
		}
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read listings response body: url=%s, status=%s, error=%v", reqURL, resp.Status, err)
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.GlobalLogger.Errorf("Listings request failed: url=%s, status=%s", reqURL, resp.Status)
		return nil, statusError(resp.StatusCode, resp.Status, body)
	}
	return body, nil
}
