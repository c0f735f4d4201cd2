package racetime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultURL is the root of the racetime.gg public API.
const DefaultURL = "https://racetime.gg/"

type Option func(*clientConfig)

type clientConfig struct {
	httpClient   *http.Client
	roundTripper http.RoundTripper
	logger       *slog.Logger
	url          string
	userAgent    string
}

// WithURL overrides the base URL of the API. Defaults to [DefaultURL] and should not need to be changed,
// except for testing.
func WithURL(url string) Option {
	return func(c *clientConfig) {
		c.url = url
	}
}

// WithHTTPClient sets the http.Client used to call the API. The Client uses a copy: httpClient itself is not modified,
// even if WithRoundTripper is also set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

// WithRoundTripper sets the http.RoundTripper of the underlying http.Client.
func WithRoundTripper(roundTripper http.RoundTripper) Option {
	return func(c *clientConfig) {
		c.roundTripper = roundTripper
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger configures an optional logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// Client calls the racetime.gg public API.
//
// A Client holds no mutable state after New returns and can be shared by any number of goroutines.
type Client struct {
	client  *resty.Client
	baseURL *url.URL
	logger  *slog.Logger
}

// New returns a new Client. It returns an error of kind KindConstruction if the base URL is invalid.
func New(opts ...Option) (*Client, error) {
	cfg := clientConfig{
		url:    DefaultURL,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(&cfg)
	}

	baseURL, err := parseBaseURL(cfg.url)
	if err != nil {
		return nil, &Error{Kind: KindConstruction, URL: cfg.url, Err: err}
	}

	logger := cfg.logger.With("component", "racetime")

	var client *resty.Client
	if cfg.httpClient != nil {
		// resty modifies the http.Client it's given (e.g. SetTransport): work on a copy
		httpClient := *cfg.httpClient
		client = resty.NewWithClient(&httpClient)
	} else {
		// the API is stateless: no need for resty's default cookie jar
		client = resty.New().SetCookieJar(nil)
	}
	if cfg.roundTripper != nil {
		client.SetTransport(cfg.roundTripper)
	}
	if cfg.userAgent != "" {
		client.SetHeader("User-Agent", cfg.userAgent)
	}
	client.SetLogger(restyLogger{logger: logger})

	return &Client{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("base url %q is not absolute", rawURL)
	}
	// relative paths are appended to the base, not substituted for its last segment
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// URL returns the base URL of the API.
func (c *Client) URL() string {
	return c.baseURL.String()
}

// ResolvePath joins the relative path with the Client's base URL. A leading slash is ignored, i.e.
// "/races/data" and "races/data" resolve to the same URL. Paths with a query, a fragment or a "." or ".." segment
// are rejected.
func (c *Client) ResolvePath(path string) (*url.URL, error) {
	// the "./" prefix forces path to be parsed as a relative path, even if its first segment contains a colon
	ref, err := url.Parse("./" + strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, &Error{Kind: KindPathResolution, Err: err}
	}
	if ref.RawQuery != "" || ref.Fragment != "" {
		return nil, &Error{Kind: KindPathResolution, Err: fmt.Errorf("path %q contains a query or fragment", path)}
	}
	if hasDotSegment(strings.TrimPrefix(ref.EscapedPath(), "./")) {
		return nil, &Error{Kind: KindPathResolution, Err: fmt.Errorf("path %q contains a dot segment", path)}
	}
	return c.baseURL.ResolveReference(ref), nil
}

// hasDotSegment reports whether any segment of the escaped path is "." or "..", escaped or not.
// Such segments would make the path resolve outside the endpoint it names.
func hasDotSegment(escapedPath string) bool {
	for _, segment := range strings.Split(escapedPath, "/") {
		if unescaped, err := url.PathUnescape(segment); err == nil {
			segment = unescaped
		}
		if segment == "." || segment == ".." {
			return true
		}
	}
	return false
}

// Response is the raw result of a GET request.
type Response struct {
	Header     http.Header
	Status     string
	Body       []byte
	StatusCode int
}

// Get performs a GET request for the target URL. It returns the response for any HTTP status code:
// only transport-level failures return an error (of kind KindTransport).
func (c *Client) Get(ctx context.Context, target *url.URL) (*Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(target.String())
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: target.String(), Err: err}
	}
	if resp.RawResponse == nil {
		return nil, &Error{Kind: KindTransport, URL: target.String(), Err: errors.New("no response received")}
	}
	return &Response{
		Header:     resp.Header(),
		Status:     resp.Status(),
		Body:       resp.Body(),
		StatusCode: resp.StatusCode(),
	}, nil
}
