package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Client is a JSON client for the platform API.
type Client struct {
	url  *url.URL
	http *http.Client

	// nil if we're not rate limited
	limiter *rate.Limiter
}

// New returns a client for the API rooted at address, eg.
// https://cavatica-api.sbgenomics.com/v2
func New(address string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()

	u, err := url.Parse(address)
	if err != nil {
		return nil, err
	}

	hc := &http.Client{Timeout: opts.Timeout}
	if opts.TLSConfig != nil {
		hc.Transport = &http.Transport{TLSClientConfig: opts.TLSConfig}
	}

	c := &Client{url: u, http: hc}
	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst)
	}
	return c, nil
}

// Get the given path & unmarshal the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, headers structs.Headers, out interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return do(ctx, c.http, http.MethodGet, c.addr(path), headers, nil, out)
}

// Post in as JSON to the given path & unmarshal the JSON response into out.
func (c *Client) Post(ctx context.Context, path string, headers structs.Headers, in, out interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return do(ctx, c.http, http.MethodPost, c.addr(path), headers, in, out)
}

// addr joins path onto our base URL, keeping any base path (eg. "/v2").
func (c *Client) addr(path string) *url.URL {
	return &url.URL{
		Scheme: c.url.Scheme,
		User:   c.url.User,
		Host:   c.url.Host,
		Path:   strings.TrimRight(c.url.Path, "/") + "/" + strings.TrimLeft(path, "/"),
	}
}

// wait blocks until the rate limiter allows another request.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w rate limit: %v", errors.ErrTransport, err)
	}
	return nil
}
