package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps resty for HTTP requests to external gateways and APIs.
type Client struct {
	r *resty.Client
}

// New creates a new HTTP client with sensible defaults.
func New() *Client {
	r := resty.New().SetTimeout(30 * time.Second)
	return &Client{r: r}
}

// WithTimeout sets a custom timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.r.SetTimeout(d)
	return c
}

// Post sends a POST request with JSON body and returns the response body.
func (c *Client) Post(ctx context.Context, url string, body interface{}) ([]byte, error) {
	resp, err := c.PostRaw(ctx, url, body)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// PostRaw sends a POST request with JSON body and returns the full response.
// Callers that need response headers (the auth endpoint delivers tokens via
// headers on some environments) use this instead of Post.
func (c *Client) PostRaw(ctx context.Context, url string, body interface{}) (*resty.Response, error) {
	req := c.r.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}
	return req.Post(url)
}

// Request returns a new resty Request for chaining.
func (c *Client) Request() *resty.Request {
	return c.r.R()
}
