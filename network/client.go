// Package network fetches pages over HTTP for the scraper.
package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/key"
)

// ErrStatus is returned for any response outside the 2xx range.
var ErrStatus = errors.New("unexpected status")

// Fetcher retrieves the raw body behind a URL.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is the default Fetcher. Redirects are followed by the underlying http.Client.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New builds a Client from network.timeout and network.user_agent.
func New() *Client {
	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	userAgent := viper.GetString(key.NetworkUserAgent)
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(),
		},
		UserAgent: userAgent,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// Get issues a GET and returns the full body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("%w: %s", ErrStatus, res.Status)
	}

	return io.ReadAll(res.Body)
}
