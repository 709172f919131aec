// Package climatiq is a client of the Climatiq emissions API. Every endpoint
// either returns the decoded response or a *Error.
package climatiq

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultDataVersion       = "^21"
	defaultCustomDataVersion = "0.0"
)

type Client struct {
	APIURL      string
	apiKey      string
	dataVersion string
	client      *http.Client
	timeout     *time.Duration
	logger      zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http client. The client is copied,
// so WithTimeout never touches the caller's one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the per call transport timeout, 0 means none
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// WithDataVersion sets the data_version used by data endpoints when the caller gives none
func WithDataVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.dataVersion = version
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(apiURL, apiKey string, opts ...Option) (*Client, error) {
	if apiURL == "" {
		return nil, errors.New("api url is empty")
	}
	if apiKey == "" {
		return nil, errors.New("api key is empty")
	}
	c := &Client{
		APIURL:      strings.TrimRight(apiURL, "/"),
		apiKey:      apiKey,
		dataVersion: defaultDataVersion,
		client:      &http.Client{},
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.client
		hc.Timeout = *c.timeout
		c.client = &hc
	}
	return c, nil
}
