package tmdb

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client represents a TMDB API client
type Client struct {
	baseURL      string
	imageBaseURL string
	posterSize   string
	userAgent    string
	maxBodySize  int64
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient creates a new TMDB client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: tmdb URL is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: tmdb URL %q: %v", ErrInvalidConfig, baseURL, err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: strings.TrimRight(options.imageBaseURL, "/"),
		posterSize:   options.posterSize,
		userAgent:    options.userAgent,
		maxBodySize:  options.maxBodySize,
		httpClient:   httpClient,
		logger:       logger,
	}, nil
}

// ImageBaseURL returns the base URL posters are fetched from
func (c *Client) ImageBaseURL() string {
	return c.imageBaseURL
}

// PosterSize returns the configured poster size segment
func (c *Client) PosterSize() string {
	return c.posterSize
}

// SetImageBaseURL overrides the poster base URL, e.g. after reading /configuration.
func (c *Client) SetImageBaseURL(baseURL string) {
	if baseURL != "" {
		c.imageBaseURL = strings.TrimRight(baseURL, "/")
	}
}

// endpoint builds an absolute API URL for path with params in the query string
func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// redactURL masks credentials in a URL before it is logged
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	for _, key := range []string{"api_key", "session_id"} {
		if q.Has(key) {
			q.Set(key, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
