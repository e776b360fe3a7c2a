package tmdb

import (
	"net/http"
	"time"
)

// Defaults for the public catalog service.
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultPosterSize   = "w342"
	DefaultTimeout      = 30 * time.Second

	// DefaultMaxBodySize bounds a successful response body; original-size posters stay well below it
	DefaultMaxBodySize int64 = 32 << 20
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout      time.Duration
	httpClient   *http.Client
	imageBaseURL string
	posterSize   string
	userAgent    string
	maxBodySize  int64
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:      DefaultTimeout,
		imageBaseURL: DefaultImageBaseURL,
		posterSize:   DefaultPosterSize,
		maxBodySize:  DefaultMaxBodySize,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client used for every request.
// The client's own timeout is kept as is.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithImageBaseURL sets the base URL posters are fetched from.
func WithImageBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.imageBaseURL = baseURL
		}
	}
}

// WithPosterSize sets the size segment used for posters (e.g. w342).
func WithPosterSize(size string) Option {
	return func(o *clientOptions) {
		if size != "" {
			o.posterSize = size
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithMaxBodySize caps how many bytes of a successful response are read.
func WithMaxBodySize(size int64) Option {
	return func(o *clientOptions) {
		if size > 0 {
			o.maxBodySize = size
		}
	}
}
