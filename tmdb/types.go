package tmdb

import (
	"encoding/json"
	"net/http"
)

// Movie represents the movie-like records returned by the catalog
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// HasPoster checks if the movie carries a poster path
func (m Movie) HasPoster() bool {
	return m.PosterPath != ""
}

// FavoriteState is the resolved favorite relation between account and movie
type FavoriteState int

const (
	// FavoriteUnknown means the state has not been resolved yet
	FavoriteUnknown FavoriteState = iota
	// Favorited means the movie is in the account's favorites
	Favorited
	// NotFavorited means the movie is not in the account's favorites
	NotFavorited
)

// String returns the string representation of a FavoriteState
func (s FavoriteState) String() string {
	switch s {
	case Favorited:
		return "FAVORITED"
	case NotFavorited:
		return "NOT_FAVORITED"
	default:
		return "UNKNOWN"
	}
}

// FavoriteStateOf maps a membership flag onto a resolved FavoriteState.
func FavoriteStateOf(isFavorite bool) FavoriteState {
	if isFavorite {
		return Favorited
	}
	return NotFavorited
}

// MediaTypeMovie is the only media_type this client mutates
const MediaTypeMovie = "movie"

// Service status codes returned by the favorite endpoint.
const (
	StatusCodeSuccess       = 1
	StatusCodeItemUpdated   = 12
	StatusCodeItemDeleted   = 13
	StatusCodeInvalidAPIKey = 7
)

// RequestSpec describes a single HTTP request issued through the pipeline
type RequestSpec struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// ResponseKind tags the variant held by a ParsedResponse
type ResponseKind int

const (
	// ResponseRaw holds undecoded bytes
	ResponseRaw ResponseKind = iota
	// ResponseJSON holds a body that parsed as JSON
	ResponseJSON
)

// ParsedResponse is the validated outcome of a pipeline request
type ParsedResponse struct {
	Kind ResponseKind
	Body []byte
}

// IsJSON checks if the response was validated as JSON
func (p *ParsedResponse) IsJSON() bool {
	return p.Kind == ResponseJSON
}

// Object returns the top-level JSON object keyed by field name.
func (p *ParsedResponse) Object() (map[string]json.RawMessage, error) {
	if !p.IsJSON() {
		return nil, &DecodeError{Reason: "response was not decoded as JSON"}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(p.Body, &obj); err != nil {
		return nil, &DecodeError{Reason: "top-level value is not an object", Err: err}
	}
	if obj == nil {
		return nil, &DecodeError{Reason: "top-level value is null"}
	}
	return obj, nil
}

// favoriteRequest is the body posted to the account favorite endpoint
type favoriteRequest struct {
	MediaType string `json:"media_type"`
	MediaID   int    `json:"media_id"`
	Favorite  bool   `json:"favorite"`
}

// favoritesPage is one page of the account favorites list
type favoritesPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Configuration holds the image settings of the service
type Configuration struct {
	Images ImageConfiguration `json:"images"`
}

// ImageConfiguration lists base URLs and size segments for images
type ImageConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	PosterSizes   []string `json:"poster_sizes"`
}

// HasPosterSize checks if size is one of the advertised poster sizes
func (ic ImageConfiguration) HasPosterSize(size string) bool {
	for _, s := range ic.PosterSizes {
		if s == size {
			return true
		}
	}
	return false
}
