package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetMovie loads a single movie by id
func (c *Client) GetMovie(ctx context.Context, movieID int, apiKey string) (*Movie, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	params := url.Values{"api_key": {apiKey}}
	resp, err := c.Do(ctx, getJSON(c.endpoint(fmt.Sprintf("/movie/%d", movieID), params)), true)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", movieID, err)
	}

	obj, err := resp.Object()
	if err != nil {
		return nil, err
	}
	if _, ok := obj["status_code"]; ok {
		return nil, remoteError(obj)
	}

	var movie Movie
	if err := json.Unmarshal(resp.Body, &movie); err != nil {
		return nil, &DecodeError{Reason: "malformed movie", Err: err}
	}
	if movie.ID == 0 {
		return nil, &DecodeError{Reason: "cannot find key 'id'"}
	}
	return &movie, nil
}

// GetConfiguration retrieves the service's image configuration
func (c *Client) GetConfiguration(ctx context.Context, apiKey string) (*Configuration, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	params := url.Values{"api_key": {apiKey}}
	resp, err := c.Do(ctx, getJSON(c.endpoint("/configuration", params)), true)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	obj, err := resp.Object()
	if err != nil {
		return nil, err
	}
	if _, ok := obj["status_code"]; ok {
		return nil, remoteError(obj)
	}
	if _, ok := obj["images"]; !ok {
		return nil, &DecodeError{Reason: "cannot find key 'images'"}
	}

	var cfg Configuration
	if err := json.Unmarshal(resp.Body, &cfg); err != nil {
		return nil, &DecodeError{Reason: "malformed configuration", Err: err}
	}
	return &cfg, nil
}

// TestConnection verifies the API key by reading /configuration
func (c *Client) TestConnection(ctx context.Context, apiKey string) error {
	_, err := c.GetConfiguration(ctx, apiKey)
	return err
}
