package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxErrorBody caps how much of a failed response body is kept on HTTPStatusError
const maxErrorBody = 512

// Result is the single outcome delivered by Execute
type Result struct {
	Response *ParsedResponse
	Err      error
}

// Execute runs spec through the pipeline on its own goroutine.
// The returned channel receives exactly one Result and is then closed.
func (c *Client) Execute(ctx context.Context, spec RequestSpec, expectJSON bool) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		resp, err := c.Do(ctx, spec, expectJSON)
		out <- Result{Response: resp, Err: err}
	}()
	return out
}

// Do performs spec and validates the response in fixed order:
// transport, HTTP status, body presence, then JSON syntax when expectJSON is set.
// The first failing stage ends the request; nothing is retried.
func (c *Client) Do(ctx context.Context, spec RequestSpec, expectJSON bool) (*ParsedResponse, error) {
	var body io.Reader
	if spec.Body != nil {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range spec.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", spec.Method).
		Str("url", redactURL(spec.URL)).
		Bool("expect_json", expectJSON).
		Msg("Making TMDB request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the unredacted URL
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &TransportError{Method: spec.Method, URL: redactURL(spec.URL), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, &TransportError{Method: spec.Method, URL: redactURL(spec.URL), Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(data)) > c.maxBodySize {
		return nil, &TransportError{Method: spec.Method, URL: redactURL(spec.URL), Err: fmt.Errorf("response body exceeds %d bytes", c.maxBodySize)}
	}

	if len(data) == 0 {
		return nil, ErrEmptyBody
	}

	if !expectJSON {
		return &ParsedResponse{Kind: ResponseRaw, Body: data}, nil
	}

	if !json.Valid(data) {
		return nil, &DecodeError{Reason: "body is not valid JSON"}
	}

	return &ParsedResponse{Kind: ResponseJSON, Body: data}, nil
}

// getJSON builds a GET request spec that expects a JSON body
func getJSON(rawURL string) RequestSpec {
	return RequestSpec{
		Method: http.MethodGet,
		URL:    rawURL,
		Header: http.Header{"Accept": {"application/json"}},
	}
}

// postJSON builds a POST request spec with payload encoded as JSON
func postJSON(rawURL string, payload any) (RequestSpec, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return RequestSpec{}, fmt.Errorf("failed to encode request body: %w", err)
	}
	return RequestSpec{
		Method: http.MethodPost,
		URL:    rawURL,
		Header: http.Header{
			"Accept":       {"application/json"},
			"Content-Type": {"application/json"},
		},
		Body: data,
	}, nil
}

// remoteError builds a RemoteAPIError from the status fields of obj
func remoteError(obj map[string]json.RawMessage) *RemoteAPIError {
	apiErr := &RemoteAPIError{}
	if raw, ok := obj["status_code"]; ok {
		_ = json.Unmarshal(raw, &apiErr.StatusCode)
	}
	if raw, ok := obj["status_message"]; ok {
		_ = json.Unmarshal(raw, &apiErr.StatusMessage)
	}
	return apiErr
}
