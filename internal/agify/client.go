// Package agify is a client for the agify.io age-estimation API.
package agify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"agelookup/internal/models"
)

// DefaultBaseURL is the public agify.io endpoint.
const DefaultBaseURL = "https://api.agify.io"

// maxBodyBytes bounds how much of a response body is decoded.
const maxBodyBytes = 1 << 20

// ErrUnexpectedStatus is returned when the service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("agify: unexpected status")

var (
	ErrEmptyBody    = errors.New("agify: null response body")
	ErrTrailingData = errors.New("agify: trailing data after response")
)

// Client estimates ages using the agify.io API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an agify client. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Estimate fetches the age estimate for name. The name is sent as given;
// callers trim it first.
func (c *Client) Estimate(ctx context.Context, name string) (models.AgeEstimate, error) {
	u, err := c.requestURL(name)
	if err != nil {
		return models.AgeEstimate{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.AgeEstimate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("agify request", "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.AgeEstimate{}, fmt.Errorf("agify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.AgeEstimate{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	estimate, err := decodeEstimate(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return models.AgeEstimate{}, fmt.Errorf("decode response: %w", err)
	}
	return *estimate, nil
}

// decodeEstimate reads exactly one JSON object from r. A null body or
// trailing data after the object is an error.
func decodeEstimate(r io.Reader) (*models.AgeEstimate, error) {
	dec := json.NewDecoder(r)
	var estimate *models.AgeEstimate
	if err := dec.Decode(&estimate); err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, ErrEmptyBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return estimate, nil
}

// requestURL appends the name query parameter to the base URL.
func (c *Client) requestURL(name string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("name", name)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
