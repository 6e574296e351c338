// Package extractor calls the receipt extraction service over HTTP.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"orderdesk/internal/core/ports"
)

const DefaultTimeout = 30 * time.Second

// HTTPClient implements ports.DocumentExtractor. The image is sent as the raw request
// body; a 2xx JSON response is decoded into ports.ExtractedOrder. Every failure wraps
// ports.ErrExtractionFailed.
type HTTPClient struct {
	endpoint   *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse extractor url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("extractor url must be absolute")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	endpoint := *parsed
	endpoint.Path = path.Join(endpoint.Path, "/v1/extract")

	return &HTTPClient{
		endpoint:   &endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "extractor-client"),
	}, nil
}

func (c *HTTPClient) Extract(ctx context.Context, image []byte, contentType string) (ports.ExtractedOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(image))
	if err != nil {
		return ports.ExtractedOrder{}, fmt.Errorf("%w: %w", ports.ErrExtractionFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ExtractedOrder{}, fmt.Errorf("%w: %w", ports.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.ErrorContext(ctx, "extraction request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return ports.ExtractedOrder{}, fmt.Errorf("%w: %s", ports.ErrExtractionFailed, resp.Status)
	}

	var extracted ports.ExtractedOrder
	if err = json.NewDecoder(resp.Body).Decode(&extracted); err != nil {
		return ports.ExtractedOrder{}, fmt.Errorf("%w: decode response: %w", ports.ErrExtractionFailed, err)
	}

	return extracted, nil
}
