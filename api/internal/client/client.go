// Package client calls the analyze proxy. It never talks to a model
// provider itself and holds no provider credentials.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"draw-guess/api/internal/vision"
	"draw-guess/api/internal/vision/types"
)

const (
	AnalyzePath = "/api/analyze"
	HealthPath  = "/healthz"
)

type Client struct {
	BaseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Analyze asks the proxy to guess the drawing.
//
// An invalid imageBase64 is returned as an error before any request is made.
// Every other failure (network, non-2xx, unreadable body) is logged and
// turned into an "error" result, so the returned error is nil.
func (c *Client) Analyze(ctx context.Context, imageBase64, targetWord string) (types.AnalyzeResult, error) {
	if _, err := vision.ValidateImage(imageBase64); err != nil {
		return types.AnalyzeResult{}, err
	}

	out, err := c.analyze(ctx, types.AnalyzeRequest{ImageBase64: imageBase64, TargetWord: targetWord})
	if err != nil {
		log.Printf("client: analysis failed via proxy: %v (image %.1fKB)", err, float64(len(imageBase64))/1024)
		return types.ErrorResult(targetWord), nil
	}
	return out, nil
}

func (c *Client) analyze(ctx context.Context, in types.AnalyzeRequest) (types.AnalyzeResult, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return types.AnalyzeResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+AnalyzePath, bytes.NewReader(payload))
	if err != nil {
		return types.AnalyzeResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(types.RequestIDHeader, uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return types.AnalyzeResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.AnalyzeResult{}, fmt.Errorf("backend error: %s", errorMessage(resp))
	}

	var out types.AnalyzeResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.AnalyzeResult{}, fmt.Errorf("bad response body: %w", err)
	}
	return out, nil
}

// errorMessage prefers the proxy's {error} field and falls back to the status text.
func errorMessage(resp *http.Response) string {
	var er types.ErrorResponse
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(b, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return http.StatusText(resp.StatusCode)
}

// Health checks that the proxy is up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+HealthPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proxy health %d", resp.StatusCode)
	}
	return nil
}
