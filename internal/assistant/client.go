// Package assistant talks to the hosted prompt-execution service behind the
// shopping assistant. One rendered prompt in, free-form text out; no
// conversation state is kept on either side.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"darpanwears/internal/models"
)

// ErrUnavailable is returned for any transport or service failure. Callers
// surface it as a transient notification; the storefront rolls back the
// optimistic user message on seeing it.
var ErrUnavailable = errors.New("assistant service unavailable")

type Client struct {
	apiURL  string
	apiKey  string
	httpC   *http.Client
	baseFor func() string
}

// New builds a client for the completion endpoint. basePrompt is resolved
// per call via the supplied function so admin prompt overrides take effect
// without a restart.
func New(apiURL, apiKey string, timeout time.Duration, basePrompt func() string) *Client {
	return &Client{
		apiURL:  apiURL,
		apiKey:  apiKey,
		httpC:   &http.Client{Timeout: timeout},
		baseFor: basePrompt,
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Answer string `json:"answer"`
	Text   string `json:"text"`
}

// Ask renders the prompt against the supplied catalog snapshot and performs a
// single completion call. The catalog must be fetched fresh by the caller for
// every question.
func (c *Client) Ask(ctx context.Context, question string, products []models.Product, photoDataURI string) (string, error) {
	prompt := RenderPrompt(c.baseFor(), products, question, photoDataURI)

	payload, err := json.Marshal(completionRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpC.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, body)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	answer := parsed.Answer
	if answer == "" {
		answer = parsed.Text
	}
	if answer == "" {
		answer = "I'm sorry, I couldn't process that request. Please try again."
	}
	return answer, nil
}
