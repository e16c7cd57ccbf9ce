// Copyright 2026 Seekwell Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is Cloudflare Turnstile's verification endpoint.
const DefaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Turnstile verifies tokens against Cloudflare Turnstile.
type Turnstile struct {
	secret   string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

var _ Verifier = (*Turnstile)(nil)

// TurnstileOption configures a Turnstile verifier.
type TurnstileOption func(*Turnstile)

// WithEndpoint overrides the verification endpoint. Used in tests.
func WithEndpoint(endpoint string) TurnstileOption {
	return func(t *Turnstile) {
		t.endpoint = endpoint
	}
}

// WithHTTPClient overrides the HTTP client.
// Default has a 10 second timeout.
func WithHTTPClient(client *http.Client) TurnstileOption {
	return func(t *Turnstile) {
		t.client = client
	}
}

// NewTurnstile creates a Turnstile verifier with the given shared secret.
func NewTurnstile(secret string, opts ...TurnstileOption) (*Turnstile, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}

	t := &Turnstile{
		secret:   secret,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default().With("component", "captcha"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// siteverifyResponse is the subset of the siteverify reply we act on.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to siteverify and checks the verdict. Transport and
// decode failures are folded into ErrVerificationFailed so callers fail
// closed.
func (t *Turnstile) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrTokenRequired
	}

	form := url.Values{}
	form.Set("secret", t.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Error("siteverify request failed", "err", err)
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.logger.Error("siteverify returned non-OK status", "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrVerificationFailed, resp.StatusCode)
	}

	var verdict siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	if !verdict.Success {
		t.logger.Warn("captcha token rejected", "codes", verdict.ErrorCodes)
		return ErrVerificationFailed
	}
	return nil
}
