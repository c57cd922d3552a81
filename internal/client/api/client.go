// Package api implements the REST client for the FitLife backend. Every
// endpoint wrapper goes through a single request path that attaches the
// bearer credential, normalizes the response envelope, and guarantees the
// caller gets either decoded data or a non-nil error, never a half-parsed
// result.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/token"
	"github.com/KingTechFoundation/fitlife-cli/internal/logging"
)

const bodySnippetLen = 120

type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	log     logging.Logger
}

// New builds a client for the given base URL. The token store is read on
// every request; the client never writes to it.
func New(baseURL string, timeout time.Duration, tokens token.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do performs one request. body (if non-nil) is serialized as JSON; out (if
// non-nil) receives the envelope's data field on success.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	// Forced headers are set last: callers cannot override them.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		// Guards against misconfigured routes returning HTML error pages.
		c.log.Warn(ctx, "non-JSON response", "method", method, "path", path, "status", resp.StatusCode)
		return &Error{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected non-JSON response (status %d): %s", resp.StatusCode, snippet(data)),
		}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &Error{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("malformed response (status %d): %v", resp.StatusCode, err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		c.log.Debug(ctx, "backend rejected request", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return &Error{Status: resp.StatusCode, Message: msg, FieldErrors: env.fieldMessages()}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("decoding response data: %v", err),
			}
		}
	}
	return nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > bodySnippetLen {
		return s[:bodySnippetLen] + "..."
	}
	return s
}
