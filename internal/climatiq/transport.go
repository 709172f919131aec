package climatiq

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// payload a 2xx response body, not yet decoded
type payload struct {
	status      int
	contentType string
	body        []byte
}

func (p *payload) isJSON() bool {
	return strings.Contains(p.contentType, "application/json")
}

// decode fills out from a json body, or a *string from any other body
func (p *payload) decode(out any) error {
	if !p.isJSON() {
		if s, ok := out.(*string); ok {
			*s = string(p.body)
			return nil
		}
		return malformedError(p.status, string(p.body), fmt.Errorf("content type %q is not json", p.contentType))
	}
	if bytes.Equal(bytes.TrimSpace(p.body), []byte("null")) {
		return malformedError(p.status, string(p.body), errors.New("empty json body"))
	}
	if err := json.Unmarshal(p.body, out); err != nil {
		return malformedError(p.status, string(p.body), err)
	}
	return nil
}

// detail picks the server explanation out of an error body
func (p *payload) detail() string {
	text := string(p.body)
	if !p.isJSON() {
		return text
	}
	var body map[string]any
	if err := json.Unmarshal(p.body, &body); err != nil {
		return text
	}
	for _, key := range []string{"detail", "message"} {
		switch v := body[key].(type) {
		case nil:
		case string:
			if v != "" {
				return v
			}
		default:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
	}
	b, err := json.Marshal(body)
	if err != nil {
		return text
	}
	return string(b)
}

// call performs one request and decodes the answer into out
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	p, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	return p.decode(out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*payload, error) {
	var reader io.Reader
	if body != nil {
		requestData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("err during marshaling of a request: %w", err)
		}
		reader = bytes.NewReader(requestData)
	}

	target := c.APIURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("err during creating a request with context: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("climatiq unreachable")
		return nil, networkError(err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Error().Err(err).Msg("couldn't close a body")
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("climatiq call")

	p := &payload{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        raw,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, p.detail())
	}
	return p, nil
}
