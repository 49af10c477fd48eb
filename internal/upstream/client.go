package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chargeway/internal/infra"
)

// Client is a typed HTTP client for the charging platform. It carries no
// credentials of its own: every call forwards the caller's bearer token, so a
// single Client serves all users.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return infra.WrapUpstreamErr(c.logger, infra.KindBadRequest, "encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, method+" "+path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, "read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, "decode response envelope", err)
	}
	if len(env.Data) == 0 {
		// Some endpoints reply with the object at the top level.
		if err := json.Unmarshal(raw, out); err != nil {
			return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, "decode response body", err)
		}
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, "decode response data", err)
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, raw []byte) error {
	msg := fmt.Sprintf("%s %s: status %d", method, path, status)

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		msg += ": " + env.Message
	}

	switch {
	case status == http.StatusNotFound:
		return infra.WrapUpstreamErr(c.logger, infra.KindNotFound, msg, nil)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.WrapUpstreamErr(c.logger, infra.KindUnauthorized, msg, nil)
	case status == http.StatusConflict:
		return infra.WrapUpstreamErr(c.logger, infra.KindConflict, msg, nil)
	case status >= 400 && status < 500:
		return infra.WrapUpstreamErr(c.logger, infra.KindBadRequest, msg, nil)
	default:
		return infra.WrapUpstreamErr(c.logger, infra.KindUpstreamFailure, msg, nil)
	}
}
