// Package api is a thin JSON client for the request administration API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"reqadmin/internal/domain"
)

// Options configures a Client
type Options struct {
	BaseURL string
	Token   string // sent as a bearer token when set
	APIKey  string // sent as X-Api-Key when set and Token is empty
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

// Client talks to the request administration API
type Client struct {
	baseURL string
	token   string
	apiKey  string
	http    *http.Client
	log     logrus.FieldLogger
}

// New creates a client. A zero timeout means requests never time out.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("api base url is not configured")
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		apiKey:  opts.APIKey,
		http:    &http.Client{Timeout: opts.Timeout},
		log:     logger,
	}, nil
}

// Error is returned for every non-2xx response
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
}

// ListRequests returns the requests matching c. ToDate is sent as an
// exclusive bound.
func (c *Client) ListRequests(ctx context.Context, criteria domain.Criteria) ([]domain.Request, error) {
	q := url.Values{}
	if criteria.Type != "" {
		q.Set("type", criteria.Type)
	}
	if criteria.Status != "" {
		q.Set("status", string(criteria.Status))
	}
	if criteria.FromDate != nil {
		q.Set("fromDate", criteria.FromDate.Format(time.RFC3339))
	}
	if criteria.ToDate != nil {
		q.Set("toDate", criteria.ToDate.Format(time.RFC3339))
	}

	path := "/requests"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	requests, err := decodeRequests(body)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

// DeleteUser deletes the record with the given id
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

type statusUpdate struct {
	Status domain.Status `json:"status"`
}

// UpdateUserStatus sets the status of the record with the given id
func (c *Client) UpdateUserStatus(ctx context.Context, id string, status domain.Status) error {
	path := "/users/" + url.PathEscape(id) + "/status"
	if _, err := c.do(ctx, http.MethodPatch, path, statusUpdate{Status: status}); err != nil {
		return fmt.Errorf("update status of user %s: %w", id, err)
	}
	return nil
}

// do performs one call and returns the response body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.apiKey != "":
		req.Header.Set("X-Api-Key", c.apiKey)
	default:
		c.log.Debug("No credentials configured; request will not be authed")
	}

	logger := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Debug("api call failed")
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"status":   res.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("api call")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &Error{StatusCode: res.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

// errorMessage pulls a human readable message out of an error body
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}

// decodeRequests accepts either a bare array or an {"items": [...]} envelope
func decodeRequests(body []byte) ([]domain.Request, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []domain.Request{}, nil
	}

	if trimmed[0] == '[' {
		var requests []domain.Request
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, fmt.Errorf("decode requests: %w", err)
		}
		return requests, nil
	}

	var envelope struct {
		Items []domain.Request `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	if envelope.Items == nil {
		envelope.Items = []domain.Request{}
	}
	return envelope.Items, nil
}
