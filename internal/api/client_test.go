package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqadmin/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c, err := New(Options{BaseURL: srv.URL + "/", Token: "secret", Logger: logger})
	require.NoError(t, err)
	return c
}

func TestListRequestsSendsCriteria(t *testing.T) {
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/requests", r.URL.Path)
		assert.Equal(t, "partner", r.URL.Query().Get("type"))
		assert.Equal(t, "BLOCKED", r.URL.Query().Get("status"))
		assert.Equal(t, "2024-01-02T00:00:00Z", r.URL.Query().Get("fromDate"))
		assert.Equal(t, "2024-01-05T00:00:00Z", r.URL.Query().Get("toDate"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-Id"))
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","email":"a@example.com","fullName":"Ann","createdAt":"2024-01-03T10:00:00Z","status":"BLOCKED"}]`)
	})

	got, err := c.ListRequests(context.Background(), domain.Criteria{
		Type:     "partner",
		Status:   domain.StatusBlocked,
		FromDate: &from,
		ToDate:   &to,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Ann", got[0].FullName)
	assert.Equal(t, domain.StatusBlocked, got[0].Status)
	assert.Nil(t, got[0].LastSession)
}

func TestListRequestsOmitsEmptyCriteria(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"items":[{"id":"1"},{"id":"2"}]}`)
	})

	got, err := c.ListRequests(context.Background(), domain.Criteria{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteUser(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteUser(context.Background(), "a/b"))
	assert.Equal(t, []string{"DELETE /users/a%2Fb"}, calls)
}

func TestUpdateUserStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/42/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ACTIVE", body["status"])
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.UpdateUserStatus(context.Background(), "42", domain.StatusActive))
}

func TestErrorResponseCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"user has open invoices"}`)
	})

	err := c.DeleteUser(context.Background(), "7")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "user has open invoices", apiErr.Message)
}

func TestErrorResponseWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.UpdateUserStatus(context.Background(), "7", domain.StatusBlocked)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "Internal Server Error")
}

func TestAPIKeyAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "k-123", r.Header.Get("X-Api-Key"))
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL, APIKey: "k-123"})
	require.NoError(t, err)

	got, err := c.ListRequests(context.Background(), domain.Criteria{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}
