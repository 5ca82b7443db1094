package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *SupabaseVerifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewSupabaseVerifier(srv.URL, "service-role-key")
}

func TestSupabaseVerifier_Success(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "service-role-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"ignored","user":{"id":"uuid-1","email":"cliente@example.com"}}`))
	})

	ident, err := v.VerifyPassword(context.Background(), "cliente@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "uuid-1", ident.ID)
	assert.Equal(t, "cliente@example.com", ident.Email)
}

func TestSupabaseVerifier_Rejection(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	})

	_, err := v.VerifyPassword(context.Background(), "cliente@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSupabaseVerifier_EmptyUser(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{}}`))
	})

	_, err := v.VerifyPassword(context.Background(), "cliente@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSupabaseVerifier_NetworkError(t *testing.T) {
	v := NewSupabaseVerifier("http://127.0.0.1:1", "key")

	_, err := v.VerifyPassword(context.Background(), "cliente@example.com", "secret")
	require.Error(t, err)
	// Transport failures are not credential failures.
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
