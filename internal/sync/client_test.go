package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	snap, err := NewClient(srv.URL).Fetch(context.Background(), "user-42")
	require.NoError(t, err)
	assert.Nil(t, snap, "404 means absent, not an error")
}

func TestClient_Fetch(t *testing.T) {
	want := testSnapshot()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/users/user-42/snapshot", r.URL.Path)
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Fetch(context.Background(), "user-42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestClient_FetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), "user-42")
	assert.Error(t, err)
}

func TestClient_Push(t *testing.T) {
	var received Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/users/user-42/snapshot", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	snap := testSnapshot()
	require.NoError(t, NewClient(srv.URL).Push(context.Background(), "user-42", snap))
	assert.Equal(t, snap, received)
}

func TestClient_PushRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Push(context.Background(), "user-42", testSnapshot())
	assert.Error(t, err)
}
