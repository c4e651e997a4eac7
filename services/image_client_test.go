package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageClientUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload["image"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://img.example/abc.png"})
	}))
	defer server.Close()

	client := NewImageClient(server.URL, "test-key")
	result := client.Upload("data:image/png;base64,aGVsbG8=")
	require.NoError(t, result.Err)
	assert.Equal(t, "https://img.example/abc.png", result.URL)
}

func TestImageClientUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewImageClient(server.URL, "")
	result := client.Upload("data:image/png;base64,aGVsbG8=")
	assert.Error(t, result.Err)
	assert.Empty(t, result.URL)
}

func TestImageClientUnconfigured(t *testing.T) {
	client := NewImageClient("", "")
	result := client.Upload("data:image/png;base64,aGVsbG8=")
	assert.Error(t, result.Err)
}

func TestImageClientMissingURLInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewImageClient(server.URL, "")
	result := client.Upload("data:image/png;base64,aGVsbG8=")
	assert.Error(t, result.Err)
}
