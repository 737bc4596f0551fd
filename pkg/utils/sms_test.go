package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSClient_SendOTP(t *testing.T) {
	var got smsPayload
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{"return": true, "request_id": "abc123"})
	}))
	defer srv.Close()

	client := NewSMSClientWith(srv.URL, "test-key", nil)
	require.NoError(t, client.SendOTP("9876543210", "123456"))

	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "q", got.Route)
	assert.Equal(t, "english", got.Language)
	assert.Equal(t, 0, got.Flash)
	assert.Equal(t, "9876543210", got.Numbers)
	assert.Contains(t, got.Message, "123456")
}

func TestSMSClient_GatewayRejection(t *testing.T) {
	// The gateway reports failure in the body with HTTP 200.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"return": false, "message": "Invalid Authentication"})
	}))
	defer srv.Close()

	client := NewSMSClientWith(srv.URL, "bad-key", nil)
	err := client.SendOTP("9876543210", "123456")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "rejected"))
}

func TestSMSClient_MissingKey(t *testing.T) {
	client := NewSMSClientWith("http://localhost:0", "", nil)
	err := client.SendOTP("9876543210", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
