package myhttpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/restapi/v2.1/accounts/123/envelopes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"status":"sent"}`, string(body))

		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"envelopeId":"e1"}`))
	})

	status, body, err := New().Send(context.TODO(), http.MethodPost, ts.URL+"/restapi/v2.1/accounts/123/envelopes",
		http.Header{"Authorization": []string{"Bearer abc"}}, []byte(`{"status":"sent"}`))
	assert.NoError(t, err)
	assert.Equal(t, 201, status)
	assert.Equal(t, `{"envelopeId":"e1"}`, string(body))
}

func TestSendTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, _, err := New().Send(context.TODO(), http.MethodGet, url, nil, nil)
	assert.Error(t, err)
}

func TestSendTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	_, _, err := newHTTPClient(50*time.Millisecond).Send(context.TODO(), http.MethodGet, ts.URL, nil, nil)
	assert.Error(t, err)
}
