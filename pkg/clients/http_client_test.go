package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Post(t *testing.T) {
	var gotBody string
	var gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotType = r.Header.Get("Content-Type")
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	status, body, respHeaders, err := NewHTTPClient().Post(context.Background(), server.URL, headers, []byte(`{"run_id":1}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "queued", string(body))
	assert.Equal(t, "3", respHeaders.Get("Retry-After"))
	assert.Equal(t, `{"run_id":1}`, gotBody)
	assert.Equal(t, "application/json", gotType)
}

func TestHTTPClient_PostUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, _, _, err := NewHTTPClient().Post(context.Background(), url, nil, nil)
	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Post(gomock.Any(), "http://hook", gomock.Any(), []byte("x")).Return(0, nil, nil, errors.New("boom"))

	client := NewHTTPClient()
	client.SetClient(mock)
	_, _, _, err := client.Post(context.Background(), "http://hook", nil, []byte("x"))
	assert.EqualError(t, err, "boom")
}

func TestHTTPClient_PostCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient().Post(ctx, server.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
