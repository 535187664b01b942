package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrowserClient_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewBrowserClient("TestBrowser/1.0", 5*time.Second)
	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "TestBrowser/1.0", gotUA)
}

func TestNewBrowserClient_KeepsExplicitUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewBrowserClient("TestBrowser/1.0", 5*time.Second)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "Override/2.0")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Override/2.0", gotUA)
	assert.Equal(t, "Override/2.0", req.Header.Get("User-Agent"))
}
