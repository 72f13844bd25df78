package apiclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type item struct {
	Name string `json:"name"`
}

func TestFetchJSON_JoinsBaseURLAndSetsHeaders(t *testing.T) {
	var gotPath, gotAccept, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"name":"email"}]`)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL + "//"}, discardLogger())
	items, err := FetchJSON[[]item](context.Background(), c, "api/v1/profile/contacts?x=1")

	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "email"}}, items)
	assert.Equal(t, "/api/v1/profile/contacts?x=1", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDo_HeaderOverride(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		_, _ = io.WriteString(w, "plain")
	}))
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL}, discardLogger())
	resp, err := c.Do(context.Background(), "/text", WithHeader("Accept", "text/plain"))

	require.NoError(t, err)
	assert.Equal(t, "text/plain", gotAccept)
	assert.Equal(t, "plain", resp.Payload)
}

func TestDo_AbsoluteURLIgnoresBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{}, discardLogger())
	resp, err := c.Do(context.Background(), srv.URL+"/ping")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, resp.Payload)
}

func TestDo_MissingBaseURLFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: "  "}, discardLogger())
	_, err := c.Do(context.Background(), "/api/v1/profile/contacts")

	require.ErrorIs(t, err, ErrMissingBaseURL)
	assert.Zero(t, calls.Load())
}

func TestDo_Non2xxCarriesParsedPayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		payload any
	}{
		{"json body", `{"detail":"boom"}`, map[string]any{"detail": "boom"}},
		{"text body", "upstream down", "upstream down"},
		{"empty body", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, tt.body)
			}))
			t.Cleanup(srv.Close)

			c := New(Config{BaseURL: srv.URL}, discardLogger())
			_, err := c.Do(context.Background(), "/x")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
			assert.Equal(t, tt.payload, apiErr.Payload)
			assert.Equal(t, "API request failed with status 503", apiErr.Error())
			assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
		})
	}
}

func TestDo_TimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := New(Config{BaseURL: srv.URL, Timeout: time.Minute}, discardLogger())
	start := time.Now()
	_, err := c.Do(context.Background(), "/slow", WithTimeout(50*time.Millisecond))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, IsTimeout(err))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Zero(t, StatusCode(err))
}

func TestDo_ConnectionRefusedIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{BaseURL: url}, discardLogger())
	_, err := c.Do(context.Background(), "/gone")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.False(t, IsTimeout(err))
}

func TestFetchJSON_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>not json</html>")
	}))
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL}, discardLogger())
	items, err := FetchJSON[[]item](context.Background(), c, "/x")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Nil(t, items)
	assert.False(t, errors.Is(err, ErrMissingBaseURL))
}

func TestSafeParse(t *testing.T) {
	assert.Nil(t, safeParse(nil))
	assert.Nil(t, safeParse([]byte("  \n")))
	assert.Equal(t, float64(3), safeParse([]byte("3")))
	assert.Equal(t, "oops", safeParse([]byte("oops")))
	assert.Nil(t, safeParse([]byte{0xff, 0xfe, 0xfd}))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "/api/v1/profile/full", endpointLabel("/api/v1/profile/full?lang=en"))
	assert.Equal(t, "/api/v1/profile/contacts", endpointLabel("api/v1/profile/contacts"))
	assert.Equal(t, "/ping", endpointLabel("http://127.0.0.1:9/ping?x=1"))
	assert.Equal(t, "/", endpointLabel("https://example.com"))
}
