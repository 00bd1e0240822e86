package wordsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) (*HTTPSource, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	source, err := NewHTTPSource(NewHTTPSourceOptions{
		BaseURL:        server.URL,
		Timeout:        time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
	})
	require.NoError(t, err)
	return source, &calls
}

func TestHTTPSource_FetchWord(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		want          string
		wantCalls     int32
		wantErr       bool
		wantMalformed bool
	}{
		{
			name: "word for difficulty",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("difficulty") != "hard" {
					http.Error(w, "bad difficulty", http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"word":"book"}`))
			},
			want:      "book",
			wantCalls: 1,
		},
		{
			name: "word is normalized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"word":"  Gallows \n"}`))
			},
			want:      "gallows",
			wantCalls: 1,
		},
		{
			name: "server errors are retried",
			handler: func() http.HandlerFunc {
				var n int32
				return func(w http.ResponseWriter, r *http.Request) {
					if atomic.AddInt32(&n, 1) < 3 {
						http.Error(w, "unavailable", http.StatusServiceUnavailable)
						return
					}
					w.Write([]byte(`{"word":"rope"}`))
				}
			}(),
			want:      "rope",
			wantCalls: 3,
		},
		{
			name: "gives up after max attempts",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantCalls: 3,
			wantErr:   true,
		},
		{
			name: "client errors are not retried",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusNotFound)
			},
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>`))
			},
			wantCalls:     1,
			wantErr:       true,
			wantMalformed: true,
		},
		{
			name: "missing word",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"words":["book"]}`))
			},
			wantCalls:     1,
			wantErr:       true,
			wantMalformed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, calls := newTestSource(t, tt.handler)

			got, err := source.FetchWord(context.Background(), "hard")
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(calls))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWordSource)
				if tt.wantMalformed {
					assert.ErrorIs(t, err, ErrMalformedResponse)
				}
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPSource_FetchWord_unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	source, err := NewHTTPSource(NewHTTPSourceOptions{
		BaseURL:        url,
		Timeout:        100 * time.Millisecond,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
	})
	require.NoError(t, err)

	_, err = source.FetchWord(context.Background(), "easy")
	assert.ErrorIs(t, err, ErrWordSource)
}

func TestHTTPSource_FetchWord_canceled(t *testing.T) {
	source, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"word":"book"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchWord(ctx, "easy")
	assert.ErrorIs(t, err, ErrWordSource)
}

func TestNewHTTPSource(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "default", baseURL: ""},
		{name: "http", baseURL: "http://localhost:9090/word"},
		{name: "unsupported scheme", baseURL: "ftp://example.com", wantErr: true},
		{name: "unparsable", baseURL: "http://[::1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPSource(NewHTTPSourceOptions{BaseURL: tt.baseURL})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
