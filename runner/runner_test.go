package runner

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{Endpoint: srv.URL, Timeout: 5 * time.Second})
}

func TestNew_Defaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultEndpoint, c.Endpoint())
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.http)
}

func TestRun_EmptyCode(t *testing.T) {
	c := New(Config{Endpoint: "http://127.0.0.1:0"})

	_, err := c.Run(context.Background(), Request{Language: "python", Content: "  \n\t"})
	require.ErrorIs(t, err, ErrEmptyCode)
}

func TestRun_UnsupportedLanguage(t *testing.T) {
	c := New(Config{Endpoint: "http://127.0.0.1:0"})

	_, err := c.Run(context.Background(), Request{Language: "cobol", Content: "x"})
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "cobol")
}

func TestRun_Success(t *testing.T) {
	var body []byte
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"run":{"code":0,"stdout":"hi\n","stderr":"","output":"hi\n"}}`)
	})

	res, err := c.Run(context.Background(), Request{Language: "Python", Content: "print('hi')"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "hi", res.Stdout)
	assert.Empty(t, res.Stderr)

	assert.Equal(t, "python", gjson.GetBytes(body, "language").String())
	assert.Equal(t, "3.10.0", gjson.GetBytes(body, "version").String())
	assert.Equal(t, "print('hi')", gjson.GetBytes(body, "files.0.content").String())
}

func TestRun_FailedRun(t *testing.T) {
	cases := []struct {
		name string
		resp string
		want string
		exit int
	}{
		{
			name: "stderr wins",
			resp: `{"run":{"code":1,"stderr":"boom","output":"partial\nboom"}}`,
			want: "boom",
			exit: 1,
		},
		{
			name: "output fallback",
			resp: `{"run":{"code":2,"stderr":"","output":"oops"}}`,
			want: "oops",
			exit: 2,
		},
		{
			name: "fixed fallback",
			resp: `{"run":{"code":3,"stderr":"","output":""}}`,
			want: "Execution error",
			exit: 3,
		},
		{
			name: "null code",
			resp: `{"run":{"code":null,"signal":"SIGKILL","stderr":"","output":""}}`,
			want: "Execution error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tc.resp)
			})

			res, err := c.Run(context.Background(), Request{Language: "go", Content: "package main"})
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tc.want, res.Stderr)
			assert.Equal(t, tc.exit, res.ExitCode)
			assert.Empty(t, res.Stdout)
		})
	}
}

func TestRun_ServiceError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"runtime is unknown"}`)
	})

	_, err := c.Run(context.Background(), Request{Language: "go", Content: "x"})
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "runtime is unknown")
	assert.Contains(t, err.Error(), "400")
}

func TestRun_InvalidJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>`)
	})

	_, err := c.Run(context.Background(), Request{Language: "go", Content: "x"})
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestRun_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{Endpoint: url})
	_, err := c.Run(context.Background(), Request{Language: "go", Content: "x"})
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestRun_ContextCanceled(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"run":{"code":0,"output":""}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Run(ctx, Request{Language: "go", Content: "x"})
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
