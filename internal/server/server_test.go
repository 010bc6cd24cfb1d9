package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainListener_Listen(t *testing.T) {
	listener, err := NewPlainListener().Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	assert.NotEmpty(t, listener.Addr().String())
}

func TestTLSListener_Listen_MissingCert(t *testing.T) {
	listener := NewTLSListener("missing.crt", "missing.key")

	_, err := listener.Listen("tcp", "127.0.0.1:0")
	require.Error(t, err)
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	listener, err := NewPlainListener().Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	s := NewHTTPServer(handler, addr)
	assert.Equal(t, addr, s.Address())

	done := make(chan error, 1)
	go func() {
		done <- s.Start(NewPlainListener())
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var reqErr error
		resp, reqErr = http.Get("http://" + addr + "/")
		return reqErr == nil
	}, 2*time.Second, 20*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-done)
}
