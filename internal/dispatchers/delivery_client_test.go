package dispatchers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"notify-digest/internal/models"
	"notify-digest/internal/shared/loggers"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the handler goroutine and the test read log output safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func loggerCtx(t *testing.T) (context.Context, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	logger, err := loggers.NewWithWriter("debug", out)
	require.NoError(t, err)
	return logger.WithContext(context.Background()), out
}

func sampleGroups() []models.CompactedGroup {
	at := time.Date(2026, 10, 14, 18, 3, 1, 0, time.UTC)
	return []models.CompactedGroup{
		{SourceName: "api", Kind: "restart", Detail: "x1\nx2", OccurredAt: at, Count: 2},
		{SourceName: "worker", Kind: "exception", Detail: "y", OccurredAt: at, Count: 1},
	}
}

type capturedRequest struct {
	method      string
	contentType string
	body        []byte
}

func sinkServer(t *testing.T, response string) (*httptest.Server, chan capturedRequest) {
	t.Helper()
	requests := make(chan capturedRequest, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests <- capturedRequest{method: r.Method, contentType: r.Header.Get("Content-Type"), body: body}
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, requests
}

func TestDeliveryClient_Deliver_Success(t *testing.T) {
	t.Parallel()

	srv, requests := sinkServer(t, "ok")
	client := NewDeliveryClient(ClientConfig{EndpointURL: srv.URL, DisplayName: "api-01"})
	ctx, logs := loggerCtx(t)

	svcErr := client.Deliver(ctx, sampleGroups(), 2)
	require.Nil(t, svcErr)

	req := <-requests
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "application/json", req.contentType)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(req.body, &payload))
	assert.Equal(t, RenderPayload("api-01", sampleGroups(), 2), payload["text"])
	assert.Contains(t, payload["text"], "2 messages have been suppressed.")

	assert.NotContains(t, logs.String(), `"level":"error"`)
}

func TestDeliveryClient_Deliver_AcknowledgmentInvalid(t *testing.T) {
	t.Parallel()

	srv, requests := sinkServer(t, "error")
	client := NewDeliveryClient(ClientConfig{EndpointURL: srv.URL, DisplayName: "api-01"})
	ctx, logs := loggerCtx(t)

	svcErr := client.Deliver(ctx, sampleGroups(), 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "DLV_9001", svcErr.Code)
	assert.Equal(t, "unavailable", svcErr.Category)
	assert.Len(t, requests, 1, "exactly one attempt, no retry")

	out := logs.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"lost_count":3`)
	assert.Contains(t, out, "3 unsent message(s) lost")
}

func TestDeliveryClient_Deliver_AcknowledgmentIsExact(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"ok\n", "OK", `{"ok":true}`, ""} {
		srv, _ := sinkServer(t, body)
		client := NewDeliveryClient(ClientConfig{EndpointURL: srv.URL, DisplayName: "h"})
		ctx, _ := loggerCtx(t)

		svcErr := client.Deliver(ctx, sampleGroups(), 0)
		require.NotNil(t, svcErr, "body %q must not count as acknowledgment", body)
		assert.Equal(t, "DLV_9001", svcErr.Code)
	}
}

func TestDeliveryClient_Deliver_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewDeliveryClient(ClientConfig{EndpointURL: url, DisplayName: "h", Timeout: time.Second})
	ctx, logs := loggerCtx(t)

	svcErr := client.Deliver(ctx, sampleGroups(), 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "DLV_9000", svcErr.Code)
	assert.Contains(t, logs.String(), `"lost_count":3`)
}

func TestDeliveryClient_Deliver_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := NewDeliveryClient(ClientConfig{EndpointURL: srv.URL, DisplayName: "h", Timeout: 50 * time.Millisecond})
	ctx, _ := loggerCtx(t)

	svcErr := client.Deliver(ctx, sampleGroups(), 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "DLV_9000", svcErr.Code)
}

func TestDeliveryClient_Deliver_MissingEndpoint(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called.Store(true)
		return nil, assert.AnError
	})
	client := NewDeliveryClient(ClientConfig{DisplayName: "h", HTTPClient: &http.Client{Transport: transport}})
	ctx, logs := loggerCtx(t)

	svcErr := client.Deliver(ctx, sampleGroups(), 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "DLV_1000", svcErr.Code)
	assert.Equal(t, "failed_precondition", svcErr.Category)
	assert.False(t, called.Load(), "no HTTP call without an endpoint")
	assert.Contains(t, logs.String(), "no endpoint_url configured")
}

func TestDeliveryClient_Deliver_LogsHostNotURL(t *testing.T) {
	t.Parallel()

	srv, _ := sinkServer(t, "nope")
	client := NewDeliveryClient(ClientConfig{EndpointURL: srv.URL + "/hooks/secret-token", DisplayName: "h"})
	ctx, logs := loggerCtx(t)

	_ = client.Deliver(ctx, sampleGroups(), 0)
	assert.NotContains(t, logs.String(), "secret-token")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
