package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReplicateClient(baseURL string, maxAttempts int) *ReplicateClient {
	return &ReplicateClient{
		httpClient:   http.DefaultClient,
		token:        "test-token",
		model:        "test-model",
		baseURL:      baseURL,
		pollInterval: time.Millisecond,
		maxAttempts:  maxAttempts,
		logger:       zap.NewNop(),
	}
}

func TestReplicateCompleteImmediateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predictions", r.URL.Path)
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))

		fmt.Fprint(w, `{"id":"p1","status":"succeeded","output":["Halo", " dunia"]}`)
	}))
	defer server.Close()

	client := newTestReplicateClient(server.URL, 5)

	completion, err := client.Complete(context.Background(), "halo", nil)
	require.NoError(t, err)
	assert.Equal(t, "Halo dunia", completion.Text)
	assert.Equal(t, 0.95, completion.Confidence)
	assert.Equal(t, SentimentPositive, completion.Sentiment)
}

func TestReplicateCompletePollsUntilSucceeded(t *testing.T) {
	var polls int32

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/predictions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":"p1","status":"starting","urls":{"get":%q}}`, server.URL+"/poll")
	})
	mux.HandleFunc("/poll", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))
		if atomic.AddInt32(&polls, 1) < 3 {
			fmt.Fprint(w, `{"id":"p1","status":"processing"}`)
			return
		}
		fmt.Fprint(w, `{"id":"p1","status":"succeeded","output":"Selesai"}`)
	})

	client := newTestReplicateClient(server.URL, 10)

	completion, err := client.Complete(context.Background(), "halo", nil)
	require.NoError(t, err)
	assert.Equal(t, "Selesai", completion.Text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&polls))
}

func TestReplicateCompleteTimesOutAtPollCeiling(t *testing.T) {
	var polls int32

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/predictions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":"p1","status":"starting","urls":{"get":%q}}`, server.URL+"/poll")
	})
	mux.HandleFunc("/poll", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		fmt.Fprint(w, `{"id":"p1","status":"processing"}`)
	})

	client := newTestReplicateClient(server.URL, 4)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.Equal(t, int32(4), atomic.LoadInt32(&polls))
}

func TestReplicateCompleteReportsProviderFailure(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/predictions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":"p1","status":"starting","urls":{"get":%q}}`, server.URL+"/poll")
	})
	mux.HandleFunc("/poll", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"p1","status":"failed","error":"model exploded"}`)
	})

	client := newTestReplicateClient(server.URL, 5)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)
	assert.False(t, IsTimeout(err))

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Reason, "model exploded")
}

func TestReplicateCompleteHonorsCancellation(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/predictions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":"p1","status":"starting","urls":{"get":%q}}`, server.URL+"/poll")
	})
	mux.HandleFunc("/poll", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"p1","status":"processing"}`)
	})

	client := newTestReplicateClient(server.URL, 1000)
	client.pollInterval = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "halo", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReplicateCompleteEmptyOutputAfterSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"p1","status":"succeeded","output":""}`)
	}))
	defer server.Close()

	client := newTestReplicateClient(server.URL, 5)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestReplicateCompleteSubmissionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"invalid token"}`)
	}))
	defer server.Close()

	client := newTestReplicateClient(server.URL, 5)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "replicate", svcErr.Provider)
	assert.Contains(t, svcErr.Reason, "401")
}

func TestReplicateSubmissionIncludesPrompt(t *testing.T) {
	var body struct {
		Version string `json:"version"`
		Input   struct {
			Prompt string `json:"prompt"`
		} `json:"input"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{"id":"p1","status":"succeeded","output":"ok"}`)
	}))
	defer server.Close()

	client := newTestReplicateClient(server.URL, 5)

	history := []Message{{Role: "user", Content: "sebelumnya"}}
	_, err := client.Complete(context.Background(), "berapa harga", history)
	require.NoError(t, err)

	assert.Equal(t, "test-model", body.Version)
	assert.Contains(t, body.Input.Prompt, "berapa harga")
	assert.Contains(t, body.Input.Prompt, "sebelumnya")
	assert.Contains(t, body.Input.Prompt, "Asisten Wira:")
}
