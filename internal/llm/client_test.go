package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

type captureObserver struct {
	mu     sync.Mutex
	events []LLMCallEvent
}

func (o *captureObserver) OnCallComplete(e LLMCallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *captureObserver) last() LLMCallEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "system prompt", req.System)
		assert.Equal(t, "user prompt", req.Prompt)
		assert.Equal(t, 0.1, req.Options.Temperature)

		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: `[{"title":"Logo"}]`})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskExtractTasks,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Logo"}]`, resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
}

func TestOllamaClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskAdvice: {Temperature: 0.7, MaxTokens: 256, TimeoutMs: 50},
	}
	obs := &captureObserver{}

	client := NewOllamaClient(cfg, obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvice, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "TIMEOUT", obs.last().ErrorCode)
	assert.False(t, obs.last().Success)
}

func TestOllamaClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvice, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaClient_Generate_RetryOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	resp, err := NewOllamaClient(cfg, nil).Generate(context.Background(), GenerateRequest{Task: TaskAdvice, UserPrompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestOllamaClient_Generate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewOllamaClient(testConfig(srv.URL), nil).Generate(context.Background(), GenerateRequest{Task: TaskAdvice})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
	}))
	defer srv.Close()

	assert.True(t, NewOllamaClient(testConfig(srv.URL), nil).Available(context.Background()))
	assert.False(t, NewOllamaClient(testConfig("http://127.0.0.1:1"), nil).Available(context.Background()))
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "be brief", req.SystemInstruction.Parts[0].Text)
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "how busy am I?", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.7, req.GenerationConfig.Temperature)

		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Rest "},{"text":"more."}]}}],"modelVersion":"gemini-test-001"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Provider = ProviderGemini
	cfg.Model = "gemini-test"
	cfg.APIKey = "secret"

	resp, err := NewGeminiClient(cfg, nil).Generate(context.Background(), GenerateRequest{
		Task:         TaskAdvice,
		SystemPrompt: "be brief",
		UserPrompt:   "how busy am I?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rest more.", resp.Text)
	assert.Equal(t, "gemini-test-001", resp.Model)
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	_, err := NewGeminiClient(cfg, nil).Generate(context.Background(), GenerateRequest{Task: TaskAdvice})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

type countingClient struct {
	calls atomic.Int32
	text  string
}

func (c *countingClient) Generate(_ context.Context, _ GenerateRequest) (*GenerateResponse, error) {
	c.calls.Add(1)
	return &GenerateResponse{Text: c.text, Model: "stub"}, nil
}

func (c *countingClient) Available(context.Context) bool { return true }

func TestCachedClient_ReusesResponses(t *testing.T) {
	next := &countingClient{text: "cached"}
	obs := &captureObserver{}
	client := NewCachedClient(next, 4, time.Minute, obs)

	req := GenerateRequest{Task: TaskAdvice, UserPrompt: "same"}
	for i := 0; i < 3; i++ {
		resp, err := client.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "cached", resp.Text)
	}
	assert.Equal(t, int32(1), next.calls.Load())
	assert.True(t, obs.last().Cached)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvice, UserPrompt: "other"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestRateLimitedClient_RejectsBurst(t *testing.T) {
	next := &countingClient{text: "ok"}
	client := NewRateLimitedClient(next, 1)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvice})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskAdvice})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestNewClient_WrapsDecorators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheSize = 0
	cfg.RatePerMinute = 0
	_, plain := NewClient(cfg, nil).(*ollamaClient)
	assert.True(t, plain)

	cfg = DefaultConfig()
	_, cached := NewClient(cfg, nil).(*cachedClient)
	assert.True(t, cached)

	cfg.Provider = ProviderGemini
	cfg.CacheSize = 0
	cfg.RatePerMinute = 0
	_, gem := NewClient(cfg, nil).(*geminiClient)
	assert.True(t, gem)
}
