package llm

import "time"

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAdvice       TaskType = "advice"
	TaskExtractTasks TaskType = "extract_tasks"
)

// Provider selects the backend behind Client.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel    = "gemini-2.5-flash"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	// RatePerMinute caps outgoing calls; 0 disables limiting.
	RatePerMinute int
	// CacheSize bounds the response cache; 0 disables caching.
	CacheSize int
	CacheTTL  time.Duration
	// Language, when set, is the language advice is written in.
	Language string
	Tasks    map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig for a local Ollama. LLM features are
// disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:       false,
		LogCalls:      false,
		Provider:      ProviderOllama,
		Endpoint:      "http://localhost:11434",
		Model:         "llama3.2",
		TimeoutMs:     15000,
		MaxRetries:    1,
		RatePerMinute: 30,
		CacheSize:     64,
		CacheTTL:      10 * time.Minute,
		Tasks: map[TaskType]TaskConfig{
			TaskAdvice:       {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 20000},
			TaskExtractTasks: {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) time.Duration {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return time.Duration(tc.TimeoutMs) * time.Millisecond
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// params resolves temperature and token limit for req.
func (c LLMConfig) params(req GenerateRequest) (float64, int) {
	tc := c.Tasks[req.Task]
	temp, maxTok := tc.Temperature, tc.MaxTokens
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok
}
