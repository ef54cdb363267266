package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// geminiClient implements LLMClient against the Gemini generateContent REST API.
type geminiClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultGeminiEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return &geminiClient{
		cfg:      cfg,
		http:     newHTTPClient(),
		observer: observerOrNoop(observer),
	}
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"system_instruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
}

func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	temp, maxTok := c.cfg.params(req)
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temp,
			MaxOutputTokens: maxTok,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.Endpoint, c.cfg.Model)
	return generateWithRetry(ctx, c.cfg, c.observer, req.Task, func(ctx context.Context) (string, string, error) {
		var resp geminiResponse
		if err := postJSON(ctx, c.http, url, c.headers(), body, &resp); err != nil {
			return "", "", err
		}
		text := resp.text()
		if text == "" {
			return "", "", fmt.Errorf("%w: empty candidate list", ErrInvalidOutput)
		}
		return text, resp.ModelVersion, nil
	})
}

func (c *geminiClient) Available(ctx context.Context) bool {
	return probe(ctx, c.http, c.cfg.Endpoint+"/models/"+c.cfg.Model, c.headers())
}

func (c *geminiClient) headers() map[string]string {
	return map[string]string{"x-goog-api-key": c.cfg.APIKey}
}
