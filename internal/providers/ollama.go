package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// OllamaAnalyzer obtains the analysis payload from a local Ollama server in
// JSON output mode. The provider-list alias doubles as the model name, e.g.
// "ollama:llama3.1".
type OllamaAnalyzer struct {
	alias   string
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaAnalyzer(alias string) *OllamaAnalyzer {
	baseURL := strings.TrimSpace(os.Getenv("REDGUARD_OLLAMA_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model := strings.TrimSpace(alias)
	if model == "" {
		model = strings.TrimSpace(os.Getenv("REDGUARD_OLLAMA_MODEL"))
	}
	if model == "" {
		model = "llama3.1"
	}
	return &OllamaAnalyzer{
		alias:   alias,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 90 * time.Second},
	}
}

func (o *OllamaAnalyzer) Analyze(ctx context.Context, req AnalyzeRequest) ([]byte, ProviderInfo, error) {
	info := ProviderInfo{Name: "ollama", Model: o.model, Key: o.alias}
	payload, _ := json.Marshal(map[string]any{
		"model":  o.model,
		"format": "json",
		"stream": false,
		"messages": []map[string]string{
			{"role": "system", "content": analysisSystemPrompt},
			{"role": "user", "content": analysisUserPrompt(req)},
		},
	})
	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/chat", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, info, fmt.Errorf("ollama analyze request failed: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, info, fmt.Errorf("ollama analyze error %d: %s", resp.StatusCode, string(body))
	}
	var parsed struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, info, fmt.Errorf("decode ollama response: %w", err)
	}
	if strings.TrimSpace(parsed.Message.Content) == "" {
		return nil, info, fmt.Errorf("ollama returned empty content")
	}
	return []byte(parsed.Message.Content), info, nil
}
