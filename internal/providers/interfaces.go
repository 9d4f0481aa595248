package providers

import "context"

type ProviderInfo struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Key   string `json:"key"`
}

type AnalyzeRequest struct {
	Operation string `json:"operation"`
	FileName  string `json:"fileName"`
	Text      string `json:"text"`
}

// Analyzer produces the raw risk-analysis payload for a contract's full
// text. Implementations hand the payload bytes back untouched: shaping and
// validating the result is the normalizer's job, never the provider's.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) ([]byte, ProviderInfo, error)
}
