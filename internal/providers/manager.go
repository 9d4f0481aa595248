package providers

import (
	"fmt"
	"strings"
)

type NamedAnalyzer struct {
	Ref      ProviderRef
	Provider Analyzer
}

// Manager owns the configured analysis providers. Real providers rank ahead
// of the mock, but each request uses exactly one analyzer: upstream failures
// surface to the caller rather than triggering failover, which would be an
// automatic retry.
type Manager struct {
	analyzers []NamedAnalyzer
}

func NewManager(providerList string) (*Manager, error) {
	refs := ParseProviderList(providerList)
	m := &Manager{}
	for _, ref := range refs {
		p, err := buildAnalyzer(ref)
		if err != nil {
			return nil, err
		}
		m.analyzers = append(m.analyzers, NamedAnalyzer{Ref: ref, Provider: p})
	}
	if len(m.analyzers) == 0 {
		m.analyzers = []NamedAnalyzer{{Ref: ProviderRef{Raw: "mock", Name: "mock"}, Provider: NewMockAnalyzer()}}
	}
	return m, nil
}

// NewManagerWith wraps pre-built analyzers; embedders and tests use it to
// inject their own.
func NewManagerWith(analyzers ...NamedAnalyzer) *Manager {
	m := &Manager{analyzers: analyzers}
	if len(m.analyzers) == 0 {
		m.analyzers = []NamedAnalyzer{{Ref: ProviderRef{Raw: "mock", Name: "mock"}, Provider: NewMockAnalyzer()}}
	}
	return m
}

// Primary returns the analyzer requests go to: the first configured non-mock
// provider, else the mock.
func (m *Manager) Primary() (Analyzer, ProviderRef) {
	idx := 0
	for i := range m.analyzers {
		if strings.ToLower(m.analyzers[i].Ref.Name) != "mock" {
			idx = i
			break
		}
	}
	return m.analyzers[idx].Provider, m.analyzers[idx].Ref
}

func (m *Manager) Count() int {
	return len(m.analyzers)
}

func buildAnalyzer(ref ProviderRef) (Analyzer, error) {
	switch strings.ToLower(ref.Name) {
	case "mock":
		return NewMockAnalyzer(), nil
	case "openai":
		return NewOpenAIAnalyzer(ref.KeyAlias), nil
	case "groq":
		return NewGroqAnalyzer(ref.KeyAlias), nil
	case "ollama":
		return NewOllamaAnalyzer(ref.KeyAlias), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", ref.Name)
	}
}
