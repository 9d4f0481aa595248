package providers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"redguard/internal/models"
)

// MockAnalyzer is the placeholder analysis collaborator used until a real
// language-model backend is configured: a deterministic generator keyed on a
// few contract phrases. Its payload exercises every part of the analysis
// contract, including the full untruncated document text.
type MockAnalyzer struct{}

func NewMockAnalyzer() *MockAnalyzer { return &MockAnalyzer{} }

func (m *MockAnalyzer) Analyze(ctx context.Context, req AnalyzeRequest) ([]byte, ProviderInfo, error) {
	_ = ctx
	info := ProviderInfo{Name: "mock", Model: "mock-analyzer-v1", Key: "mock"}
	payload, err := json.Marshal(dummyAnalysis(req.Text))
	if err != nil {
		return nil, info, err
	}
	return payload, info, nil
}

func dummyAnalysis(text string) map[string]any {
	t := strings.ToLower(text)
	level := models.RiskLow
	score := 30
	switch {
	case strings.Contains(t, "unlimited liability"):
		level = models.RiskHigh
		score = 80
	case strings.Contains(t, "as is"):
		level = models.RiskMedium
		score = 65
	}

	critical := 0
	if level == models.RiskHigh {
		critical = 1
	}
	medium := 0
	if level != models.RiskLow {
		medium = 2
	}
	recommendation := "Review recommended before signing."
	if level == models.RiskHigh {
		recommendation = "Significant revision required before signing."
	}
	impact := "Moderate exposure"
	if level == models.RiskHigh {
		impact = "Critical financial exposure"
	}
	signing := "Proceed after addressing medium-risk items."
	if level == models.RiskHigh {
		signing = "Do not sign until high severity issues are resolved."
	}
	issueSeverity := "Medium"
	if level == models.RiskHigh {
		issueSeverity = "Critical"
	}

	riskTags := []string{}
	sectionIssues := []any{}
	if level != models.RiskLow {
		riskTags = []string{"liability"}
		snippet := text
		if r := []rune(snippet); len(r) > 200 {
			snippet = string(r[:200])
		}
		sectionIssues = append(sectionIssues, map[string]any{
			"id":           "iss1",
			"type":         "liability",
			"severity":     string(level),
			"snippet":      snippet,
			"explanation":  "Potentially unfavorable liability language.",
			"suggestedFix": "Cap liability and clarify exclusions.",
		})
	}

	return map[string]any{
		"summary": map[string]any{
			"overallRisk":    string(level),
			"riskScore":      score,
			"criticalIssues": critical,
			"mediumIssues":   medium,
			"lowIssues":      1,
			"recommendation": recommendation,
		},
		"categories": []any{
			map[string]any{"name": "Liability", "value": 8},
			map[string]any{"name": "Payment Terms", "value": 5},
			map[string]any{"name": "Termination", "value": 3},
			map[string]any{"name": "IP Rights", "value": 6},
		},
		"topRisks": []any{
			map[string]any{
				"id":             1,
				"level":          string(level),
				"category":       "Liability",
				"title":          "Potentially unlimited liability",
				"description":    "Contract may expose the company to broad liability.",
				"section":        "Section 8.2",
				"impact":         impact,
				"recommendation": "Introduce liability cap aligned with contract value.",
				"tags":           []string{"liability", "indemnity"},
			},
		},
		"document": map[string]any{
			"title": "Uploaded Contract",
			"sections": []any{
				map[string]any{
					"id":      "s1",
					"heading": "Full text",
					// Full text, never truncated.
					"text":      text,
					"riskLevel": string(level),
					"riskTags":  riskTags,
					"issues":    sectionIssues,
				},
			},
		},
		"improvements": []any{
			map[string]any{
				"id":        1,
				"category":  "Liability",
				"level":     string(level),
				"original":  "Provider shall be liable for any and all damages...",
				"improved":  "Provider's total liability under this agreement shall be limited to...",
				"rationale": "Introduces standard commercial liability cap.",
				"status":    "suggested",
			},
		},
		"changes": []any{
			map[string]any{
				"id":          1,
				"type":        "modified",
				"section":     "Section 4.1 - Liability",
				"original":    "Provider shall be liable for any and all damages...",
				"revised":     "Provider's total liability under this agreement shall be limited to...",
				"impact":      string(level),
				"description": "Added liability cap to protect against unlimited exposure.",
				"status":      "recommended",
			},
		},
		"report": map[string]any{
			"documentInfo": map[string]any{
				"name":       "Uploaded Contract",
				"parties":    []string{},
				"reviewDate": time.Now().UTC().Format("2006-01-02"),
				"analyst":    "RedGuard AI",
			},
			"executiveSummary": map[string]any{
				"overallRisk":    capitalize(string(level)),
				"riskScore":      score,
				"criticalIssues": critical,
				"mediumIssues":   medium,
				"lowIssues":      1,
				"recommendation": recommendation,
			},
			"issues": []any{
				map[string]any{
					"id":       1,
					"category": "Liability",
					"severity": issueSeverity,
					"title":    "Liability exposure",
					"status":   "Unresolved",
					"owner":    "Legal",
				},
			},
			"mitigationPlan": []string{
				"Introduce liability cap aligned with contract value.",
				"Clarify IP ownership of background vs foreground IP.",
			},
			"signingRecommendation": signing,
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
