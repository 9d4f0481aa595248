package contract

import (
	"strings"
	"testing"
)

func hasViolation(errs Violations, path string) bool {
	for _, fe := range errs {
		if fe.Path == path {
			return true
		}
	}
	return false
}

func validSummaryMap(score int) map[string]any {
	return map[string]any{
		"overallRisk":    "high",
		"riskScore":      score,
		"criticalIssues": 1,
		"mediumIssues":   2,
		"lowIssues":      1,
		"recommendation": "revise",
	}
}

func TestCoerceSummaryRiskScoreBounds(t *testing.T) {
	for score, ok := range map[int]bool{-1: false, 0: true, 100: true, 101: false} {
		_, errs := CoerceSummary("summary", validSummaryMap(score))
		if ok && len(errs) != 0 {
			t.Fatalf("riskScore %d: unexpected violations %v", score, errs)
		}
		if !ok && !hasViolation(errs, "summary.riskScore") {
			t.Fatalf("riskScore %d: expected a summary.riskScore violation, got %v", score, errs)
		}
	}
}

func TestCoerceSummaryCollectsAllViolations(t *testing.T) {
	_, errs := CoerceSummary("summary", map[string]any{})
	if len(errs) != 6 {
		t.Fatalf("expected 6 violations for an empty summary, got %d: %v", len(errs), errs)
	}
	for _, key := range []string{"overallRisk", "riskScore", "criticalIssues", "mediumIssues", "lowIssues", "recommendation"} {
		if !hasViolation(errs, "summary."+key) {
			t.Fatalf("missing violation for summary.%s in %v", key, errs)
		}
	}
}

func TestCoerceSummaryNegativeIssueCounts(t *testing.T) {
	m := validSummaryMap(50)
	m["criticalIssues"] = -2
	_, errs := CoerceSummary("summary", m)
	if !hasViolation(errs, "summary.criticalIssues") {
		t.Fatalf("expected negative-count violation, got %v", errs)
	}
}

func TestCoerceSummaryRejectsFractionalScore(t *testing.T) {
	m := validSummaryMap(50)
	m["riskScore"] = 49.5
	_, errs := CoerceSummary("summary", m)
	if !hasViolation(errs, "summary.riskScore") {
		t.Fatalf("expected integer violation for fractional score, got %v", errs)
	}
}

func TestCoerceSummaryEnum(t *testing.T) {
	m := validSummaryMap(50)
	m["overallRisk"] = "severe"
	_, errs := CoerceSummary("summary", m)
	if !hasViolation(errs, "summary.overallRisk") {
		t.Fatalf("expected enum violation, got %v", errs)
	}
}

func TestCoerceTopRiskOptionalNulls(t *testing.T) {
	risk, errs := CoerceTopRisk("topRisks[0]", map[string]any{
		"id":          1,
		"level":       "medium",
		"category":    "Liability",
		"title":       "t",
		"description": "d",
		"section":     nil,
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected violations: %v", errs)
	}
	if risk.Section != nil || risk.Impact != nil || risk.Recommendation != nil {
		t.Fatalf("expected nil optionals, got %+v", risk)
	}
	if risk.Tags == nil || len(risk.Tags) != 0 {
		t.Fatalf("expected empty tags default, got %#v", risk.Tags)
	}
}

func TestCoerceSectionNestedIssuePaths(t *testing.T) {
	_, errs := CoerceSection("document.sections[0]", map[string]any{
		"id":        "s1",
		"text":      "body",
		"riskLevel": "low",
		"issues": []any{
			map[string]any{"id": "iss1", "type": "liability", "snippet": "x", "explanation": "y"},
		},
	})
	if !hasViolation(errs, "document.sections[0].issues[0].severity") {
		t.Fatalf("expected nested severity violation, got %v", errs)
	}
}

func TestCoerceImprovementStatusDefaultsToSuggested(t *testing.T) {
	imp, errs := CoerceImprovement("improvements[0]", map[string]any{
		"id":        1,
		"category":  "Liability",
		"level":     "low",
		"original":  "o",
		"improved":  "i",
		"rationale": "r",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected violations: %v", errs)
	}
	if string(imp.Status) != "suggested" {
		t.Fatalf("expected default status suggested, got %q", imp.Status)
	}
}

func TestCoerceImprovementRejectsUnknownStatus(t *testing.T) {
	m := map[string]any{
		"id": 1, "category": "c", "level": "low",
		"original": "o", "improved": "i", "rationale": "r",
		"status": "maybe",
	}
	_, errs := CoerceImprovement("improvements[0]", m)
	if !hasViolation(errs, "improvements[0].status") {
		t.Fatalf("expected status enum violation, got %v", errs)
	}
}

func TestCoerceChangeTypeEnum(t *testing.T) {
	m := map[string]any{
		"id": 1, "type": "tweaked", "section": "s",
		"impact": "low", "description": "d", "status": "recommended",
	}
	_, errs := CoerceChange("changes[0]", m)
	if !hasViolation(errs, "changes[0].type") {
		t.Fatalf("expected type enum violation, got %v", errs)
	}
}

func TestCoerceReportRequiresAllParts(t *testing.T) {
	_, errs := CoerceReport("report", map[string]any{})
	for _, key := range []string{"documentInfo", "executiveSummary", "issues", "mitigationPlan", "signingRecommendation"} {
		if !hasViolation(errs, "report."+key) {
			t.Fatalf("missing violation for report.%s in %v", key, errs)
		}
	}
}

func TestViolationsErrorJoinsAllPaths(t *testing.T) {
	_, errs := CoerceSummary("summary", map[string]any{})
	msg := errs.Error()
	if !strings.Contains(msg, "summary.riskScore") || !strings.Contains(msg, "summary.recommendation") {
		t.Fatalf("joined message should name every path: %q", msg)
	}
}

func TestValidFeedbackType(t *testing.T) {
	for v, want := range map[string]bool{
		"false_positive": true,
		"helpful":        true,
		"not_helpful":    true,
		"spam":           false,
		"":               false,
	} {
		if got := ValidFeedbackType(v); got != want {
			t.Fatalf("ValidFeedbackType(%q) = %v, want %v", v, got, want)
		}
	}
}
