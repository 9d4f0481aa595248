package contract

import (
	"fmt"
	"strings"

	"redguard/internal/models"
)

// FieldError pins a single violation to the payload path that produced it.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Violations is the ordered list of everything wrong with a payload. Coercers
// collect the full list in one pass so provider drift is diagnosable from a
// single error instead of one field at a time.
type Violations []FieldError

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (v *Violations) addf(path, format string, args ...any) {
	*v = append(*v, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// intValue accepts the integer encodings a decoded JSON payload or a
// hand-built map can carry. Fractional values are not integers.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		i := int(n)
		if float64(i) == n {
			return i, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func requireString(m map[string]any, path, key string, errs *Violations) string {
	v, ok := m[key]
	if !ok || v == nil {
		errs.addf(childPath(path, key), "required field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		errs.addf(childPath(path, key), "expected string, got %T", v)
		return ""
	}
	return s
}

func requireInt(m map[string]any, path, key string, errs *Violations) int {
	v, ok := m[key]
	if !ok || v == nil {
		errs.addf(childPath(path, key), "required field is missing")
		return 0
	}
	n, ok := intValue(v)
	if !ok {
		errs.addf(childPath(path, key), "expected integer, got %v", v)
		return 0
	}
	return n
}

// optionalString treats absent and null alike: no value, no violation.
func optionalString(m map[string]any, path, key string, errs *Violations) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		errs.addf(childPath(path, key), "expected string, got %T", v)
		return nil
	}
	return &s
}

func requireRiskLevel(m map[string]any, path, key string, errs *Violations) models.RiskLevel {
	v, ok := m[key]
	if !ok || v == nil {
		errs.addf(childPath(path, key), "required field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		errs.addf(childPath(path, key), "expected string, got %T", v)
		return ""
	}
	switch models.RiskLevel(s) {
	case models.RiskLow, models.RiskMedium, models.RiskHigh:
		return models.RiskLevel(s)
	}
	errs.addf(childPath(path, key), "%q is not one of low, medium, high", s)
	return ""
}

// stringList defaults to an empty slice when the key is absent or null.
func stringList(m map[string]any, path, key string, errs *Violations) []string {
	out := []string{}
	v, ok := m[key]
	if !ok || v == nil {
		return out
	}
	list, ok := v.([]any)
	if !ok {
		errs.addf(childPath(path, key), "expected list of strings, got %T", v)
		return out
	}
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			errs.addf(fmt.Sprintf("%s[%d]", childPath(path, key), i), "expected string, got %T", item)
			continue
		}
		out = append(out, s)
	}
	return out
}

// coerceList validates every element even after the first failure, so a
// malformed list reports all of its bad entries at once.
func coerceList[T any](m map[string]any, path, key string, errs *Violations, coerce func(string, any) (T, Violations)) []T {
	out := []T{}
	raw, ok := m[key]
	if !ok || raw == nil {
		return out
	}
	list, ok := raw.([]any)
	if !ok {
		errs.addf(childPath(path, key), "expected list, got %T", raw)
		return out
	}
	for i, item := range list {
		elem, elemErrs := coerce(fmt.Sprintf("%s[%d]", childPath(path, key), i), item)
		*errs = append(*errs, elemErrs...)
		out = append(out, elem)
	}
	return out
}

func CoerceSummary(path string, v any) (models.Summary, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.Summary{}, errs
	}
	s := models.Summary{
		OverallRisk:    requireRiskLevel(m, path, "overallRisk", &errs),
		RiskScore:      requireInt(m, path, "riskScore", &errs),
		CriticalIssues: requireInt(m, path, "criticalIssues", &errs),
		MediumIssues:   requireInt(m, path, "mediumIssues", &errs),
		LowIssues:      requireInt(m, path, "lowIssues", &errs),
		Recommendation: requireString(m, path, "recommendation", &errs),
	}
	if raw, ok := m["riskScore"]; ok {
		if n, isInt := intValue(raw); isInt && (n < 0 || n > 100) {
			errs.addf(childPath(path, "riskScore"), "%d is outside [0,100]", n)
		}
	}
	for _, k := range []string{"criticalIssues", "mediumIssues", "lowIssues"} {
		if raw, ok := m[k]; ok {
			if n, isInt := intValue(raw); isInt && n < 0 {
				errs.addf(childPath(path, k), "must not be negative")
			}
		}
	}
	return s, errs
}

func CoerceCategoryScore(path string, v any) (models.CategoryScore, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.CategoryScore{}, errs
	}
	return models.CategoryScore{
		Name:  requireString(m, path, "name", &errs),
		Value: requireInt(m, path, "value", &errs),
	}, errs
}

func CoerceTopRisk(path string, v any) (models.TopRisk, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.TopRisk{}, errs
	}
	return models.TopRisk{
		ID:             requireInt(m, path, "id", &errs),
		Level:          requireRiskLevel(m, path, "level", &errs),
		Category:       requireString(m, path, "category", &errs),
		Title:          requireString(m, path, "title", &errs),
		Description:    requireString(m, path, "description", &errs),
		Section:        optionalString(m, path, "section", &errs),
		Impact:         optionalString(m, path, "impact", &errs),
		Recommendation: optionalString(m, path, "recommendation", &errs),
		Tags:           stringList(m, path, "tags", &errs),
	}, errs
}

func CoerceIssueDetail(path string, v any) (models.IssueDetail, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.IssueDetail{}, errs
	}
	return models.IssueDetail{
		ID:           requireString(m, path, "id", &errs),
		Type:         requireString(m, path, "type", &errs),
		Severity:     requireRiskLevel(m, path, "severity", &errs),
		Snippet:      requireString(m, path, "snippet", &errs),
		Explanation:  requireString(m, path, "explanation", &errs),
		SuggestedFix: optionalString(m, path, "suggestedFix", &errs),
	}, errs
}

func CoerceSection(path string, v any) (models.Section, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.Section{}, errs
	}
	return models.Section{
		ID:        requireString(m, path, "id", &errs),
		Heading:   optionalString(m, path, "heading", &errs),
		Text:      requireString(m, path, "text", &errs),
		RiskLevel: requireRiskLevel(m, path, "riskLevel", &errs),
		RiskTags:  stringList(m, path, "riskTags", &errs),
		Issues:    coerceList(m, path, "issues", &errs, CoerceIssueDetail),
	}, errs
}

func CoerceDocumentInfo(path string, v any) (models.DocumentInfo, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.DocumentInfo{}, errs
	}
	return models.DocumentInfo{
		Name:       requireString(m, path, "name", &errs),
		Date:       optionalString(m, path, "date", &errs),
		Parties:    stringList(m, path, "parties", &errs),
		ReviewDate: optionalString(m, path, "reviewDate", &errs),
		Analyst:    optionalString(m, path, "analyst", &errs),
	}, errs
}

// CoerceExecutiveSummary keeps the report-side risk as a display string; the
// cross-check against the strict summary enum happens in Normalize.
func CoerceExecutiveSummary(path string, v any) (models.ExecutiveSummary, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.ExecutiveSummary{}, errs
	}
	return models.ExecutiveSummary{
		OverallRisk:    requireString(m, path, "overallRisk", &errs),
		RiskScore:      requireInt(m, path, "riskScore", &errs),
		CriticalIssues: requireInt(m, path, "criticalIssues", &errs),
		MediumIssues:   requireInt(m, path, "mediumIssues", &errs),
		LowIssues:      requireInt(m, path, "lowIssues", &errs),
		Recommendation: requireString(m, path, "recommendation", &errs),
	}, errs
}

func CoerceReportIssue(path string, v any) (models.ReportIssue, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.ReportIssue{}, errs
	}
	return models.ReportIssue{
		ID:       requireInt(m, path, "id", &errs),
		Category: requireString(m, path, "category", &errs),
		Severity: requireString(m, path, "severity", &errs),
		Title:    requireString(m, path, "title", &errs),
		Status:   requireString(m, path, "status", &errs),
		Owner:    optionalString(m, path, "owner", &errs),
		DueDate:  optionalString(m, path, "dueDate", &errs),
	}, errs
}

func CoerceReport(path string, v any) (models.Report, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.Report{}, errs
	}
	rep := models.Report{SigningRecommendation: requireString(m, path, "signingRecommendation", &errs)}

	if v, ok := m["documentInfo"]; ok && v != nil {
		var derrs Violations
		rep.DocumentInfo, derrs = CoerceDocumentInfo(childPath(path, "documentInfo"), v)
		errs = append(errs, derrs...)
	} else {
		errs.addf(childPath(path, "documentInfo"), "required field is missing")
	}

	if v, ok := m["executiveSummary"]; ok && v != nil {
		var serrs Violations
		rep.ExecutiveSummary, serrs = CoerceExecutiveSummary(childPath(path, "executiveSummary"), v)
		errs = append(errs, serrs...)
	} else {
		errs.addf(childPath(path, "executiveSummary"), "required field is missing")
	}

	if _, ok := m["issues"]; !ok {
		errs.addf(childPath(path, "issues"), "required field is missing")
	}
	rep.Issues = coerceList(m, path, "issues", &errs, CoerceReportIssue)

	if raw, ok := m["mitigationPlan"]; !ok || raw == nil {
		errs.addf(childPath(path, "mitigationPlan"), "required field is missing")
		rep.MitigationPlan = []string{}
	} else {
		rep.MitigationPlan = stringList(m, path, "mitigationPlan", &errs)
	}

	return rep, errs
}

func CoerceImprovement(path string, v any) (models.Improvement, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.Improvement{}, errs
	}
	imp := models.Improvement{
		ID:        requireInt(m, path, "id", &errs),
		Category:  requireString(m, path, "category", &errs),
		Level:     requireRiskLevel(m, path, "level", &errs),
		Original:  requireString(m, path, "original", &errs),
		Improved:  requireString(m, path, "improved", &errs),
		Rationale: requireString(m, path, "rationale", &errs),
		Status:    models.ImprovementSuggested,
	}
	if raw, ok := m["status"]; ok && raw != nil {
		s, isStr := raw.(string)
		if !isStr {
			errs.addf(childPath(path, "status"), "expected string, got %T", raw)
		} else {
			switch models.ImprovementStatus(s) {
			case models.ImprovementSuggested, models.ImprovementAccepted, models.ImprovementRejected:
				imp.Status = models.ImprovementStatus(s)
			default:
				errs.addf(childPath(path, "status"), "%q is not one of suggested, accepted, rejected", s)
			}
		}
	}
	return imp, errs
}

func CoerceChange(path string, v any) (models.Change, Violations) {
	var errs Violations
	m, ok := asMap(v)
	if !ok {
		errs.addf(path, "expected object, got %T", v)
		return models.Change{}, errs
	}
	ch := models.Change{
		ID:          requireInt(m, path, "id", &errs),
		Section:     requireString(m, path, "section", &errs),
		Original:    optionalString(m, path, "original", &errs),
		Revised:     optionalString(m, path, "revised", &errs),
		Impact:      requireRiskLevel(m, path, "impact", &errs),
		Description: requireString(m, path, "description", &errs),
		Status:      requireString(m, path, "status", &errs),
	}
	if s := requireString(m, path, "type", &errs); s != "" {
		switch models.ChangeType(s) {
		case models.ChangeAdded, models.ChangeRemoved, models.ChangeModified:
			ch.Type = models.ChangeType(s)
		default:
			errs.addf(childPath(path, "type"), "%q is not one of added, removed, modified", s)
		}
	}
	return ch, errs
}

// ValidFeedbackType gates the feedback enum at the request boundary.
func ValidFeedbackType(s string) bool {
	switch models.FeedbackType(s) {
	case models.FeedbackFalsePositive, models.FeedbackHelpful, models.FeedbackNotHelpful:
		return true
	}
	return false
}
