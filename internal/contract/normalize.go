package contract

import (
	"strings"

	"redguard/internal/models"
)

// Identity carries the fields minted by this service, never by the provider.
type Identity struct {
	ContractID string
	FileName   string
	UploadedAt string
}

// Normalize coerces an untrusted analysis payload into the canonical record.
// summary and report are hard requirements. The optional collections default
// to empty, but a single malformed element rejects the whole payload: there
// is no partial acceptance. The document tree is provider-defined and is
// admitted as-is once it proves to be a mapping.
//
// On failure the returned error is the full Violations list collected in one
// pass, so the record either exists completely or not at all.
func Normalize(raw map[string]any, id Identity) (models.ContractAnalysis, error) {
	var errs Violations

	rec := models.ContractAnalysis{
		ContractID: id.ContractID,
		FileName:   id.FileName,
		UploadedAt: id.UploadedAt,
		Document:   map[string]any{},
	}

	if v, ok := raw["summary"]; ok && v != nil {
		var serrs Violations
		rec.Summary, serrs = CoerceSummary("summary", v)
		errs = append(errs, serrs...)
	} else {
		errs.addf("summary", "required field is missing")
	}

	if v, ok := raw["report"]; ok && v != nil {
		var rerrs Violations
		rec.Report, rerrs = CoerceReport("report", v)
		errs = append(errs, rerrs...)
	} else {
		errs.addf("report", "required field is missing")
	}

	rec.Categories = coerceList(raw, "", "categories", &errs, CoerceCategoryScore)
	rec.TopRisks = coerceList(raw, "", "topRisks", &errs, CoerceTopRisk)
	rec.Improvements = coerceList(raw, "", "improvements", &errs, CoerceImprovement)
	rec.Changes = coerceList(raw, "", "changes", &errs, CoerceChange)

	if v, ok := raw["document"]; ok && v != nil {
		doc, isMap := asMap(v)
		if !isMap {
			errs.addf("document", "expected object, got %T", v)
		} else {
			rec.Document = doc
		}
	}

	// The strict summary enum and the report's display string are distinct by
	// design, but a provider that lets them diverge is drifting; flag it
	// instead of rewriting either side.
	if rec.Summary.OverallRisk != "" && rec.Report.ExecutiveSummary.OverallRisk != "" &&
		!strings.EqualFold(string(rec.Summary.OverallRisk), rec.Report.ExecutiveSummary.OverallRisk) {
		errs.addf("report.executiveSummary.overallRisk",
			"%q disagrees with summary.overallRisk %q",
			rec.Report.ExecutiveSummary.OverallRisk, rec.Summary.OverallRisk)
	}

	if len(errs) > 0 {
		return models.ContractAnalysis{}, errs
	}
	return rec, nil
}
