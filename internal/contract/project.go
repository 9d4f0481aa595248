package contract

import "redguard/internal/models"

// Project derives the list view of a canonical record. Every field is a
// value copy, so callers can never reach the stored record's nested
// structures through the result.
func Project(rec models.ContractAnalysis) models.ContractListItem {
	return models.ContractListItem{
		ContractID:  rec.ContractID,
		FileName:    rec.FileName,
		UploadedAt:  rec.UploadedAt,
		OverallRisk: rec.Summary.OverallRisk,
		RiskScore:   rec.Summary.RiskScore,
	}
}
