package contract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectCopiesTheFiveFields(t *testing.T) {
	rec, err := Normalize(decodePayload(t, validPayload), testIdentity())
	require.NoError(t, err)

	item := Project(rec)
	require.Equal(t, rec.ContractID, item.ContractID)
	require.Equal(t, rec.FileName, item.FileName)
	require.Equal(t, rec.UploadedAt, item.UploadedAt)
	require.Equal(t, rec.Summary.OverallRisk, item.OverallRisk)
	require.Equal(t, rec.Summary.RiskScore, item.RiskScore)
}
