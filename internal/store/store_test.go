package store

import (
	"strings"
	"testing"

	"redguard/internal/models"

	"github.com/stretchr/testify/require"
)

func record(id, fileName string) models.ContractAnalysis {
	return models.ContractAnalysis{
		ContractID: id,
		FileName:   fileName,
		UploadedAt: "2026-08-23T10:00:00Z",
		Summary: models.Summary{
			OverallRisk:    models.RiskLow,
			RiskScore:      30,
			Recommendation: "Review recommended before signing.",
		},
		Categories:   []models.CategoryScore{},
		TopRisks:     []models.TopRisk{},
		Document:     map[string]any{},
		Improvements: []models.Improvement{},
		Changes:      []models.Change{},
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := New()
	s.Insert(record("A", "a.txt"))
	s.Insert(record("B", "b.txt"))
	s.Insert(record("C", "c.txt"))

	items := s.List()
	require.Len(t, items, 3)
	require.Equal(t, "A", items[0].ContractID)
	require.Equal(t, "B", items[1].ContractID)
	require.Equal(t, "C", items[2].ContractID)
}

func TestInsertOverwriteKeepsPosition(t *testing.T) {
	s := New()
	s.Insert(record("A", "a.txt"))
	s.Insert(record("B", "b.txt"))
	s.Insert(record("A", "a2.txt"))

	items := s.List()
	require.Len(t, items, 2)
	require.Equal(t, "A", items[0].ContractID)
	require.Equal(t, "a2.txt", items[0].FileName)
	require.Equal(t, "B", items[1].ContractID)
}

func TestGetNotFound(t *testing.T) {
	s := New()
	_, ok := s.Get("missing")
	require.False(t, ok)
}

func TestFeedbackUnknownContract(t *testing.T) {
	s := New()
	err := s.AppendFeedback("missing", models.Feedback{IssueID: "iss1", Type: models.FeedbackHelpful})
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, s.FeedbackFor("missing"))
}

func TestFeedbackAccumulates(t *testing.T) {
	s := New()
	s.Insert(record("A", "a.txt"))

	comment := "flagged the wrong clause"
	require.NoError(t, s.AppendFeedback("A", models.Feedback{IssueID: "iss1", Type: models.FeedbackFalsePositive, Comment: &comment}))
	require.NoError(t, s.AppendFeedback("A", models.Feedback{IssueID: "iss1", Type: models.FeedbackHelpful}))

	fbs := s.FeedbackFor("A")
	require.Len(t, fbs, 2)
	require.Equal(t, models.FeedbackFalsePositive, fbs[0].Type)
	require.Equal(t, models.FeedbackHelpful, fbs[1].Type)
}

func TestLargeSectionTextSurvivesIntact(t *testing.T) {
	big := strings.Repeat("liability clause ", 2941) + strings.Repeat("x", 50000-2941*17)
	require.Len(t, big, 50000)

	rec := record("A", "a.txt")
	rec.Document = map[string]any{
		"sections": []any{
			map[string]any{"id": "s1", "text": big, "riskLevel": "low"},
		},
	}
	s := New()
	s.Insert(rec)

	got, ok := s.Get("A")
	require.True(t, ok)
	sections := got.Document["sections"].([]any)
	text := sections[0].(map[string]any)["text"].(string)
	require.Equal(t, big, text)
}
