package models

// RiskLevel is the strict severity enum used throughout the analysis
// contract. The report's executive summary carries a display string instead;
// the two stay case-insensitively consistent but are distinct types.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank orders levels by severity (low < medium < high).
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}

type ImprovementStatus string

const (
	ImprovementSuggested ImprovementStatus = "suggested"
	ImprovementAccepted  ImprovementStatus = "accepted"
	ImprovementRejected  ImprovementStatus = "rejected"
)

type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

type FeedbackType string

const (
	FeedbackFalsePositive FeedbackType = "false_positive"
	FeedbackHelpful       FeedbackType = "helpful"
	FeedbackNotHelpful    FeedbackType = "not_helpful"
)

type CategoryScore struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TopRisk struct {
	ID             int       `json:"id"`
	Level          RiskLevel `json:"level"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Section        *string   `json:"section,omitempty"`
	Impact         *string   `json:"impact,omitempty"`
	Recommendation *string   `json:"recommendation,omitempty"`
	Tags           []string  `json:"tags"`
}

type Summary struct {
	OverallRisk    RiskLevel `json:"overallRisk"`
	RiskScore      int       `json:"riskScore"`
	CriticalIssues int       `json:"criticalIssues"`
	MediumIssues   int       `json:"mediumIssues"`
	LowIssues      int       `json:"lowIssues"`
	Recommendation string    `json:"recommendation"`
}

type IssueDetail struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Severity     RiskLevel `json:"severity"`
	Snippet      string    `json:"snippet"`
	Explanation  string    `json:"explanation"`
	SuggestedFix *string   `json:"suggestedFix,omitempty"`
}

type Section struct {
	ID        string        `json:"id"`
	Heading   *string       `json:"heading,omitempty"`
	Text      string        `json:"text"`
	RiskLevel RiskLevel     `json:"riskLevel"`
	RiskTags  []string      `json:"riskTags"`
	Issues    []IssueDetail `json:"issues"`
}

type DocumentInfo struct {
	Name       string   `json:"name"`
	Date       *string  `json:"date,omitempty"`
	Parties    []string `json:"parties"`
	ReviewDate *string  `json:"reviewDate,omitempty"`
	Analyst    *string  `json:"analyst,omitempty"`
}

type ReportIssue struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Severity string  `json:"severity"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Owner    *string `json:"owner,omitempty"`
	DueDate  *string `json:"dueDate,omitempty"`
}

// ExecutiveSummary mirrors Summary but with a free-form capitalized risk
// string. Kept loose on purpose; contract.Normalize checks it stays
// consistent with Summary.OverallRisk instead of unifying the types.
type ExecutiveSummary struct {
	OverallRisk    string `json:"overallRisk"`
	RiskScore      int    `json:"riskScore"`
	CriticalIssues int    `json:"criticalIssues"`
	MediumIssues   int    `json:"mediumIssues"`
	LowIssues      int    `json:"lowIssues"`
	Recommendation string `json:"recommendation"`
}

type Report struct {
	DocumentInfo          DocumentInfo     `json:"documentInfo"`
	ExecutiveSummary      ExecutiveSummary `json:"executiveSummary"`
	Issues                []ReportIssue    `json:"issues"`
	MitigationPlan        []string         `json:"mitigationPlan"`
	SigningRecommendation string           `json:"signingRecommendation"`
}

type Improvement struct {
	ID        int               `json:"id"`
	Category  string            `json:"category"`
	Level     RiskLevel         `json:"level"`
	Original  string            `json:"original"`
	Improved  string            `json:"improved"`
	Rationale string            `json:"rationale"`
	Status    ImprovementStatus `json:"status"`
}

type Change struct {
	ID          int        `json:"id"`
	Type        ChangeType `json:"type"`
	Section     string     `json:"section"`
	Original    *string    `json:"original,omitempty"`
	Revised     *string    `json:"revised,omitempty"`
	Impact      RiskLevel  `json:"impact"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
}

// ContractAnalysis is the canonical record: created once on successful
// normalization, immutable afterwards. Document is a provider-defined
// semi-structured tree and is stored as-is beyond requiring a mapping.
type ContractAnalysis struct {
	ContractID   string          `json:"contractId"`
	FileName     string          `json:"fileName"`
	UploadedAt   string          `json:"uploadedAt"`
	Summary      Summary         `json:"summary"`
	Categories   []CategoryScore `json:"categories"`
	TopRisks     []TopRisk       `json:"topRisks"`
	Document     map[string]any  `json:"document"`
	Improvements []Improvement   `json:"improvements"`
	Changes      []Change        `json:"changes"`
	Report       Report          `json:"report"`
}

// ContractListItem is the list projection of a ContractAnalysis. It is never
// created independently; see contract.Project.
type ContractListItem struct {
	ContractID  string    `json:"contractId"`
	FileName    string    `json:"fileName"`
	UploadedAt  string    `json:"uploadedAt"`
	OverallRisk RiskLevel `json:"overallRisk"`
	RiskScore   int       `json:"riskScore"`
}

type Feedback struct {
	IssueID string       `json:"issueId"`
	Type    FeedbackType `json:"type"`
	Comment *string      `json:"comment,omitempty"`
}
