package providers

const analysisSystemPrompt = "You are a contract risk analyst. " +
	"Respond with a single JSON object and nothing else. The object must have " +
	"these keys: summary {overallRisk: one of low|medium|high, riskScore: integer 0-100, " +
	"criticalIssues, mediumIssues, lowIssues: non-negative integers, recommendation: string}, " +
	"categories: list of {name, value:int}, " +
	"topRisks: list of {id:int, level: low|medium|high, category, title, description, section?, impact?, recommendation?, tags: [string]}, " +
	"document: {title, sections: list of {id, heading?, text, riskLevel: low|medium|high, riskTags: [string], issues: list of {id, type, severity: low|medium|high, snippet, explanation, suggestedFix?}}}, " +
	"improvements: list of {id:int, category, level: low|medium|high, original, improved, rationale, status: suggested|accepted|rejected}, " +
	"changes: list of {id:int, type: added|removed|modified, section, original?, revised?, impact: low|medium|high, description, status}, " +
	"report: {documentInfo: {name, date?, parties: [string], reviewDate?, analyst?}, " +
	"executiveSummary: {overallRisk: capitalized form of summary.overallRisk, riskScore, criticalIssues, mediumIssues, lowIssues, recommendation}, " +
	"issues: list of {id:int, category, severity, title, status, owner?, dueDate?}, " +
	"mitigationPlan: [string], signingRecommendation: string}. " +
	"report.executiveSummary.overallRisk must agree with summary.overallRisk ignoring case."

func analysisUserPrompt(req AnalyzeRequest) string {
	// The full extracted text goes to the provider; truncating it here would
	// break the no-truncation contract downstream.
	return "Analyze the legal risk of the following contract (" + req.FileName + "):\n\n" + req.Text
}
