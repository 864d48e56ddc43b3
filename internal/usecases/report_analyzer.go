package usecases

import (
	"strings"

	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
)

// suspiciousPhrases is the fixed, ordered phrase list the analyzer matches
// against. Order matters: matched phrases are reported in list order.
var suspiciousPhrases = []string{
	"urgent",
	"click now",
	"verify account",
	"suspended",
	"prize",
	"winner",
	"lottery",
	"limited time",
	"act fast",
	"congratulations",
}

// Recommendation strings are fixed per risk tier and safe to surface verbatim.
const (
	RecommendationHigh   = "🚨 HIGH RISK - This appears to be a scam. Do not provide any personal information."
	RecommendationMedium = "⚠️ MEDIUM RISK - Exercise caution. Verify through official channels."
	RecommendationLow    = "✅ LOW RISK - No obvious red flags detected."
)

// ReportAnalyzer scores fraud report descriptions. It is a pure function of
// the input text: identical descriptions always yield identical results, so
// a stored report's analysis never has to be recomputed.
type ReportAnalyzer struct{}

// NewReportAnalyzer creates a new report analyzer
func NewReportAnalyzer() *ReportAnalyzer {
	return &ReportAnalyzer{}
}

// Analyze scores a description and returns the risk assessment. It fails
// only when the description is empty or whitespace.
func (a *ReportAnalyzer) Analyze(description string) (*entities.ReportAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	lowered := strings.ToLower(description)
	var matched []string
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(lowered, phrase) {
			matched = append(matched, phrase)
		}
	}

	switch {
	case len(matched) >= 2:
		reasons := append([]string{
			"Multiple suspicious keywords detected",
			"Pattern matches known scam techniques",
		}, matched...)
		return &entities.ReportAnalysis{
			RiskLevel:       entities.RiskLevelHigh,
			Recommendation:  RecommendationHigh,
			ConfidenceScore: 85,
			PointsAwarded:   30,
			Reasons:         reasons,
		}, nil
	case len(matched) == 1:
		return &entities.ReportAnalysis{
			RiskLevel:       entities.RiskLevelMedium,
			Recommendation:  RecommendationMedium,
			ConfidenceScore: 60,
			PointsAwarded:   20,
			Reasons:         []string{"Some suspicious language detected", matched[0]},
		}, nil
	default:
		return &entities.ReportAnalysis{
			RiskLevel:       entities.RiskLevelLow,
			Recommendation:  RecommendationLow,
			ConfidenceScore: 30,
			PointsAwarded:   10,
			Reasons:         []string{"No obvious red flags identified", "Content appears legitimate"},
		}, nil
	}
}
