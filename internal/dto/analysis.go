package dto

import "github.com/SscSPs/cashclose_app/internal/core/domain"

// AnalysisResponse carries a narrative and where it came from.
type AnalysisResponse struct {
	ClosingID string `json:"closingID"`
	Text      string `json:"text"`
	// Source is one of stored, generated or fallback.
	Source string `json:"source" enums:"stored,generated,fallback"`
}

// ToAnalysisResponse converts a domain outcome.
func ToAnalysisResponse(o *domain.AnalysisOutcome) AnalysisResponse {
	return AnalysisResponse{ClosingID: o.ClosingID, Text: o.Text, Source: string(o.Source)}
}
