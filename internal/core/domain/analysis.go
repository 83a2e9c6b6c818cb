package domain

// AnalysisSource says where an analysis text came from.
type AnalysisSource string

const (
	// AnalysisStored means the record already carried a narrative; nothing was generated.
	AnalysisStored AnalysisSource = "stored"
	// AnalysisGenerated means the text came from the generation service and is now attached.
	AnalysisGenerated AnalysisSource = "generated"
	// AnalysisFallback means generation failed and a fixed message was returned instead. Never persisted.
	AnalysisFallback AnalysisSource = "fallback"
)

// Fallback texts shown in place of a narrative. They are never attached to a record.
const (
	FallbackMissingCredentials = "Configuração de API Key necessária para análise IA."
	FallbackEmptyResponse      = "Não foi possível gerar análise."
	FallbackServiceError       = "Erro ao conectar com o serviço de inteligência."
)

// AnalysisOutcome is the result of asking for a record's narrative.
type AnalysisOutcome struct {
	ClosingID string         `json:"closingID"`
	Text      string         `json:"text"`
	Source    AnalysisSource `json:"source"`
}
