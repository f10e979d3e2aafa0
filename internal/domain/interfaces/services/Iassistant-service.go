package Iservices

import "context"

// IAssistantService runs one medical-assistant turn per call. The language
// code is both the source of the input and the target of the response; all
// remote work pivots through English. Errors are *apperrors.PipelineError.
type IAssistantService interface {
	GetQAResponse(ctx context.Context, question, lang string) (string, error)
	AnalyzeSymptoms(ctx context.Context, symptoms, lang string) (string, error)
	GetDietRecommendations(ctx context.Context, conditions, lang string) (string, error)
}
