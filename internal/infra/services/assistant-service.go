package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/apperrors"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/provider"
)

// AssistantService orchestrates one medical-assistant turn: translate the
// input to English when needed, gate it on the topic filter, submit the
// built prompt to the remote workflow, and translate the answer back to the
// caller's language. Providers are injected once at startup.
type AssistantService struct {
	Logger     *logger.Logger
	Workflow   provider.IWorkflowProvider
	Translator provider.ITranslationProvider
}

func NewAssistantService(logger *logger.Logger, workflow provider.IWorkflowProvider, translator provider.ITranslationProvider) *AssistantService {
	return &AssistantService{Logger: logger, Workflow: workflow, Translator: translator}
}

const (
	stageWorkflow = "Workflow"
	stageAnalysis = "Analysis"
	stageDiet     = "Diet recommendations"
)

// GetQAResponse answers a free-text medical question.
func (as *AssistantService) GetQAResponse(ctx context.Context, question, lang string) (string, error) {
	return as.runTurn(ctx, question, lang, stageWorkflow, QARefusal, BuildQAPrompt)
}

// AnalyzeSymptoms wraps the symptom description in the fixed analysis
// template before submitting it.
func (as *AssistantService) AnalyzeSymptoms(ctx context.Context, symptoms, lang string) (string, error) {
	return as.runTurn(ctx, symptoms, lang, stageAnalysis, SymptomRefusal, BuildSymptomPrompt)
}

// GetDietRecommendations asks for dietary guidance for the given health
// conditions. This mode is not gated by the topic filter: the condition list
// is free-form and often too terse to hit the keyword set.
func (as *AssistantService) GetDietRecommendations(ctx context.Context, conditions, lang string) (string, error) {
	return as.runTurn(ctx, conditions, lang, stageDiet, "", BuildDietPrompt)
}

// runTurn is the shared English-pivoted pipeline. An empty refusal disables
// the topic filter for that mode. The turn is strictly sequential and makes
// no retries; every failure maps to a typed pipeline error.
func (as *AssistantService) runTurn(ctx context.Context, text, lang, stage, refusal string, buildPrompt func(string) string) (string, error) {
	textEn := text
	if lang != "en" {
		translated, err := as.Translator.Translate(ctx, text, lang, "en")
		if err != nil {
			as.Logger.Error(fmt.Sprintf("Failed to translate input to English: %s", err.Error()))
			return "", apperrors.NewTranslationFailure(err)
		}
		textEn = translated
	}

	if refusal != "" && !IsMedicalRelated(textEn) {
		return "", apperrors.NewOffTopic(refusal)
	}

	responseText, err := as.Workflow.PostWorkflowResults(ctx, buildPrompt(textEn))
	if err != nil {
		var statusErr *provider.WorkflowStatusError
		if errors.As(err, &statusErr) {
			return "", apperrors.NewWorkflowFailure(stage, statusErr.Description)
		}
		as.Logger.Error(fmt.Sprintf("Workflow call failed: %s", err.Error()))
		return "", apperrors.NewWorkflowMalformed(err.Error())
	}

	if lang != "en" {
		translated, err := as.Translator.Translate(ctx, responseText, "en", lang)
		if err != nil {
			as.Logger.Error(fmt.Sprintf("Failed to translate response to %s: %s", lang, err.Error()))
			return "", apperrors.NewTranslationFailure(err)
		}
		responseText = translated
	}

	return responseText, nil
}
