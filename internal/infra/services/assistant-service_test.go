package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/apperrors"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkflow struct {
	calls      int
	lastPrompt string
	response   string
	err        error
}

func (f *fakeWorkflow) PostWorkflowResults(ctx context.Context, textInput string) (string, error) {
	f.calls++
	f.lastPrompt = textInput
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeTranslator tags text with the requested direction so tests can see
// which legs of the English pivot actually ran.
type fakeTranslator struct {
	calls int
	err   error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("[%s->%s] %s", sourceLang, targetLang, text), nil
}

func newTestAssistant(workflow *fakeWorkflow, translator *fakeTranslator) *AssistantService {
	log := logger.NewLogger(context.Background(), "error", false)
	return NewAssistantService(log, workflow, translator)
}

func TestQAEnglishRoundTripSkipsTranslation(t *testing.T) {
	workflow := &fakeWorkflow{response: "Drink plenty of fluids and rest."}
	translator := &fakeTranslator{}
	svc := newTestAssistant(workflow, translator)

	resp, err := svc.GetQAResponse(context.Background(), "How do I treat a mild fever?", "en")

	require.NoError(t, err)
	assert.Equal(t, "Drink plenty of fluids and rest.", resp)
	assert.Equal(t, 0, translator.calls)
	assert.Equal(t, 1, workflow.calls)
	// QA prompts are raw passthrough.
	assert.Equal(t, "How do I treat a mild fever?", workflow.lastPrompt)
}

func TestQARejectsOffTopicWithoutRemoteCall(t *testing.T) {
	workflow := &fakeWorkflow{response: "should never be used"}
	translator := &fakeTranslator{}
	svc := newTestAssistant(workflow, translator)

	_, err := svc.GetQAResponse(context.Background(), "What's the weather today?", "en")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindOffTopic, apperrors.KindOf(err))
	assert.Equal(t, QARefusal, err.Error())
	assert.Equal(t, 0, workflow.calls)
}

func TestQATranslatesThroughEnglishPivot(t *testing.T) {
	workflow := &fakeWorkflow{response: "Rest and hydrate."}
	translator := &fakeTranslator{}
	svc := newTestAssistant(workflow, translator)

	resp, err := svc.GetQAResponse(context.Background(), "mujhe headache hai", "hi")

	require.NoError(t, err)
	assert.Equal(t, 2, translator.calls)
	assert.Equal(t, "[hi->en] mujhe headache hai", workflow.lastPrompt)
	assert.Equal(t, "[en->hi] Rest and hydrate.", resp)
}

func TestAnalyzeSymptomsWrapsPromptAndStage(t *testing.T) {
	workflow := &fakeWorkflow{response: "analysis"}
	translator := &fakeTranslator{}
	svc := newTestAssistant(workflow, translator)

	_, err := svc.AnalyzeSymptoms(context.Background(), "sharp chest pain and cold sweat", "en")

	require.NoError(t, err)
	assert.Contains(t, workflow.lastPrompt, "You are a medical assistant.")
	assert.Contains(t, workflow.lastPrompt, "Patient's symptoms: sharp chest pain and cold sweat")

	workflow.err = &provider.WorkflowStatusError{Code: 40001, Description: "model unavailable"}
	_, err = svc.AnalyzeSymptoms(context.Background(), "sharp chest pain and cold sweat", "en")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindRemoteWorkflowFailure, apperrors.KindOf(err))
	assert.Equal(t, "Analysis failed: model unavailable", err.Error())
}

func TestDietSkipsTopicFilter(t *testing.T) {
	workflow := &fakeWorkflow{response: "eat more greens"}
	translator := &fakeTranslator{}
	svc := newTestAssistant(workflow, translator)

	// "rice and beans" hits no medical keyword; diet mode must still submit.
	resp, err := svc.GetDietRecommendations(context.Background(), "rice and beans", "en")

	require.NoError(t, err)
	assert.Equal(t, "eat more greens", resp)
	assert.Equal(t, 1, workflow.calls)

	workflow.err = &provider.WorkflowStatusError{Code: 40001, Description: "timeout"}
	_, err = svc.GetDietRecommendations(context.Background(), "rice and beans", "en")
	require.Error(t, err)
	assert.Equal(t, "Diet recommendations failed: timeout", err.Error())
}

func TestTranslationFailureShortCircuits(t *testing.T) {
	workflow := &fakeWorkflow{response: "unused"}
	translator := &fakeTranslator{err: errors.New("service unreachable")}
	svc := newTestAssistant(workflow, translator)

	_, err := svc.GetQAResponse(context.Background(), "enakku thalai vali", "ta")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindTranslationFailure, apperrors.KindOf(err))
	assert.Equal(t, "Error: service unreachable", err.Error())
	assert.Equal(t, 0, workflow.calls)
}

func TestMalformedWorkflowResponseIsGenericError(t *testing.T) {
	workflow := &fakeWorkflow{err: errors.New("workflow response contains no results")}
	translator := &fakeTranslator{}
	svc := newTestAssistant(workflow, translator)

	_, err := svc.GetQAResponse(context.Background(), "what medicine helps a cough", "en")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindRemoteWorkflowMalformed, apperrors.KindOf(err))
	assert.Equal(t, "Error: workflow response contains no results", err.Error())
}
