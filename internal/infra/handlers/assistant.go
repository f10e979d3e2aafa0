package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/dto"
	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
	Iservices "github.com/Kmkishore05/CarePulsebot/internal/domain/interfaces/services"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/provider"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AssistantHandlers struct {
	Logger           *logger.Logger
	Validator        *validator.Validate
	AssistantService Iservices.IAssistantService
	HistoryService   Iservices.IHistoryService
	VoiceProvider    provider.IVoiceProvider
}

func NewAssistantHandlers(logger *logger.Logger, validate *validator.Validate, assistantService Iservices.IAssistantService, historyService Iservices.IHistoryService, voiceProvider provider.IVoiceProvider) *AssistantHandlers {
	return &AssistantHandlers{
		Logger:           logger,
		Validator:        validate,
		AssistantService: assistantService,
		HistoryService:   historyService,
		VoiceProvider:    voiceProvider,
	}
}

// QA handles one Medical Q&A turn.
func (ah *AssistantHandlers) QA(w http.ResponseWriter, r *http.Request) {
	ah.handleTurn(w, r, entities.EntryQA, ah.AssistantService.GetQAResponse)
}

// Symptoms handles one Symptom Analysis turn.
func (ah *AssistantHandlers) Symptoms(w http.ResponseWriter, r *http.Request) {
	ah.handleTurn(w, r, entities.EntrySymptoms, ah.AssistantService.AnalyzeSymptoms)
}

// Diet handles one Dietary Planning turn.
func (ah *AssistantHandlers) Diet(w http.ResponseWriter, r *http.Request) {
	ah.handleTurn(w, r, entities.EntryDiet, ah.AssistantService.GetDietRecommendations)
}

// handleTurn runs the shared request flow for the three assistant modes:
// decode and validate the body, resolve the language, run the pipeline,
// optionally synthesize voice, and append the completed turn to the
// session's history. A voice failure is logged and the entry simply carries
// no audio; the textual response is already final at that point.
func (ah *AssistantHandlers) handleTurn(w http.ResponseWriter, r *http.Request, entryType entities.EntryType, run func(ctx context.Context, text, lang string) (string, error)) {
	var req dto.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ah.Logger.Error(fmt.Sprintf("Invalid JSON payload: %s", err.Error()))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := ah.Validator.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.TurnResponse{Status: statusError, Response: err.Error()})
		return
	}

	languageLabel, ok := entities.AssistantLanguageLabel(req.Language)
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.TurnResponse{Status: statusError, Response: fmt.Sprintf("Unsupported language code: %s", req.Language)})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	responseText, err := run(r.Context(), req.Text, req.Language)
	if err != nil {
		writeTurnError(w, err)
		return
	}

	entry := entities.ChatEntry{
		ID:        uuid.NewString(),
		Type:      entryType,
		Input:     req.Text,
		Response:  responseText,
		Language:  languageLabel,
		Timestamp: time.Now(),
	}

	if req.Voice {
		audio, verr := ah.VoiceProvider.Synthesize(r.Context(), responseText, req.Language)
		if verr != nil {
			ah.Logger.Warn(fmt.Sprintf("Voice synthesis failed, responding without audio: %s", verr.Error()))
		} else {
			entry.Audio = base64.StdEncoding.EncodeToString(audio)
		}
	}

	if err := ah.HistoryService.Append(r.Context(), sessionID, entry); err != nil {
		ah.Logger.Error(fmt.Sprintf("Failed to append history entry for session %s: %s", sessionID, err.Error()))
	}

	writeJSON(w, http.StatusOK, dto.TurnResponse{
		Status:    statusSuccess,
		Response:  responseText,
		SessionID: sessionID,
		Audio:     entry.Audio,
	})
}
