package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/apperrors"
	"github.com/Kmkishore05/CarePulsebot/internal/domain/dto"
	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
	Iservices "github.com/Kmkishore05/CarePulsebot/internal/domain/interfaces/services"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/provider"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const noMatchMessage = "Sorry, I couldn't find any relevant first aid instructions. Please try different keywords."

type FirstAidHandlers struct {
	Logger          *logger.Logger
	Validator       *validator.Validate
	FirstAidService Iservices.IFirstAidService
	HistoryService  Iservices.IHistoryService
	VoiceProvider   provider.IVoiceProvider
}

func NewFirstAidHandlers(logger *logger.Logger, validate *validator.Validate, firstAidService Iservices.IFirstAidService, historyService Iservices.IHistoryService, voiceProvider provider.IVoiceProvider) *FirstAidHandlers {
	return &FirstAidHandlers{
		Logger:          logger,
		Validator:       validate,
		FirstAidService: firstAidService,
		HistoryService:  historyService,
		VoiceProvider:   voiceProvider,
	}
}

// Search looks the query up in the first-aid knowledge base and returns the
// formatted instructions. Voice, when enabled, reads the steps only; a voice
// failure is surfaced in the response next to the instructions instead of
// replacing them.
func (fh *FirstAidHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.FirstAidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fh.Logger.Error(fmt.Sprintf("Invalid JSON payload: %s", err.Error()))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := fh.Validator.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.FirstAidResponse{Status: statusError, Response: err.Error()})
		return
	}

	languageLabel, ok := entities.FirstAidLanguageLabel(req.Language)
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.FirstAidResponse{Status: statusError, Response: fmt.Sprintf("Unsupported language code: %s", req.Language)})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	record := fh.FirstAidService.SearchEmergency(req.Query)
	if record == nil {
		writeJSON(w, http.StatusNotFound, dto.FirstAidResponse{Status: statusError, Response: noMatchMessage})
		return
	}

	responseText := fh.FirstAidService.FormatInstructions(record)

	response := dto.FirstAidResponse{
		Status:    statusSuccess,
		Response:  responseText,
		SessionID: sessionID,
	}

	entry := entities.ChatEntry{
		ID:        uuid.NewString(),
		Type:      entities.EntryFirstAid,
		Input:     req.Query,
		Response:  responseText,
		Language:  languageLabel,
		Timestamp: time.Now(),
	}

	if req.Voice {
		stepsText := strings.Join(record.Steps, ". ")
		audio, verr := fh.VoiceProvider.Synthesize(r.Context(), stepsText, req.Language)
		if verr != nil {
			fh.Logger.Warn(fmt.Sprintf("Voice synthesis failed for first-aid steps: %s", verr.Error()))
			response.VoiceError = apperrors.NewVoiceFailure(verr).Error()
		} else {
			entry.Audio = base64.StdEncoding.EncodeToString(audio)
			response.Audio = entry.Audio
		}
	}

	if err := fh.HistoryService.Append(r.Context(), sessionID, entry); err != nil {
		fh.Logger.Error(fmt.Sprintf("Failed to append history entry for session %s: %s", sessionID, err.Error()))
	}

	writeJSON(w, http.StatusOK, response)
}
