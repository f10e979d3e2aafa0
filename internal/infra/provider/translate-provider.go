package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/dto"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
)

type TranslateProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client

	host string
}

func NewTranslateProvider(logger *logger.Logger, httpClient *http.Client, host string) *TranslateProvider {
	return &TranslateProvider{Logger: logger, HttpClient: httpClient, host: host}
}

// Translate converts text between two ISO-639-1 language codes using the
// translation backend. The pipeline only ever calls it with English on one
// side; that pivoting is the caller's concern, not this client's.
func (tp *TranslateProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload := dto.TranslateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		tp.Logger.Error(fmt.Sprintf("Failed to marshal translate payload: %s", err.Error()))
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tp.host+"/translate", bytes.NewBuffer(payloadBytes))
	if err != nil {
		tp.Logger.Error(fmt.Sprintf("Failed to create translate request: %s", err.Error()))
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tp.HttpClient.Do(req)
	if err != nil {
		tp.Logger.Error(fmt.Sprintf("Failed to send translate request: %s", err.Error()))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tp.Logger.Error(fmt.Sprintf("Failed to read translate response body: %s", err.Error()))
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		tp.Logger.Error(fmt.Sprintf("Translation API returned an error. Status: %d, Body: %s", resp.StatusCode, string(body)))
		return "", fmt.Errorf("translation API returned status %d", resp.StatusCode)
	}

	var translateResponse dto.TranslateResponse
	if err := json.Unmarshal(body, &translateResponse); err != nil {
		tp.Logger.Error(fmt.Sprintf("Failed to unmarshal translate response: %s", err.Error()))
		return "", fmt.Errorf("failed to unmarshal translate response: %w", err)
	}

	return translateResponse.TranslatedText, nil
}
