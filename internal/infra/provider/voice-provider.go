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

type VoiceProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client

	host string
}

func NewVoiceProvider(logger *logger.Logger, httpClient *http.Client, host string) *VoiceProvider {
	return &VoiceProvider{Logger: logger, HttpClient: httpClient, host: host}
}

// Synthesize asks the speech backend to read text aloud in the given
// language and returns the MP3 bytes. Callers decide what a failure means;
// a missing voice track never invalidates the textual answer.
func (vp *VoiceProvider) Synthesize(ctx context.Context, text, langCode string) ([]byte, error) {
	payload := dto.VoiceRequest{Text: text, Lang: langCode}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		vp.Logger.Error(fmt.Sprintf("Failed to marshal voice payload: %s", err.Error()))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, vp.host+"/api/tts", bytes.NewBuffer(payloadBytes))
	if err != nil {
		vp.Logger.Error(fmt.Sprintf("Failed to create voice request: %s", err.Error()))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := vp.HttpClient.Do(req)
	if err != nil {
		vp.Logger.Error(fmt.Sprintf("Failed to send voice request: %s", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		vp.Logger.Error(fmt.Sprintf("Voice API returned an error. Status: %d, Body: %s", resp.StatusCode, string(body)))
		return nil, fmt.Errorf("voice API returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
