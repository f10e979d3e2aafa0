package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/dto"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslateProvider(t *testing.T, handler http.HandlerFunc) *TranslateProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.NewLogger(context.Background(), "error", false)
	return NewTranslateProvider(log, server.Client(), server.URL)
}

func TestTranslateSendsLanguagePair(t *testing.T) {
	provider := newTranslateProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)

		var req dto.TranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mujhe bukhar hai", req.Q)
		assert.Equal(t, "hi", req.Source)
		assert.Equal(t, "en", req.Target)
		assert.Equal(t, "text", req.Format)

		json.NewEncoder(w).Encode(dto.TranslateResponse{TranslatedText: "I have a fever"})
	})

	text, err := provider.Translate(context.Background(), "mujhe bukhar hai", "hi", "en")

	require.NoError(t, err)
	assert.Equal(t, "I have a fever", text)
}

func TestTranslateNonOKStatus(t *testing.T) {
	provider := newTranslateProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream busy", http.StatusServiceUnavailable)
	})

	_, err := provider.Translate(context.Background(), "hola", "es", "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
