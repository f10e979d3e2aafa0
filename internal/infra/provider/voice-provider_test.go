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

func newVoiceProvider(t *testing.T, handler http.HandlerFunc) *VoiceProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.NewLogger(context.Background(), "error", false)
	return NewVoiceProvider(log, server.Client(), server.URL)
}

func TestSynthesizeReturnsAudioBytes(t *testing.T) {
	provider := newVoiceProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tts", r.URL.Path)

		var req dto.VoiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Apply direct pressure.", req.Text)
		assert.Equal(t, "es", req.Lang)

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	})

	audio, err := provider.Synthesize(context.Background(), "Apply direct pressure.", "es")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

func TestSynthesizeNonOKStatus(t *testing.T) {
	provider := newVoiceProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported language", http.StatusBadRequest)
	})

	_, err := provider.Synthesize(context.Background(), "text", "xx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
