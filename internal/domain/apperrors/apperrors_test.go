package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorRenderingPerKind(t *testing.T) {
	assert.Equal(t, "Please ask something medical.", NewOffTopic("Please ask something medical.").Error())
	assert.Equal(t, "Workflow failed: model unavailable", NewWorkflowFailure("Workflow", "model unavailable").Error())
	assert.Equal(t, "Error generating voice: tts down", NewVoiceFailure(errors.New("tts down")).Error())
	assert.Equal(t, "Error: connection refused", NewTranslationFailure(errors.New("connection refused")).Error())
	assert.Equal(t, "Error: empty results", NewWorkflowMalformed("empty results").Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindVoiceSynthesisFailure, KindOf(NewVoiceFailure(errors.New("tts down"))))
	assert.Equal(t, KindOffTopic, KindOf(NewOffTopic("no")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
