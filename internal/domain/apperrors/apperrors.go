package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindOffTopic                Kind = "off_topic"
	KindTranslationFailure      Kind = "translation_failure"
	KindRemoteWorkflowFailure   Kind = "remote_workflow_failure"
	KindRemoteWorkflowMalformed Kind = "remote_workflow_malformed"
	KindVoiceSynthesisFailure   Kind = "voice_synthesis_failure"
)

// PipelineError is the typed error a pipeline turn can end with. Error()
// renders the exact user-visible string the UI contract expects, so callers
// branch on Kind instead of parsing messages.
type PipelineError struct {
	Kind    Kind
	Stage   string
	Message string
}

func (e *PipelineError) Error() string {
	switch e.Kind {
	case KindOffTopic:
		return e.Message
	case KindRemoteWorkflowFailure:
		return fmt.Sprintf("%s failed: %s", e.Stage, e.Message)
	case KindVoiceSynthesisFailure:
		return fmt.Sprintf("Error generating voice: %s", e.Message)
	default:
		return fmt.Sprintf("Error: %s", e.Message)
	}
}

func NewOffTopic(refusal string) error {
	return &PipelineError{Kind: KindOffTopic, Message: refusal}
}

func NewTranslationFailure(err error) error {
	return &PipelineError{Kind: KindTranslationFailure, Message: err.Error()}
}

func NewWorkflowFailure(stage, description string) error {
	return &PipelineError{Kind: KindRemoteWorkflowFailure, Stage: stage, Message: description}
}

func NewWorkflowMalformed(message string) error {
	return &PipelineError{Kind: KindRemoteWorkflowMalformed, Message: message}
}

func NewVoiceFailure(err error) error {
	return &PipelineError{Kind: KindVoiceSynthesisFailure, Message: err.Error()}
}

// KindOf extracts the pipeline error kind, or "" for foreign errors.
func KindOf(err error) Kind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
