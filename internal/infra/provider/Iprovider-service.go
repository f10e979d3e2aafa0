package provider

import (
	"context"
	"fmt"
)

// IWorkflowProvider submits a single text input to the pre-configured remote
// workflow and returns its raw answer text. A non-success backend status is
// returned as *WorkflowStatusError so callers can attach their stage prefix.
type IWorkflowProvider interface {
	PostWorkflowResults(ctx context.Context, textInput string) (string, error)
}

type ITranslationProvider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type IVoiceProvider interface {
	Synthesize(ctx context.Context, text, langCode string) ([]byte, error)
}

// WorkflowStatusError reports a non-success status from the workflow
// backend, carrying its own description.
type WorkflowStatusError struct {
	Code        int
	Description string
}

func (e *WorkflowStatusError) Error() string {
	return fmt.Sprintf("workflow status %d: %s", e.Code, e.Description)
}
