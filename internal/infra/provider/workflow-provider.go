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

type WorkflowProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client

	host       string
	apiKey     string
	userID     string
	appID      string
	workflowID string
}

// NewWorkflowProvider builds the client for the remote workflow backend. The
// credential and the (user, app, workflow) triple are fixed here and reused
// for every call; they are never renegotiated per request.
func NewWorkflowProvider(logger *logger.Logger, httpClient *http.Client, host, apiKey, userID, appID, workflowID string) *WorkflowProvider {
	return &WorkflowProvider{
		Logger:     logger,
		HttpClient: httpClient,
		host:       host,
		apiKey:     apiKey,
		userID:     userID,
		appID:      appID,
		workflowID: workflowID,
	}
}

// PostWorkflowResults submits one text input to the workflow and extracts
// the answer from the last output of the first result entry. Any deviation
// from that response shape is an error.
//
// Returns:
//   - string: the raw answer text on success.
//   - error: *WorkflowStatusError when the backend reports a non-success
//     status; a plain error for transport failures or an unexpected
//     response shape.
func (wp *WorkflowProvider) PostWorkflowResults(ctx context.Context, textInput string) (string, error) {
	apiURL := fmt.Sprintf("%s/v2/users/%s/apps/%s/workflows/%s/results", wp.host, wp.userID, wp.appID, wp.workflowID)

	payload := dto.WorkflowRequest{
		Inputs: []dto.WorkflowInput{
			{Data: dto.WorkflowData{Text: dto.WorkflowText{Raw: textInput}}},
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		wp.Logger.Error(fmt.Sprintf("Failed to marshal workflow payload: %s", err.Error()))
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		wp.Logger.Error(fmt.Sprintf("Failed to create workflow request: %s", err.Error()))
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Key %s", wp.apiKey))

	resp, err := wp.HttpClient.Do(req)
	if err != nil {
		wp.Logger.Error(fmt.Sprintf("Failed to send workflow request: %s", err.Error()))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		wp.Logger.Error(fmt.Sprintf("Failed to read workflow response body: %s", err.Error()))
		return "", err
	}

	var workflowResponse dto.WorkflowResponse
	if err := json.Unmarshal(body, &workflowResponse); err != nil {
		wp.Logger.Error(fmt.Sprintf("Failed to unmarshal workflow response: %s", err.Error()))
		return "", fmt.Errorf("failed to unmarshal workflow response: %w", err)
	}

	if workflowResponse.Status.Code != dto.WorkflowStatusSuccess {
		wp.Logger.Warn(fmt.Sprintf("Workflow returned non-success status %d: %s", workflowResponse.Status.Code, workflowResponse.Status.Description))
		return "", &WorkflowStatusError{Code: workflowResponse.Status.Code, Description: workflowResponse.Status.Description}
	}

	if len(workflowResponse.Results) == 0 {
		return "", fmt.Errorf("workflow response contains no results")
	}
	outputs := workflowResponse.Results[0].Outputs
	if len(outputs) == 0 {
		return "", fmt.Errorf("workflow result contains no outputs")
	}

	return outputs[len(outputs)-1].Data.Text.Raw, nil
}
