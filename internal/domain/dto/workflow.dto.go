package dto

// Wire shapes of the remote workflow backend. One text input per call; the
// answer is read from the last output of the first result.

const WorkflowStatusSuccess = 10000

type WorkflowRequest struct {
	Inputs []WorkflowInput `json:"inputs"`
}

type WorkflowInput struct {
	Data WorkflowData `json:"data"`
}

type WorkflowData struct {
	Text WorkflowText `json:"text"`
}

type WorkflowText struct {
	Raw string `json:"raw"`
}

type WorkflowResponse struct {
	Status  WorkflowStatus   `json:"status"`
	Results []WorkflowResult `json:"results"`
}

type WorkflowStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

type WorkflowResult struct {
	Outputs []WorkflowOutput `json:"outputs"`
}

type WorkflowOutput struct {
	Data WorkflowData `json:"data"`
}
