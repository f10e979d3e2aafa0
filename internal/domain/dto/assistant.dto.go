package dto

// AssistantRequest is the body shared by the three assistant modes. Language
// is a two-letter code from the supported assistant set; it is used as both
// source and target of the translation round trip.
type AssistantRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
	Text      string `json:"text" validate:"required"`
	Language  string `json:"language" validate:"required,len=2"`
	Voice     bool   `json:"voice"`
}

// TurnResponse is the outcome of one turn. Status is "success" or "error";
// on error Response carries the user-visible message.
type TurnResponse struct {
	Status    string `json:"status"`
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
	Audio     string `json:"audio,omitempty"`
}
