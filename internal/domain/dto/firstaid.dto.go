package dto

type FirstAidRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
	Query     string `json:"query" validate:"required"`
	Language  string `json:"language" validate:"required,len=2"`
	Voice     bool   `json:"voice"`
}

// FirstAidResponse mirrors TurnResponse but keeps a separate voice error
// field: a failed synthesis never invalidates the instructions, it is shown
// alongside them.
type FirstAidResponse struct {
	Status     string `json:"status"`
	Response   string `json:"response"`
	SessionID  string `json:"session_id,omitempty"`
	Audio      string `json:"audio,omitempty"`
	VoiceError string `json:"voice_error,omitempty"`
}
