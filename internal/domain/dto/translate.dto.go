package dto

type TranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type VoiceRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}
