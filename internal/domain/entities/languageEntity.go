package entities

// AssistantLanguages maps display names to the ISO-639-1 codes the medical
// assistant accepts. The selected code is used as both source and target of
// the English-pivoted translation.
var AssistantLanguages = map[string]string{
	"English":   "en",
	"Hindi":     "hi",
	"Bengali":   "bn",
	"Tamil":     "ta",
	"Telugu":    "te",
	"Marathi":   "mr",
	"Gujarati":  "gu",
	"Kannada":   "kn",
	"Malayalam": "ml",
	"Punjabi":   "pa",
	"Urdu":      "ur",
}

// FirstAidLanguages maps display names to the codes the first-aid assistant
// supports for voice instructions.
var FirstAidLanguages = map[string]string{
	"English": "en",
	"Spanish": "es",
	"French":  "fr",
	"German":  "de",
	"Italian": "it",
}

// AssistantLanguageLabel resolves a language code back to its display name.
func AssistantLanguageLabel(code string) (string, bool) {
	return labelFor(AssistantLanguages, code)
}

// FirstAidLanguageLabel resolves a language code back to its display name.
func FirstAidLanguageLabel(code string) (string, bool) {
	return labelFor(FirstAidLanguages, code)
}

func labelFor(languages map[string]string, code string) (string, bool) {
	for label, c := range languages {
		if c == code {
			return label, true
		}
	}
	return "", false
}
