package services

import "fmt"

// prompts.go holds the fixed instruction templates the assistant sends to
// the remote workflow. Keeping them in one file makes the wording easy to
// adjust without touching the orchestration code.

const (
	// QARefusal and SymptomRefusal are the fixed messages returned when the
	// topic filter rejects an input; no remote call is made in that case.
	QARefusal      = "Please ask only medical or health-related questions. For other topics, please use a different service."
	SymptomRefusal = "Please describe only medical symptoms or health-related concerns. For other topics, please use a different service."

	symptomPromptTemplate = `You are a medical assistant. Please analyze these symptoms carefully and provide:
1. Potential causes (from most likely to least likely)
2. Recommended next steps
3. Important information to tell the doctor
4. Urgency level (Emergency/Urgent/Non-urgent)
5. Warning signs to watch for

Please note: This is not a diagnosis, just an initial analysis to help prepare for a medical consultation.

Patient's symptoms: %s`

	dietPromptTemplate = `As a medical nutrition expert, please provide specific dietary recommendations for a patient with the following health conditions:

Health Conditions: %s

Please provide only:
1. List of foods that are RECOMMENDED for these conditions
2. List of foods that should be AVOIDED for these conditions
3. Brief explanation of why these recommendations are important

Note: This is general dietary guidance that should be reviewed with a healthcare provider.`
)

// BuildQAPrompt passes the question through untouched.
func BuildQAPrompt(question string) string {
	return question
}

func BuildSymptomPrompt(symptoms string) string {
	return fmt.Sprintf(symptomPromptTemplate, symptoms)
}

func BuildDietPrompt(conditions string) string {
	return fmt.Sprintf(dietPromptTemplate, conditions)
}
