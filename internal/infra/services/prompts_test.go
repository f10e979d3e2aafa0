package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQAPromptIsPassthrough(t *testing.T) {
	question := "Is paracetamol safe during pregnancy?"
	assert.Equal(t, question, BuildQAPrompt(question))
}

func TestBuildSymptomPrompt(t *testing.T) {
	prompt := BuildSymptomPrompt("dizziness and nausea since yesterday")

	assert.Contains(t, prompt, "You are a medical assistant.")
	assert.Contains(t, prompt, "Urgency level (Emergency/Urgent/Non-urgent)")
	assert.Contains(t, prompt, "This is not a diagnosis")
	assert.Contains(t, prompt, "Patient's symptoms: dizziness and nausea since yesterday")

	// Deterministic: same input, same prompt.
	assert.Equal(t, prompt, BuildSymptomPrompt("dizziness and nausea since yesterday"))
}

func TestBuildDietPrompt(t *testing.T) {
	prompt := BuildDietPrompt("type 2 diabetes, hypertension")

	assert.Contains(t, prompt, "Health Conditions: type 2 diabetes, hypertension")
	assert.Contains(t, prompt, "RECOMMENDED")
	assert.Contains(t, prompt, "AVOIDED")
	assert.Contains(t, prompt, "reviewed with a healthcare provider")
}
