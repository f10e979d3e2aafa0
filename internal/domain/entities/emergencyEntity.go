package entities

type EmergencyLevel string

const (
	LevelCritical EmergencyLevel = "Critical"
	LevelSerious  EmergencyLevel = "Serious"
	LevelModerate EmergencyLevel = "Moderate"
)

// EmergencyRecord is one entry of the static first-aid knowledge base,
// loaded once at startup and read-only afterwards. Steps keep their defined
// order; Keywords are lowercase terms matched against the user's query.
type EmergencyRecord struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Steps          []string       `json:"steps"`
	EmergencyLevel EmergencyLevel `json:"emergency_level"`
	Symptoms       []string       `json:"symptoms"`
	Keywords       []string       `json:"keywords"`
}
