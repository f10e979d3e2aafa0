package services

import (
	"fmt"
	"strings"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/util"
)

type FirstAidService struct {
	Logger *logger.Logger

	knowledgeBase []entities.EmergencyRecord
}

func NewFirstAidService(logger *logger.Logger) *FirstAidService {
	return &FirstAidService{Logger: logger, knowledgeBase: firstAidInstructions}
}

// SearchEmergency scans the knowledge base in its defined order and returns
// the first record matching the lowercased search term, or nil. A record
// matches when the term appears in its title, when any of its keywords
// appears inside the term (note the reversed direction), or when the term
// appears inside one of its symptom descriptions.
func (fs *FirstAidService) SearchEmergency(searchTerm string) *entities.EmergencyRecord {
	term := strings.ToLower(searchTerm)

	for i := range fs.knowledgeBase {
		record := &fs.knowledgeBase[i]

		if strings.Contains(strings.ToLower(record.Title), term) {
			return record
		}
		for _, keyword := range record.Keywords {
			if strings.Contains(term, keyword) {
				return record
			}
		}
		for _, symptom := range record.Symptoms {
			if strings.Contains(strings.ToLower(symptom), term) {
				return record
			}
		}
	}
	return nil
}

// FormatInstructions renders one record as the display string shown to the
// user: title, emergency level, bulleted symptoms and 1-indexed steps.
func (fs *FirstAidService) FormatInstructions(record *entities.EmergencyRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("**%s**\n\n", record.Title))
	b.WriteString(fmt.Sprintf("**Emergency Level:** %s\n\n", record.EmergencyLevel))
	b.WriteString("**Common Symptoms:**\n")
	b.WriteString(util.BulletedList(record.Symptoms))
	b.WriteString("\n\n**Steps to Follow:**\n")
	b.WriteString(util.NumberedList(record.Steps))

	return b.String()
}
