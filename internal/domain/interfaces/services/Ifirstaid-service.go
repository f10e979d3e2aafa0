package Iservices

import "github.com/Kmkishore05/CarePulsebot/internal/domain/entities"

type IFirstAidService interface {
	SearchEmergency(searchTerm string) *entities.EmergencyRecord
	FormatInstructions(record *entities.EmergencyRecord) string
}
