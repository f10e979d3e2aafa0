package services

import "github.com/Kmkishore05/CarePulsebot/internal/domain/entities"

// firstAidInstructions is the static knowledge base, loaded once and never
// mutated. Slice order matters: the matcher returns the first record that
// satisfies any condition, so reordering entries changes results.
var firstAidInstructions = []entities.EmergencyRecord{
	{
		ID:    "bleeding",
		Title: "Bleeding Control",
		Steps: []string{
			"Apply direct pressure with a clean cloth or sterile gauze.",
			"If blood soaks through, add more layers without removing the first.",
			"Keep the injured area elevated above the heart if possible.",
			"Apply pressure for at least 15 minutes without lifting to check.",
			"For severe bleeding, call emergency services (911) immediately.",
			"If bleeding is from a limb and cannot be controlled, use a tourniquet as a last resort.",
		},
		EmergencyLevel: entities.LevelCritical,
		Symptoms: []string{
			"Continuous blood flow",
			"Blood soaking through bandages",
			"Pale or clammy skin",
			"Weakness or dizziness",
			"Severe pain in the injured area",
		},
		Keywords: []string{"blood", "bleeding", "wound", "cut", "hemorrhage"},
	},
	{
		ID:    "cardiac_emergency",
		Title: "Cardiac Emergency",
		Steps: []string{
			"Call emergency services (911) immediately.",
			"Check for responsiveness and breathing.",
			"If no breathing, begin CPR: 30 chest compressions followed by 2 rescue breaths.",
			"Continue CPR until help arrives or the person shows signs of life.",
			"If an AED is available, use it following the device instructions.",
		},
		EmergencyLevel: entities.LevelCritical,
		Symptoms: []string{
			"Chest pain or pressure",
			"Shortness of breath",
			"Pain in arms, back, neck, or jaw",
			"Cold sweat",
			"Nausea",
		},
		Keywords: []string{"heart", "chest pain", "cardiac", "heart attack"},
	},
	{
		ID:    "burns",
		Title: "Burns Treatment",
		Steps: []string{
			"Remove the source of burning.",
			"Cool the burn under cool (not cold) running water for at least 10 minutes.",
			"Remove any jewelry or tight items near the burned area.",
			"Cover with a sterile gauze bandage.",
			"Do not apply ice, butter, or ointments.",
			"Seek medical attention for serious burns.",
		},
		EmergencyLevel: entities.LevelSerious,
		Symptoms: []string{
			"Redness and pain",
			"Blistering",
			"Charred or blackened skin",
			"Swelling",
			"White or peeling skin",
		},
		Keywords: []string{"burn", "fire", "scalding", "hot"},
	},
}
