package services

import "strings"

// medicalKeywords is the fixed vocabulary that gates the assistant. Terms
// are lowercase; matching is raw substring containment against the
// lowercased input, so "painting" matches "pain". That looseness is part of
// the contract with the existing front end.
var medicalKeywords = []string{
	"symptom", "pain", "doctor", "medicine", "treatment", "health",
	"disease", "condition", "medical", "hospital", "clinic", "diagnosis",
	"therapy", "prescription", "medication", "illness", "injury", "healing",
	"recovery", "patient", "healthcare", "examination", "test", "checkup",
	"vaccine", "vaccination", "surgery", "emergency", "ambulance", "first aid",
	"blood", "heart", "lung", "brain", "stomach", "skin", "bone", "muscle",
	"joint", "nerve", "infection", "virus", "bacteria", "fever", "cough",
	"allergy", "diet", "nutrition", "exercise", "wellness", "diabetes",
	"hypertension", "asthma", "cancer", "tumor", "arthritis", "depression",
	"anxiety", "cholesterol", "stroke", "epilepsy", "migraine", "headache",
	"obesity", "anemia", "ulcer", "gastroenteritis", "hepatitis", "jaundice",
	"thyroid", "osteoporosis", "dementia", "paralysis", "pneumonia", "bronchitis",
	"cardiovascular", "respiratory", "dermatology", "psychiatry", "neurology",
	"urology", "gynecology", "oncology", "pathology", "orthopedics", "radiology",
	"ophthalmology", "dentistry", "immunology", "endocrinology", "pediatrics",
	"geriatrics", "cardiology", "pulmonology", "nephrology", "hepatology",
	"infertility", "eczema", "psoriasis", "sepsis", "shock", "autism",
	"bipolar", "schizophrenia", "insomnia", "fatigue", "constipation",
	"diarrhea", "vomiting", "rash", "hives", "swelling", "fracture", "sprain",
	"bleeding", "burn", "cut", "wound", "scar", "inflammation", "laceration",
	"concussion", "dehydration", "malnutrition", "sinusitis", "tuberculosis",
	"cholera", "dysentery", "hiv", "aids", "malaria", "dengue", "zika", "ebola",
	"covid-19", "sars", "mers", "lyme", "rabies", "typhoid", "meningitis",
	"polio", "cirrhosis", "fibrosis", "colitis", "crohn", "ibs", "gerd", "appendicitis",
	"kidney stones", "gallstones", "pancreatitis", "prostate", "testosterone",
	"estrogen", "menopause", "pregnancy", "prenatal", "postnatal", "childbirth",
	"labor", "miscarriage", "abortion", "contraception", "std", "sti",
	"hormones", "immunity", "genes", "genetic", "dna", "rna", "stem cells",
}

// IsMedicalRelated reports whether the text touches the medical domain:
// true iff the lowercased text contains at least one keyword as a substring.
// No tokenization, no accent or punctuation handling.
func IsMedicalRelated(text string) bool {
	textLower := strings.ToLower(text)
	for _, keyword := range medicalKeywords {
		if strings.Contains(textLower, keyword) {
			return true
		}
	}
	return false
}
