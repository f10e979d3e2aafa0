package entities

import "time"

type EntryType string

const (
	EntryQA       EntryType = "Q&A"
	EntrySymptoms EntryType = "Symptoms"
	EntryDiet     EntryType = "Diet"
	EntryFirstAid EntryType = "FirstAid"
)

// ChatEntry is one completed turn. Entries are never mutated after creation;
// Audio holds base64-encoded MP3 when voice was enabled and synthesis
// succeeded.
type ChatEntry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	Language  string    `json:"language"`
	Audio     string    `json:"audio,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is the append-only history of one interactive session. It
// lives only in memory for the lifetime of the process.
type ChatSession struct {
	SessionID string      `json:"session_id"`
	Entries   []ChatEntry `json:"entries"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
