package model

// MasteryRecord tracks how often, and when, a person was answered
// correctly. Keyed by NameHash in storage; timestamps are epoch
// milliseconds so the persisted form stays a flat numeric document.
type MasteryRecord struct {
	CorrectCount   int   `json:"correct_count"`
	FirstCorrectAt int64 `json:"first_correct_at"`
	LastCorrectAt  int64 `json:"last_correct_at"`
}

// MasteryMap is the full per-learner mastery document as persisted
type MasteryMap map[NameHash]*MasteryRecord
