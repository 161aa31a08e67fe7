package model

import (
	"math"
	"time"
)

// SessionPhase represents the lifecycle of a flashcards session
type SessionPhase string

const (
	PhaseInProgress SessionPhase = "in_progress"
	PhaseComplete   SessionPhase = "complete"
)

// Session is the live state of one flashcards game. It is owned
// exclusively by a game engine; only its hash-based projection
// (SessionSnapshot) is ever persisted.
type Session struct {
	// Roster is the full person list the game was started with,
	// in shuffled order
	Roster []Person

	// Queue is the FIFO work queue of people still to be shown.
	// Incorrect answers requeue at the tail (round-robin retry).
	Queue []Person

	// Seen holds the hash of every person that has been shown at
	// least once. Entries are only ever added within a session.
	Seen map[NameHash]struct{}

	CorrectAnswers int

	// Missed is the append-only review list of people answered
	// incorrectly at least once, deduplicated by hash
	Missed []Person

	// Current is the person being quizzed, nil between cards
	Current        *Person
	CurrentIsRetry bool

	IsGameOver bool

	StartedAt time.Time
	UpdatedAt time.Time
}

// Phase returns the session's lifecycle phase
func (s *Session) Phase() SessionPhase {
	if s.IsGameOver {
		return PhaseComplete
	}
	return PhaseInProgress
}

// Total returns the number of people the game was started with
func (s *Session) Total() int {
	return len(s.Roster)
}

// Remaining returns the number of cards left in the queue
func (s *Session) Remaining() int {
	return len(s.Queue)
}

// Accuracy returns correct answers as a percentage of the roster size,
// rounded to the nearest integer. Zero for an empty roster.
func (s *Session) Accuracy() int {
	if len(s.Roster) == 0 {
		return 0
	}
	return int(math.Round(float64(s.CorrectAnswers) / float64(len(s.Roster)) * 100))
}

// HasSeen reports whether a person with the given hash has been shown
func (s *Session) HasSeen(hash NameHash) bool {
	_, ok := s.Seen[hash]
	return ok
}

// GameSummary is the final report for a completed session
type GameSummary struct {
	TotalPeople    int
	CorrectAnswers int
	Accuracy       int
	Missed         []Person
}

// Summary builds the end-of-game report
func (s *Session) Summary() GameSummary {
	missed := make([]Person, len(s.Missed))
	copy(missed, s.Missed)
	return GameSummary{
		TotalPeople:    s.Total(),
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       s.Accuracy(),
		Missed:         missed,
	}
}

// SessionSnapshot is the persisted projection of a Session. It carries
// only hashes and counters, never a name, role, or photo URL, so the
// stored artifact is safe even if the persistence medium is inspectable.
type SessionSnapshot struct {
	CorrectAnswers int        `json:"correct_answers"`
	IsGameOver     bool       `json:"is_game_over"`
	SeenHashes     []NameHash `json:"seen_hashes"`
	QueueHashes    []NameHash `json:"queue_hashes"`
	RosterHashes   []NameHash `json:"roster_hashes"`
	SavedAt        time.Time  `json:"saved_at"`
}
