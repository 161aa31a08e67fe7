package response

import (
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/services/game"
)

// Stats is the live scoreboard in API responses
type Stats struct {
	Total     int    `json:"total"`
	Remaining int    `json:"remaining"`
	Correct   int    `json:"correct"`
	Missed    int    `json:"missed"`
	Phase     string `json:"phase"`
}

// StatsFromEngine converts engine stats to a response Stats
func StatsFromEngine(s game.Stats) Stats {
	return Stats{
		Total:     s.Total,
		Remaining: s.Remaining,
		Correct:   s.Correct,
		Missed:    s.Missed,
		Phase:     string(s.Phase),
	}
}

// Option is one answer choice for a card
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// OptionsFromEngine converts engine options
func OptionsFromEngine(opts []game.Option) []Option {
	out := make([]Option, len(opts))
	for i, o := range opts {
		out[i] = Option{ID: string(o.ID), Name: o.Name, Role: o.Role}
	}
	return out
}

// Card is the flashcard being shown: the photo plus the answer choices.
// The person's name is deliberately absent — it is the answer.
type Card struct {
	PhotoURL string   `json:"photo_url"`
	IsRetry  bool     `json:"is_retry"`
	Options  []Option `json:"options"`
}

// MissedPerson is one entry of the end-of-game review list
type MissedPerson struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
}

// Summary is the end-of-game report
type Summary struct {
	TotalPeople    int            `json:"total_people"`
	CorrectAnswers int            `json:"correct_answers"`
	Accuracy       int            `json:"accuracy"`
	Missed         []MissedPerson `json:"missed"`
}

// SummaryFromModel converts a model.GameSummary
func SummaryFromModel(s model.GameSummary) Summary {
	missed := make([]MissedPerson, len(s.Missed))
	for i, p := range s.Missed {
		missed[i] = MissedPerson{Name: p.Name, Role: p.Role, PhotoURL: p.PhotoURL}
	}
	return Summary{
		TotalPeople:    s.TotalPeople,
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       s.Accuracy,
		Missed:         missed,
	}
}

// NextCard is the response to requesting the next card: either a card
// or the completion report
type NextCard struct {
	Complete bool     `json:"complete"`
	Card     *Card    `json:"card,omitempty"`
	Summary  *Summary `json:"summary,omitempty"`
	Stats    Stats    `json:"stats"`
}

// Answer is the response to scoring an answer
type Answer struct {
	Correct      bool   `json:"correct"`
	CorrectID    string `json:"correct_id"`
	MasteryCount int    `json:"mastery_count,omitempty"`
	DelayMs      int64  `json:"delay_ms"`
	Stats        Stats  `json:"stats"`
}

// GameState is the response to starting or inspecting a game
type GameState struct {
	Resumed bool  `json:"resumed,omitempty"`
	Stats   Stats `json:"stats"`
}

// Mastery is the response for the mastery progress endpoint
type Mastery struct {
	MasteredCount int `json:"mastered_count"`
	Total         int `json:"total"`
}
