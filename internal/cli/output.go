package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case NextCard:
		o.printNextCard(v)
	case AnswerResult:
		o.printAnswerResult(v)
	case Mastery:
		o.printMastery(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Stats response type (matches API)
type Stats struct {
	Total     int    `json:"total"`
	Remaining int    `json:"remaining"`
	Correct   int    `json:"correct"`
	Missed    int    `json:"missed"`
	Phase     string `json:"phase"`
}

// Option response type
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Card response type
type Card struct {
	PhotoURL string   `json:"photo_url"`
	IsRetry  bool     `json:"is_retry"`
	Options  []Option `json:"options"`
}

// MissedPerson response type
type MissedPerson struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
}

// Summary response type
type Summary struct {
	TotalPeople    int            `json:"total_people"`
	CorrectAnswers int            `json:"correct_answers"`
	Accuracy       int            `json:"accuracy"`
	Missed         []MissedPerson `json:"missed"`
}

// NextCard response type
type NextCard struct {
	Complete bool     `json:"complete"`
	Card     *Card    `json:"card,omitempty"`
	Summary  *Summary `json:"summary,omitempty"`
	Stats    Stats    `json:"stats"`
}

// AnswerResult response type
type AnswerResult struct {
	Correct      bool   `json:"correct"`
	CorrectID    string `json:"correct_id"`
	MasteryCount int    `json:"mastery_count,omitempty"`
	DelayMs      int64  `json:"delay_ms"`
	Stats        Stats  `json:"stats"`
}

// GameState response type
type GameState struct {
	Resumed bool  `json:"resumed,omitempty"`
	Stats   Stats `json:"stats"`
}

// Mastery response type
type Mastery struct {
	MasteredCount int `json:"mastered_count"`
	Total         int `json:"total"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printStats(s Stats) {
	fmt.Printf("Progress: %d/%d correct, %d missed, %d remaining (%s)\n",
		s.Correct, s.Total, s.Missed, s.Remaining, s.Phase)
}

func (o *Output) printGameState(g GameState) {
	if g.Resumed {
		fmt.Println("Resumed saved game")
	}
	o.printStats(g.Stats)
}

func (o *Output) printNextCard(n NextCard) {
	if n.Complete {
		fmt.Println("Game complete!")
		if n.Summary != nil {
			o.printSummary(*n.Summary)
		}
		return
	}

	if n.Card != nil {
		o.printCard(*n.Card)
	}
	o.printStats(n.Stats)
}

func (o *Output) printCard(c Card) {
	retryStr := ""
	if c.IsRetry {
		retryStr = " [retry]"
	}
	fmt.Printf("Who is this?%s\n", retryStr)
	fmt.Printf("Photo: %s\n", c.PhotoURL)
	for i, opt := range c.Options {
		fmt.Printf("  %d) %s - %s\n", i+1, opt.Name, opt.Role)
	}
}

func (o *Output) printSummary(s Summary) {
	fmt.Printf("Score: %d/%d (%d%%)\n", s.CorrectAnswers, s.TotalPeople, s.Accuracy)
	if len(s.Missed) > 0 {
		fmt.Println("Names to practice:")
		for _, m := range s.Missed {
			fmt.Printf("  - %s (%s)\n", m.Name, m.Role)
		}
	}
}

func (o *Output) printAnswerResult(a AnswerResult) {
	if a.Correct {
		fmt.Println("Correct!")
		if a.MasteryCount > 0 {
			fmt.Printf("Mastery count: %d\n", a.MasteryCount)
		}
	} else {
		fmt.Println("Incorrect, it will come back around")
	}
	o.printStats(a.Stats)
}

func (o *Output) printMastery(m Mastery) {
	fmt.Printf("Mastered: %d/%d\n", m.MasteredCount, m.Total)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
