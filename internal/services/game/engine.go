package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mtrunkat/namedrill/internal/dependencies/clock"
	"github.com/mtrunkat/namedrill/internal/dependencies/random"
	"github.com/mtrunkat/namedrill/internal/identity"
	"github.com/mtrunkat/namedrill/internal/model"
	"github.com/mtrunkat/namedrill/internal/services/mastery"
	"github.com/mtrunkat/namedrill/internal/services/session"
)

// Config holds game engine settings
type Config struct {
	// OptionCount is the total number of answer choices per card,
	// correct answer included. Directories smaller than this simply
	// yield fewer choices.
	OptionCount int

	// CorrectDelay and IncorrectDelay pace the transition to the next
	// card so feedback can be read. Answers are rejected while a
	// transition is pending. Zero disables pacing.
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration
}

// DefaultConfig returns the default engine settings
func DefaultConfig() Config {
	return Config{
		OptionCount:    4,
		CorrectDelay:   1500 * time.Millisecond,
		IncorrectDelay: 2500 * time.Millisecond,
	}
}

// Engine runs one learner's flashcards game: a FIFO work queue over the
// directory, round-robin retries on misses, and score/mastery tracking.
// The live session is owned by the engine alone; stores only ever see
// its hash-based projection.
type Engine struct {
	learner        model.LearnerID
	masteryService *mastery.Service
	sessionService *session.Service
	clock          clock.Clock
	random         random.Random
	cfg            Config
	logger         *slog.Logger

	mu     sync.Mutex
	sess   *model.Session
	locked bool
	closed bool
	pacer  *pacer
}

// NewEngine creates an engine for one learner
func NewEngine(
	learner model.LearnerID,
	masteryService *mastery.Service,
	sessionService *session.Service,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	if cfg.OptionCount <= 0 {
		cfg.OptionCount = DefaultConfig().OptionCount
	}
	return &Engine{
		learner:        learner,
		masteryService: masteryService,
		sessionService: sessionService,
		clock:          clk,
		random:         rnd,
		cfg:            cfg,
		logger:         logger.With(slog.String("learner", string(learner))),
		pacer:          newPacer(),
	}
}

// Start begins a game over the given directory and reports whether a
// saved session was resumed. A resumable session is taken as-is (no
// reshuffle); otherwise the roster is shuffled into a fresh queue. The
// resulting state is persisted immediately.
func (e *Engine) Start(ctx context.Context, people []model.Person) (bool, error) {
	if len(people) == 0 {
		return false, model.ErrEmptyDirectory
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false, model.ErrNoActiveGame
	}

	e.pacer.cancel()
	e.locked = false

	resumed := false
	if sess := e.sessionService.Load(ctx, e.learner, people); sess != nil && len(sess.Roster) > 0 {
		e.sess = sess
		resumed = true
		e.logger.Info("game resumed",
			slog.Int("roster", sess.Total()),
			slog.Int("remaining", sess.Remaining()),
			slog.Int("correct", sess.CorrectAnswers),
		)
	} else {
		e.sess = e.freshSession(people)
		e.logger.Info("game started", slog.Int("roster", e.sess.Total()))
	}

	e.sessionService.Save(ctx, e.learner, e.sess)
	return resumed, nil
}

// freshSession shuffles the roster and queues everyone once.
// Caller holds e.mu.
func (e *Engine) freshSession(people []model.Person) *model.Session {
	roster := make([]model.Person, len(people))
	copy(roster, people)
	random.Shuffle(e.random, len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})

	queue := make([]model.Person, len(roster))
	copy(queue, roster)

	now := e.clock.Now()
	return &model.Session{
		Roster:    roster,
		Queue:     queue,
		Seen:      make(map[model.NameHash]struct{}),
		Missed:    []model.Person{},
		StartedAt: now,
		UpdatedAt: now,
	}
}

// NextResult is what showing the next card yields: either a person to
// quiz or the completion report.
type NextResult struct {
	Person   *model.Person
	IsRetry  bool
	Complete bool
	Summary  *model.GameSummary
}

// Next pops the head of the work queue and exposes it as the current
// card, reporting whether it is a repeat showing. An empty queue
// completes the game and yields the final report instead.
func (e *Engine) Next(ctx context.Context) (*NextResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.closed {
		return nil, model.ErrNoActiveGame
	}

	// Showing a card ends any pending answer transition
	e.pacer.cancel()
	e.locked = false

	if len(e.sess.Queue) == 0 {
		if !e.sess.IsGameOver {
			e.sess.IsGameOver = true
			e.sess.Current = nil
			e.sess.UpdatedAt = e.clock.Now()
			e.sessionService.Save(ctx, e.learner, e.sess)
			e.logger.Info("game completed",
				slog.Int("roster", e.sess.Total()),
				slog.Int("correct", e.sess.CorrectAnswers),
				slog.Int("accuracy", e.sess.Accuracy()),
				slog.Int("missed", len(e.sess.Missed)),
			)
		}
		summary := e.sess.Summary()
		return &NextResult{Complete: true, Summary: &summary}, nil
	}

	person := e.sess.Queue[0]
	e.sess.Queue = e.sess.Queue[1:]

	hash := identity.Hash(person.Name)
	isRetry := e.sess.HasSeen(hash)
	if !isRetry {
		e.sess.Seen[hash] = struct{}{}
	}

	e.sess.Current = &person
	e.sess.CurrentIsRetry = isRetry

	return &NextResult{Person: &person, IsRetry: isRetry}, nil
}

// Option is one answer choice shown for a card
type Option struct {
	ID   model.PersonID
	Name string
	Role string
}

// Options builds the answer set for the current card: the correct
// person plus distractors drawn by shuffling the rest of the roster and
// taking a prefix, with the combined set shuffled again so the correct
// choice's position is uniform.
func (e *Engine) Options() ([]Option, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.closed {
		return nil, model.ErrNoActiveGame
	}
	if e.sess.Current == nil {
		return nil, model.ErrNoCurrentCard
	}

	correct := *e.sess.Current
	options := []Option{{ID: correct.ID, Name: correct.Name, Role: correct.Role}}

	others := make([]model.Person, 0, len(e.sess.Roster))
	for _, p := range e.sess.Roster {
		if p.ID != correct.ID {
			others = append(others, p)
		}
	}
	random.Shuffle(e.random, len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	for i := 0; i < e.cfg.OptionCount-1 && i < len(others); i++ {
		options = append(options, Option{ID: others[i].ID, Name: others[i].Name, Role: others[i].Role})
	}

	random.Shuffle(e.random, len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

// AnswerResult reports how an answer was scored
type AnswerResult struct {
	Correct   bool
	CorrectID model.PersonID

	// MasteryCount is the person's lifetime correct count after a
	// correct answer, zero otherwise
	MasteryCount int

	// Delay is how long answer input stays locked before the next card
	Delay time.Duration
}

// Answer scores the selected choice against the current card. A correct
// answer bumps the score and the person's mastery record; an incorrect
// one adds the person to the review list and requeues them at the tail
// unless already queued. State is persisted before returning, then
// answering locks for the pacing delay to prevent double-scoring.
func (e *Engine) Answer(ctx context.Context, selectedID model.PersonID) (*AnswerResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.closed {
		return nil, model.ErrNoActiveGame
	}
	if e.sess.IsGameOver {
		return nil, model.ErrGameComplete
	}
	if e.sess.Current == nil {
		return nil, model.ErrNoCurrentCard
	}
	if e.locked {
		return nil, model.ErrAnswerLocked
	}

	current := *e.sess.Current
	result := &AnswerResult{
		Correct:   selectedID == current.ID,
		CorrectID: current.ID,
	}

	if result.Correct {
		e.sess.CorrectAnswers++
		result.MasteryCount = e.masteryService.RecordCorrect(ctx, e.learner, current.Name)
		result.Delay = e.cfg.CorrectDelay
	} else {
		hash := identity.Hash(current.Name)
		if !e.isMissed(hash) {
			e.sess.Missed = append(e.sess.Missed, current)
		}
		if !e.isQueued(hash) {
			e.sess.Queue = append(e.sess.Queue, current)
		}
		result.Delay = e.cfg.IncorrectDelay
	}

	e.sess.UpdatedAt = e.clock.Now()
	e.sessionService.Save(ctx, e.learner, e.sess)

	if result.Delay > 0 {
		e.locked = true
		e.pacer.schedule(result.Delay, e.unlock)
	}

	return result, nil
}

// isQueued reports whether a person with the given hash is waiting in
// the queue. Caller holds e.mu.
func (e *Engine) isQueued(hash model.NameHash) bool {
	for _, p := range e.sess.Queue {
		if identity.Hash(p.Name) == hash {
			return true
		}
	}
	return false
}

// isMissed reports whether the review list already holds the hash.
// Caller holds e.mu.
func (e *Engine) isMissed(hash model.NameHash) bool {
	for _, p := range e.sess.Missed {
		if identity.Hash(p.Name) == hash {
			return true
		}
	}
	return false
}

func (e *Engine) unlock() {
	e.mu.Lock()
	e.locked = false
	e.mu.Unlock()
}

// Reset discards the saved session and starts fresh over the given
// directory. Mastery history is untouched.
func (e *Engine) Reset(ctx context.Context, people []model.Person) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return model.ErrNoActiveGame
	}
	e.pacer.cancel()
	e.locked = false
	e.sess = nil
	e.mu.Unlock()

	e.sessionService.Clear(ctx, e.learner)
	_, err := e.Start(ctx, people)
	return err
}

// Stats is the live scoreboard shown alongside cards
type Stats struct {
	Total     int
	Remaining int
	Correct   int
	Missed    int
	Phase     model.SessionPhase
}

// Stats returns the current scoreboard
func (e *Engine) Stats() (Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.closed {
		return Stats{}, model.ErrNoActiveGame
	}
	return Stats{
		Total:     e.sess.Total(),
		Remaining: e.sess.Remaining(),
		Correct:   e.sess.CorrectAnswers,
		Missed:    len(e.sess.Missed),
		Phase:     e.sess.Phase(),
	}, nil
}

// Current returns the card being quizzed, if any
func (e *Engine) Current() (*model.Person, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.closed {
		return nil, false, model.ErrNoActiveGame
	}
	if e.sess.Current == nil {
		return nil, false, model.ErrNoCurrentCard
	}
	p := *e.sess.Current
	return &p, e.sess.CurrentIsRetry, nil
}

// Close tears the engine down, invalidating any pending card
// transition. A closed engine rejects all further operations; the
// persisted snapshot is left intact for a later resume.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.locked = false
	e.pacer.cancel()
}
