package model

// PersonID identifies a person within one directory extraction pass.
// It is derived from the display name and is only unique per pass.
type PersonID string

// NameHash is a non-reversible digest of a person's name, used as the
// storage key wherever a person would otherwise be referenced so that no
// personally identifiable string is ever persisted.
type NameHash string

// LearnerID identifies the user whose progress is being tracked.
// A single-profile deployment uses DefaultLearner.
type LearnerID string

// DefaultLearner is the learner ID used when none is specified
const DefaultLearner LearnerID = "local"

// Person is one directory entry. People are rebuilt fresh on every
// extraction pass and are never persisted directly.
type Person struct {
	ID       PersonID
	Name     string
	Role     string
	Location string // optional
	PhotoURL string
}
