package redis

import (
	"fmt"

	"github.com/mtrunkat/namedrill/internal/model"
)

// Key prefix for all flashcards data
const keyPrefix = "namedrill"

// masteryKey returns the Redis key for a learner's mastery map
func masteryKey(learner model.LearnerID) string {
	return fmt.Sprintf("%s:mastery:%s", keyPrefix, learner)
}

// sessionKey returns the Redis key for a learner's session snapshot
func sessionKey(learner model.LearnerID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, learner)
}
