// Package directory turns a host-specific people source into the
// normalized Person list the game engine consumes. Scraping details are
// inherently fragile and bespoke, so they live behind one stable
// Adapter interface and vary per implementation.
package directory

import (
	"context"

	"github.com/mtrunkat/namedrill/internal/identity"
	"github.com/mtrunkat/namedrill/internal/model"
)

// Adapter supplies the current directory. Implementations must return
// people with non-empty Name, Role, and PhotoURL and unique IDs; the
// game engine treats that as a precondition.
type Adapter interface {
	Fetch(ctx context.Context) ([]model.Person, error)
}

// normalize drops malformed entries and collapses duplicate identities.
// Two people whose names normalize to the same ID collapse to the first
// occurrence; with no further identity signal available there is
// nothing better to do with the second.
func normalize(people []model.Person) []model.Person {
	seen := make(map[model.PersonID]struct{}, len(people))
	out := make([]model.Person, 0, len(people))
	for _, p := range people {
		if p.Name == "" || p.Role == "" || p.PhotoURL == "" {
			continue
		}
		id := identity.PersonID(p.Name)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		p.ID = id
		out = append(out, p)
	}
	return out
}
