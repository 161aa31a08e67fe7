// Package identity derives stable, privacy-preserving identifiers from
// display names. Hashes are what gets persisted in place of names.
package identity

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mtrunkat/namedrill/internal/model"
)

// Hash digests a name into a base-36 string. The accumulator is 31*h+c
// over the UTF-16 code units of the name with 32-bit signed wraparound,
// so the same name always yields the same hash across processes.
//
// Not cryptographic: collisions are possible and tolerated. The point is
// to avoid persisting the name itself, not to resist preimage attacks.
func Hash(name string) model.NameHash {
	var h int32
	for _, unit := range utf16.Encode([]rune(name)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return model.NameHash(strconv.FormatInt(v, 36))
}

// PersonID derives the display-level id used to compare answer choices:
// the lowercased name with everything outside [a-z0-9] stripped.
// Only unique per extraction pass; two people sharing a normalized name
// collapse to one entry, which the directory adapter resolves.
func PersonID(name string) model.PersonID {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return model.PersonID(b.String())
}

// HashAll maps a person list to its hash sequence, preserving order
func HashAll(people []model.Person) []model.NameHash {
	hashes := make([]model.NameHash, len(people))
	for i, p := range people {
		hashes[i] = Hash(p.Name)
	}
	return hashes
}

// Index builds a hash -> person lookup for resolving persisted hashes
// back to live records from a freshly fetched directory
func Index(people []model.Person) map[model.NameHash]model.Person {
	idx := make(map[model.NameHash]model.Person, len(people))
	for _, p := range people {
		idx[Hash(p.Name)] = p
	}
	return idx
}
