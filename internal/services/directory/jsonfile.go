package directory

import (
	"context"
	"encoding/json"
	"os"

	"github.com/mtrunkat/namedrill/internal/model"
)

// jsonPerson is the roster file entry format
type jsonPerson struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	PhotoURL string `json:"photo_url"`
}

// JSONAdapter reads the directory from a JSON roster file: an array of
// {name, role, location, photo_url} objects. Useful when the directory
// is exported by some other tool rather than scraped.
type JSONAdapter struct {
	path string
}

// NewJSONAdapter creates an adapter reading the roster file at path
func NewJSONAdapter(path string) *JSONAdapter {
	return &JSONAdapter{path: path}
}

var _ Adapter = (*JSONAdapter)(nil)

// Fetch decodes the roster file and returns the normalized person list
func (a *JSONAdapter) Fetch(ctx context.Context) ([]model.Person, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, err
	}

	var entries []jsonPerson
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	people := make([]model.Person, 0, len(entries))
	for _, e := range entries {
		people = append(people, model.Person{
			Name:     e.Name,
			Role:     e.Role,
			Location: e.Location,
			PhotoURL: e.PhotoURL,
		})
	}

	return normalize(people), nil
}

// StaticAdapter serves a fixed person list (useful for testing and for
// callers that already hold a roster)
type StaticAdapter struct {
	people []model.Person
}

// NewStaticAdapter creates an adapter over the given list
func NewStaticAdapter(people []model.Person) *StaticAdapter {
	return &StaticAdapter{people: people}
}

var _ Adapter = (*StaticAdapter)(nil)

// Fetch returns the normalized person list
func (a *StaticAdapter) Fetch(ctx context.Context) ([]model.Person, error) {
	return normalize(a.people), nil
}
