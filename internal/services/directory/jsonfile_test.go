package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mtrunkat/namedrill/internal/model"
)

type JSONAdapterSuite struct {
	suite.Suite
	ctx context.Context
}

func TestJSONAdapterSuite(t *testing.T) {
	suite.Run(t, new(JSONAdapterSuite))
}

func (s *JSONAdapterSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *JSONAdapterSuite) writeRoster(content string) string {
	path := filepath.Join(s.T().TempDir(), "people.json")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0600))
	return path
}

func (s *JSONAdapterSuite) TestParsesRosterFile() {
	path := s.writeRoster(`[
		{"name": "Jane Doe", "role": "Engineer", "location": "Berlin", "photo_url": "https://example.com/jane.jpg"},
		{"name": "John Smith", "role": "Designer", "photo_url": "https://example.com/john.jpg"}
	]`)

	people, err := NewJSONAdapter(path).Fetch(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(people, 2)

	s.Equal(model.PersonID("janedoe"), people[0].ID)
	s.Equal("Berlin", people[0].Location)
	s.Equal("John Smith", people[1].Name)
}

func (s *JSONAdapterSuite) TestDropsIncompleteEntries() {
	path := s.writeRoster(`[
		{"name": "Jane Doe", "role": "Engineer", "photo_url": "https://example.com/jane.jpg"},
		{"name": "Missing Role", "photo_url": "https://example.com/x.jpg"},
		{"role": "Missing Name", "photo_url": "https://example.com/y.jpg"}
	]`)

	people, err := NewJSONAdapter(path).Fetch(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(people, 1)
	s.Equal("Jane Doe", people[0].Name)
}

func (s *JSONAdapterSuite) TestFailsOnInvalidJSON() {
	path := s.writeRoster(`{not json`)

	_, err := NewJSONAdapter(path).Fetch(s.ctx)
	s.Error(err)
}

func (s *JSONAdapterSuite) TestFailsForMissingFile() {
	_, err := NewJSONAdapter("/nonexistent/people.json").Fetch(s.ctx)
	s.Error(err)
}

func (s *JSONAdapterSuite) TestStaticAdapterNormalizes() {
	adapter := NewStaticAdapter([]model.Person{
		{Name: "Jane Doe", Role: "Engineer", PhotoURL: "https://example.com/jane.jpg"},
		{Name: "", Role: "Ghost", PhotoURL: "https://example.com/ghost.jpg"},
	})

	people, err := adapter.Fetch(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(people, 1)
	s.Equal(model.PersonID("janedoe"), people[0].ID)
}
