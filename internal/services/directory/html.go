package directory

import (
	"context"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mtrunkat/namedrill/internal/model"
)

// Selectors maps one host's directory markup onto Person fields
type Selectors struct {
	// Card matches one person's container element
	Card string
	// Name is tried in order; the first non-empty text wins
	Name []string
	// Detail matches the text rows under the name; the first is the
	// role, the second (if present) the location
	Detail string
	// Photo matches the profile image inside a card
	Photo string
}

// DefaultSelectors matches the HR directory layout this tool was built
// against. Expect to override these whenever the host ships a redesign.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:   ".EmployeeCardContainer__card",
		Name:   []string{"h5 a", "h5"},
		Detail: `p[data-fabric-component="BodyText"]`,
		Photo:  `img[alt="profile"]`,
	}
}

// localTimeSuffix strips the "| 12:34 local time" tail some hosts
// append to the location row
var localTimeSuffix = regexp.MustCompile(`(?i)\s*\|\s*\d+:\d+\s+local\s+time`)

// HTMLAdapter extracts people from a saved or exported directory page.
// Malformed cards are skipped, never fatal.
type HTMLAdapter struct {
	path      string
	selectors Selectors
	logger    *slog.Logger
}

// NewHTMLAdapter creates an adapter reading the HTML file at path
func NewHTMLAdapter(path string, selectors Selectors, logger *slog.Logger) *HTMLAdapter {
	return &HTMLAdapter{
		path:      path,
		selectors: selectors,
		logger:    logger,
	}
}

var _ Adapter = (*HTMLAdapter)(nil)

// Fetch parses the page and returns the normalized person list
func (a *HTMLAdapter) Fetch(ctx context.Context) ([]model.Person, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return a.parse(f)
}

func (a *HTMLAdapter) parse(r io.Reader) ([]model.Person, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var people []model.Person
	skipped := 0

	doc.Find(a.selectors.Card).Each(func(i int, card *goquery.Selection) {
		var name string
		for _, sel := range a.selectors.Name {
			if text := strings.TrimSpace(card.Find(sel).First().Text()); text != "" {
				name = text
				break
			}
		}

		details := card.Find(a.selectors.Detail)
		role := strings.TrimSpace(details.First().Text())

		var location string
		if details.Length() > 1 {
			location = strings.TrimSpace(localTimeSuffix.ReplaceAllString(details.Eq(1).Text(), ""))
		}

		photo, _ := card.Find(a.selectors.Photo).First().Attr("src")

		if name == "" || role == "" || photo == "" {
			skipped++
			return
		}

		people = append(people, model.Person{
			Name:     name,
			Role:     role,
			Location: location,
			PhotoURL: photo,
		})
	})

	if skipped > 0 {
		a.logger.Warn("skipped malformed directory cards", slog.Int("count", skipped))
	}

	return normalize(people), nil
}
