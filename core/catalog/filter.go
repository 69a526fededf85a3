// Package catalog filters the event catalog by free text and category tags,
// and derives what the map shows from the result.
package catalog

import (
	"event-map/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
)

// matcher folds text for case-insensitive comparison. A Caser keeps state,
// so each Filter call owns its own matcher.
type matcher struct {
	lower cases.Caser
}

func newMatcher() *matcher {
	return &matcher{lower: cases.Lower(language.Russian)}
}

func (m *matcher) fold(s string) string {
	return m.lower.String(s)
}

func (m *matcher) contains(field, needle string) bool {
	return strings.Contains(m.fold(field), needle)
}

// matchesText probes the fields a search query is compared against.
func (m *matcher) matchesText(event model.Event, needle string) bool {
	if m.contains(event.Title, needle) || m.contains(event.Description, needle) || m.contains(event.ShortTitle, needle) {
		return true
	}

	return event.Place != nil && m.contains(event.Place.Name, needle)
}

// matchesTag probes the fields a category tag is compared against.
func (m *matcher) matchesTag(event model.Event, tag string) bool {
	if m.contains(event.Title, tag) || m.contains(event.Description, tag) || m.contains(event.ShortTitle, tag) {
		return true
	}

	for _, category := range event.Categories {
		if m.contains(category.Name, tag) {
			return true
		}
	}

	return false
}

// Filter returns the events that pass both the text query and the category
// filter, in catalog order. An empty query or an empty category list disables
// that filter. Events match a category filter when they match any one of the
// selected categories.
func Filter(events []model.Event, query string, categories []string) []model.Event {
	m := newMatcher()

	needle := m.fold(query)
	tags := make([]string, 0, len(categories))
	for _, category := range categories {
		tags = append(tags, m.fold(category))
	}

	result := make([]model.Event, 0, len(events))
	for _, event := range events {
		if needle != "" && !m.matchesText(event, needle) {
			continue
		}

		if len(tags) > 0 && !matchesAny(m, event, tags) {
			continue
		}

		result = append(result, event)
	}

	return result
}

func matchesAny(m *matcher, event model.Event, tags []string) bool {
	for _, tag := range tags {
		if m.matchesTag(event, tag) {
			return true
		}
	}
	return false
}
