package catalog

import (
	"event-map/model"
	"slices"
)

// State is the user's active filter. Categories keep the order they were selected in.
type State struct {
	Query      string   `json:"query"`
	Categories []string `json:"categories"`
}

func NewState() State {
	return State{Categories: []string{}}
}

func (s State) SetQuery(query string) State {
	s.Query = query
	return s
}

// ToggleCategory selects category when it is not selected and deselects it otherwise.
func (s State) ToggleCategory(category string) State {
	if i := slices.Index(s.Categories, category); i >= 0 {
		s.Categories = slices.Delete(slices.Clone(s.Categories), i, i+1)
		return s
	}

	s.Categories = append(slices.Clone(s.Categories), category)
	return s
}

func (s State) Selected(category string) bool {
	return slices.Contains(s.Categories, category)
}

// Reset clears both filters regardless of their current values.
func (s State) Reset() State {
	return NewState()
}

func (s State) Apply(events []model.Event) []model.Event {
	return Filter(events, s.Query, s.Categories)
}
