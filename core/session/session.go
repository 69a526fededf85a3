// Package session holds one user's view of the map: the active filter, the
// map center, the bottom sheet and the details notice. Every action is a
// pure transition returning the next Session.
package session

import (
	"event-map/common/constant"
	"event-map/core/catalog"
	"event-map/core/sheet"
	"event-map/model"
)

type Session struct {
	Id     string        `json:"id"`
	Filter catalog.State `json:"filter"`
	Center model.LatLon  `json:"center"`
	Panel  sheet.State   `json:"panel"`
	Notice bool          `json:"notice"`
}

// Machine applies actions to sessions using one sheet configuration.
type Machine struct {
	Sheet sheet.Config
}

func NewMachine(cfg sheet.Config) Machine {
	return Machine{Sheet: cfg}
}

func (m Machine) New(id string) Session {
	return Session{
		Id:     id,
		Filter: catalog.NewState(),
		Center: catalog.DefaultCenter,
		Panel:  m.Sheet.Closed(),
	}
}

func (m Machine) Search(s Session, query string) Session {
	s.Filter = s.Filter.SetQuery(query)
	return s
}

func (m Machine) ToggleCategory(s Session, category string) Session {
	s.Filter = s.Filter.ToggleCategory(category)
	return s
}

func (m Machine) Reset(s Session) Session {
	s.Filter = s.Filter.Reset()
	return s
}

// Select centers the map on event. On a narrow viewport the sheet is
// collapsed so the map is visible.
func (m Machine) Select(s Session, event model.Event, vp model.Viewport) Session {
	s.Center = catalog.Focus(s.Center, event)
	if m.Sheet.Narrow(vp) {
		s.Panel = m.Sheet.Closed()
	}
	return s
}

// ShowDetails raises the static notice. No per-event detail exists yet.
func (m Machine) ShowDetails(s Session) Session {
	s.Notice = true
	return s
}

func (m Machine) DismissNotice(s Session) Session {
	s.Notice = false
	return s
}

func (m Machine) TogglePanel(s Session, vp model.Viewport) Session {
	s.Panel = m.Sheet.Toggle(s.Panel, vp)
	return s
}

func (m Machine) Touch(s Session, touch sheet.Touch, vp model.Viewport) Session {
	s.Panel = m.Sheet.Apply(s.Panel, touch, vp)
	return s
}

// View derives what the client renders from s and the current catalog.
func (m Machine) View(s Session, events []model.Event) model.SessionViewResponse {
	filtered := s.Filter.Apply(events)

	categories := s.Filter.Categories
	if categories == nil {
		categories = []string{}
	}

	view := model.SessionViewResponse{
		Id:         s.Id,
		Query:      s.Filter.Query,
		Categories: categories,
		Events:     filtered,
		Count:      len(filtered),
		Empty:      len(filtered) == 0,
		Markers:    catalog.Markers(filtered),
		Center:     s.Center,
		Panel: model.PanelResponse{
			Open:     s.Panel.Open,
			Height:   s.Panel.Height,
			Dragging: s.Panel.Drag != nil,
		},
	}

	if s.Notice {
		view.Notice = &model.NoticeResponse{Title: constant.NoticeTitle, Message: constant.NoticeMessage}
	}

	return view
}
