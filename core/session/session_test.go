package session

import (
	"event-map/core/catalog"
	"event-map/core/sheet"
	"event-map/model"
	"github.com/stretchr/testify/suite"
	"testing"
)

type SessionTestSuite struct {
	suite.Suite

	machine Machine
	events  []model.Event
	mobile  model.Viewport
	desktop model.Viewport
}

func (s *SessionTestSuite) SetupTest() {
	s.machine = NewMachine(sheet.DefaultConfig())
	s.events = catalog.Builtin()
	s.mobile = model.Viewport{Width: 390, Height: 800}
	s.desktop = model.Viewport{Width: 1440, Height: 900}
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) TestNew() {
	sess := s.machine.New("01HZ")
	view := s.machine.View(sess, s.events)

	s.Equal("01HZ", view.Id)
	s.Equal(20, view.Count)
	s.False(view.Empty)
	s.Len(view.Markers, 20)
	s.Equal(catalog.DefaultCenter, view.Center)
	s.Equal(model.PanelResponse{Height: 70}, view.Panel)
	s.Equal([]string{}, view.Categories)
	s.Nil(view.Notice)
}

func (s *SessionTestSuite) TestFilterAndReset() {
	sess := s.machine.New("a")
	sess = s.machine.ToggleCategory(sess, "спорт")
	s.Equal(2, s.machine.View(sess, s.events).Count)

	sess = s.machine.Search(sess, "нет такого")
	view := s.machine.View(sess, s.events)
	s.True(view.Empty)
	s.Empty(view.Markers)

	sess = s.machine.Reset(sess)
	view = s.machine.View(sess, s.events)
	s.Equal("", view.Query)
	s.Equal([]string{}, view.Categories)
	s.Equal(20, view.Count)
}

func (s *SessionTestSuite) TestSelect() {
	event, _ := catalog.Find(s.events, 3)

	tests := []struct {
		name      string
		viewport  model.Viewport
		wantPanel sheet.State
	}{
		{name: "mobile collapses sheet", viewport: s.mobile, wantPanel: sheet.State{Height: 70}},
		{name: "desktop keeps sheet", viewport: s.desktop, wantPanel: sheet.State{Open: true, Height: 400}},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			sess := s.machine.TogglePanel(s.machine.New("a"), s.mobile)
			sess = s.machine.Select(sess, event, tc.viewport)

			s.Equal(model.LatLon{55.7312, 37.6055}, sess.Center)
			s.Equal(tc.wantPanel, sess.Panel)
		})
	}
}

func (s *SessionTestSuite) TestSelectWithoutPlaceKeepsCenter() {
	sess := s.machine.Select(s.machine.New("a"), model.Event{Id: 99}, s.desktop)
	s.Equal(catalog.DefaultCenter, sess.Center)
}

func (s *SessionTestSuite) TestNotice() {
	sess := s.machine.ShowDetails(s.machine.New("a"))
	view := s.machine.View(sess, s.events)
	s.Require().NotNil(view.Notice)
	s.Equal("Альфа-тестирование", view.Notice.Title)

	sess = s.machine.DismissNotice(sess)
	s.Nil(s.machine.View(sess, s.events).Notice)
}

func (s *SessionTestSuite) TestTouch() {
	sess := s.machine.New("a")
	sess = s.machine.Touch(sess, sheet.Touch{Phase: sheet.PhaseStart, Y: 500}, s.mobile)
	s.True(s.machine.View(sess, s.events).Panel.Dragging)

	sess = s.machine.Touch(sess, sheet.Touch{Phase: sheet.PhaseMove, Y: 400}, s.mobile)
	sess = s.machine.Touch(sess, sheet.Touch{Phase: sheet.PhaseEnd}, s.mobile)

	s.Equal(model.PanelResponse{Open: true, Height: 170}, s.machine.View(sess, s.events).Panel)
}
