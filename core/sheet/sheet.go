// Package sheet implements the mobile bottom sheet: a panel whose height
// follows a vertical drag and snaps to closed, partial or full on release.
package sheet

import (
	"event-map/model"
	"math"
)

type Config struct {
	CollapsedHeight float64
	TopMargin       float64
	CloseThreshold  float64
	ExpandRatio     float64
	OpenRatio       float64
	OpenCap         float64
	NarrowWidth     float64
}

func DefaultConfig() Config {
	return Config{
		CollapsedHeight: 70,
		TopMargin:       40,
		CloseThreshold:  100,
		ExpandRatio:     0.6,
		OpenRatio:       0.6,
		OpenCap:         400,
		NarrowWidth:     768,
	}
}

// DragOrigin is captured on touch start and dropped on touch end.
type DragOrigin struct {
	StartY      float64 `json:"start_y"`
	StartHeight float64 `json:"start_height"`
}

type State struct {
	Open   bool        `json:"open"`
	Height float64     `json:"height"`
	Drag   *DragOrigin `json:"drag,omitempty"`
}

func (c Config) Closed() State {
	return State{Height: c.CollapsedHeight}
}

// Narrow reports whether vp uses the mobile layout.
func (c Config) Narrow(vp model.Viewport) bool {
	return vp.Width <= c.NarrowWidth
}

// MaxHeight is the fully expanded height for vp. It never drops below the collapsed height.
func (c Config) MaxHeight(vp model.Viewport) float64 {
	return math.Max(vp.Height-c.TopMargin, c.CollapsedHeight)
}

func (c Config) clamp(height float64, vp model.Viewport) float64 {
	return math.Min(math.Max(height, c.CollapsedHeight), c.MaxHeight(vp))
}

// Toggle opens a closed sheet to its default height and closes an open one.
func (c Config) Toggle(s State, vp model.Viewport) State {
	if s.Open {
		return c.Closed()
	}

	return State{Open: true, Height: math.Min(c.OpenRatio*vp.Height, c.OpenCap)}
}

// TouchStart begins a drag. It is accepted while closed so the handle can be dragged open.
func (c Config) TouchStart(s State, y float64) State {
	s.Drag = &DragOrigin{StartY: y, StartHeight: s.Height}
	return s
}

// TouchMove resizes the sheet by the distance travelled since TouchStart.
// Moving up grows the sheet. Without a preceding TouchStart it does nothing.
func (c Config) TouchMove(s State, y float64, vp model.Viewport) State {
	if s.Drag == nil {
		return s
	}

	s.Height = c.clamp(s.Drag.StartHeight+(s.Drag.StartY-y), vp)
	if s.Height > c.CollapsedHeight {
		s.Open = true
	}

	return s
}

// TouchEnd snaps the sheet: below the close threshold it closes, above the
// expand ratio of the viewport it fills the screen, otherwise it stays put.
func (c Config) TouchEnd(s State, vp model.Viewport) State {
	s.Drag = nil

	switch {
	case s.Height < c.CloseThreshold:
		return c.Closed()
	case s.Height > c.ExpandRatio*vp.Height:
		s.Height = c.MaxHeight(vp)
		s.Open = true
	}

	return s
}
