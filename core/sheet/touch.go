package sheet

import (
	"event-map/model"
	"fmt"
	"sync"
)

type Phase string

const (
	PhaseStart Phase = "start"
	PhaseMove  Phase = "move"
	PhaseEnd   Phase = "end"
)

func ParsePhase(s string) (Phase, error) {
	switch p := Phase(s); p {
	case PhaseStart, PhaseMove, PhaseEnd:
		return p, nil
	}
	return "", fmt.Errorf("unknown touch phase %q", s)
}

// Touch is one event from a touch input source. Only the vertical coordinate is used.
type Touch struct {
	Phase Phase
	Y     float64
}

// Apply feeds one touch into the state machine.
func (c Config) Apply(s State, t Touch, vp model.Viewport) State {
	switch t.Phase {
	case PhaseStart:
		return c.TouchStart(s, t.Y)
	case PhaseMove:
		return c.TouchMove(s, t.Y, vp)
	case PhaseEnd:
		return c.TouchEnd(s, vp)
	}
	return s
}

// TouchSource delivers touches to a subscriber until the returned func is called.
type TouchSource interface {
	Subscribe(handler func(Touch)) (unsubscribe func())
}

// Controller owns a sheet for the lifetime of the element it is bound to.
type Controller struct {
	cfg Config

	mu       sync.Mutex
	state    State
	viewport model.Viewport
}

func NewController(cfg Config, vp model.Viewport) *Controller {
	return &Controller{cfg: cfg, state: cfg.Closed(), viewport: vp}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Resize(vp model.Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = vp
}

func (c *Controller) Toggle() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.cfg.Toggle(c.state, c.viewport)
	return c.state
}

func (c *Controller) Handle(t Touch) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.cfg.Apply(c.state, t, c.viewport)
	return c.state
}

// Bind subscribes the controller to src. The returned release func
// unsubscribes and drops any drag in progress; calling it again is a no-op.
func (c *Controller) Bind(src TouchSource) (release func()) {
	unsubscribe := src.Subscribe(func(t Touch) {
		c.Handle(t)
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()

			c.mu.Lock()
			c.state.Drag = nil
			c.mu.Unlock()
		})
	}
}
