package model

type Viewport struct {
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type ToggleCategoryRequest struct {
	Category string `json:"category" validate:"required,max=64"`
}

type SelectEventRequest struct {
	EventId  int      `json:"event_id" validate:"required"`
	Viewport Viewport `json:"viewport"`
}

type DetailsRequest struct {
	EventId int `json:"event_id" validate:"required"`
}

type PanelToggleRequest struct {
	Viewport Viewport `json:"viewport"`
}

type PanelTouchRequest struct {
	Phase    string   `json:"phase" validate:"required,oneof=start move end"`
	Y        float64  `json:"y"`
	Viewport Viewport `json:"viewport"`
}

type PanelResponse struct {
	Open     bool    `json:"open"`
	Height   float64 `json:"height"`
	Dragging bool    `json:"dragging"`
}

type NoticeResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type SessionViewResponse struct {
	Id         string          `json:"id"`
	Query      string          `json:"query"`
	Categories []string        `json:"categories"`
	Events     []Event         `json:"events"`
	Count      int             `json:"count"`
	Empty      bool            `json:"empty"`
	Markers    []Marker        `json:"markers"`
	Center     LatLon          `json:"center"`
	Panel      PanelResponse   `json:"panel"`
	Notice     *NoticeResponse `json:"notice,omitempty"`
}
