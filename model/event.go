package model

type Category struct {
	Name string `json:"name" yaml:"name"`
}

type Place struct {
	Name    string   `json:"name" yaml:"name"`
	Address string   `json:"address" yaml:"address"`
	Lat     *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

// Coordinates reports the place position. ok is false unless both lat and lon are set.
func (p *Place) Coordinates() (lat, lon float64, ok bool) {
	if p == nil || p.Lat == nil || p.Lon == nil {
		return 0, 0, false
	}

	return *p.Lat, *p.Lon, true
}

type Event struct {
	Id          int        `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	ShortTitle  string     `json:"short_title" yaml:"short_title"`
	Description string     `json:"description" yaml:"description"`
	Price       string     `json:"price" yaml:"price"`
	Place       *Place     `json:"place,omitempty" yaml:"place,omitempty"`
	Categories  []Category `json:"categories" yaml:"categories"`
}

// Plottable reports whether the event can be placed on the map.
func (e Event) Plottable() bool {
	_, _, ok := e.Place.Coordinates()
	return ok
}

type ListEventsRequest struct {
	Query      string   `validate:"max=200"`
	Categories []string `validate:"max=32,dive,required,max=64"`
}

type ListEventsResponse struct {
	Events []Event `json:"events"`
	Count  int     `json:"count"`
}

type EventStatsResponse struct {
	Id       int   `json:"id"`
	Selected int64 `json:"selected"`
	Details  int64 `json:"details"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}
