package catalog

import (
	"event-map/common/constant"
	"event-map/model"
)

var DefaultCenter = model.LatLon{constant.DefaultCenterLat, constant.DefaultCenterLon}

// Focus returns the position the map should center on after event is picked.
// Events without coordinates leave the current center in place.
func Focus(current model.LatLon, event model.Event) model.LatLon {
	lat, lon, ok := event.Place.Coordinates()
	if !ok {
		return current
	}
	return model.LatLon{lat, lon}
}

// Markers returns one pin per plottable event, in the order given.
func Markers(events []model.Event) []model.Marker {
	markers := make([]model.Marker, 0, len(events))
	for _, event := range events {
		lat, lon, ok := event.Place.Coordinates()
		if !ok {
			continue
		}

		markers = append(markers, model.Marker{
			EventId: event.Id,
			Title:   event.Title,
			Lat:     lat,
			Lon:     lon,
		})
	}
	return markers
}

func Find(events []model.Event, id int) (model.Event, bool) {
	for _, event := range events {
		if event.Id == id {
			return event, true
		}
	}
	return model.Event{}, false
}
