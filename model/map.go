package model

type LatLon [2]float64

type TileLayer struct {
	Url         string `json:"url"`
	Attribution string `json:"attribution"`
}

type MapConfigResponse struct {
	Center LatLon    `json:"center"`
	Zoom   int       `json:"zoom"`
	Tiles  TileLayer `json:"tiles"`
}

type Marker struct {
	EventId int     `json:"event_id"`
	Title   string  `json:"title"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
