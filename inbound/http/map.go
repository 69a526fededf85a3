package http

import (
	"event-map/common/constant"
	"event-map/model"
	"github.com/spf13/viper"
	"net/http"
)

type MapHttp struct {
	config model.MapConfigResponse
}

func RegisterMapHttp(mux *http.ServeMux, cfg *viper.Viper) *MapHttp {
	cfg.SetDefault("map.center.lat", constant.DefaultCenterLat)
	cfg.SetDefault("map.center.lon", constant.DefaultCenterLon)
	cfg.SetDefault("map.zoom", constant.DefaultZoom)
	cfg.SetDefault("map.tiles.url", constant.DefaultTileUrl)
	cfg.SetDefault("map.tiles.attribution", constant.DefaultTileAttribution)

	in := &MapHttp{
		config: model.MapConfigResponse{
			Center: model.LatLon{cfg.GetFloat64("map.center.lat"), cfg.GetFloat64("map.center.lon")},
			Zoom:   cfg.GetInt("map.zoom"),
			Tiles: model.TileLayer{
				Url:         cfg.GetString("map.tiles.url"),
				Attribution: cfg.GetString("map.tiles.attribution"),
			},
		},
	}

	mux.HandleFunc("GET /api/map", in.get)

	return in
}

func (in MapHttp) get(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, in.config)
}
