package constant

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Tags offered as filter buttons, in display order.
var CategoryTags = []string{
	"концерт", "выставка", "театр", "кино", "фестиваль",
	"спорт", "детям", "экскурсия", "вечеринка", "лекция",
	"мастер-класс", "шоу", "гастрономия", "мода", "искусство",
}

const (
	DefaultCenterLat = 55.7558
	DefaultCenterLon = 37.6173
	DefaultZoom      = 13

	DefaultTileUrl         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

const (
	NoticeTitle   = "Альфа-тестирование"
	NoticeMessage = "Данные будут доступны позже"
)
