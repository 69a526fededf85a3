package catalog

import "event-map/model"

func coord(v float64) *float64 {
	return &v
}

func tags(names ...string) []model.Category {
	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, model.Category{Name: name})
	}
	return categories
}

// Builtin returns a fresh copy of the compiled-in catalog of Moscow events.
func Builtin() []model.Event {
	return []model.Event{
		{
			Id:          1,
			Title:       "Концерт симфонического оркестра",
			ShortTitle:  "Симфонический концерт",
			Description: "Прекрасная классическая музыка в исполнении лучших музыкантов",
			Price:       "от 1000 руб.",
			Place: &model.Place{
				Name:    "Концертный зал Чайковского",
				Address: "Москва, ул. Тверская, 31",
				Lat:     coord(55.7602),
				Lon:     coord(37.6085),
			},
			Categories: tags("концерт"),
		},
		{
			Id:          2,
			Title:       "Выставка современного искусства",
			ShortTitle:  "Современное искусство",
			Description: "Работы молодых российских художников",
			Price:       "бесплатно",
			Place: &model.Place{
				Name:    "Галерея современного искусства",
				Address: "Москва, ул. Пречистенка, 19",
				Lat:     coord(55.7402),
				Lon:     coord(37.5985),
			},
			Categories: tags("выставка"),
		},
		{
			Id:          3,
			Title:       "Фестиваль уличной еды",
			ShortTitle:  "Фестиваль еды",
			Description: "Лучшие фудтраки города в одном месте",
			Price:       "вход свободный",
			Place: &model.Place{
				Name:    "Парк Горького",
				Address: "Москва, ул. Крымский Вал, 9",
				Lat:     coord(55.7312),
				Lon:     coord(37.6055),
			},
			Categories: tags("фестиваль", "гастрономия"),
		},
		{
			Id:          4,
			Title:       "Спектакль \"Чайка\"",
			ShortTitle:  "Чайка",
			Description: "Классическая постановка по пьесе Чехова",
			Price:       "от 1500 руб.",
			Place: &model.Place{
				Name:    "МХТ им. Чехова",
				Address: "Москва, Камергерский пер., 3",
				Lat:     coord(55.7605),
				Lon:     coord(37.6138),
			},
			Categories: tags("театр"),
		},
		{
			Id:          5,
			Title:       "Футбольный матч ЦСКА - Спартак",
			ShortTitle:  "Футбол ЦСКА - Спартак",
			Description: "Напряженная игра между принципиальными соперниками",
			Price:       "от 800 руб.",
			Place: &model.Place{
				Name:    "ВЭБ Арена",
				Address: "Москва, ул. 3-я Песчаная, 2А",
				Lat:     coord(55.7984),
				Lon:     coord(37.5168),
			},
			Categories: tags("спорт"),
		},
		{
			Id:          6,
			Title:       "Детский кукольный театр",
			ShortTitle:  "Кукольный театр",
			Description: "Волшебные представления для детей",
			Price:       "от 500 руб.",
			Place: &model.Place{
				Name:    "Театр кукол им. Образцова",
				Address: "Москва, ул. Садовая-Самотечная, 3",
				Lat:     coord(55.7732),
				Lon:     coord(37.6145),
			},
			Categories: tags("детям", "театр"),
		},
		{
			Id:          7,
			Title:       "Ночная вечеринка в клубе",
			ShortTitle:  "Ночная вечеринка",
			Description: "Лучшие диджеи и атмосферная музыка",
			Price:       "от 1000 руб.",
			Place: &model.Place{
				Name:    "Клуб \"Арма\"",
				Address: "Москва, Пресненская наб., 8",
				Lat:     coord(55.7490),
				Lon:     coord(37.5395),
			},
			Categories: tags("вечеринка"),
		},
		{
			Id:          8,
			Title:       "Лекция о современном искусстве",
			ShortTitle:  "Лекция об искусстве",
			Description: "Искусствовед рассказывает о современных трендах",
			Price:       "бесплатно",
			Place: &model.Place{
				Name:    "Центр современного искусства \"Винзавод\"",
				Address: "Москва, 4-й Сыромятнический пер., 1/8",
				Lat:     coord(55.7465),
				Lon:     coord(37.6542),
			},
			Categories: tags("лекция", "искусство"),
		},
		{
			Id:          9,
			Title:       "Мастер-класс по керамике",
			ShortTitle:  "Керамика",
			Description: "Учимся создавать изделия из глины",
			Price:       "от 2000 руб.",
			Place: &model.Place{
				Name:    "Студия керамики \"Гончар\"",
				Address: "Москва, ул. Пятницкая, 64",
				Lat:     coord(55.7390),
				Lon:     coord(37.6275),
			},
			Categories: tags("мастер-класс"),
		},
		{
			Id:          10,
			Title:       "Фестиваль уличных театров",
			ShortTitle:  "Уличные театры",
			Description: "Театральные представления под открытым небом",
			Price:       "вход свободный",
			Place: &model.Place{
				Name:    "Парк \"Зарядье\"",
				Address: "Москва, ул. Варварка, 6",
				Lat:     coord(55.7510),
				Lon:     coord(37.6270),
			},
			Categories: tags("фестиваль", "театр"),
		},
		{
			Id:          11,
			Title:       "Выставка фотографии \"Город в деталях\"",
			ShortTitle:  "Фотовыставка",
			Description: "Уникальные ракурсы городской жизни",
			Price:       "от 300 руб.",
			Place: &model.Place{
				Name:    "Мультимедиа Арт Музей",
				Address: "Москва, ул. Остоженка, 16",
				Lat:     coord(55.7408),
				Lon:     coord(37.6042),
			},
			Categories: tags("выставка", "искусство"),
		},
		{
			Id:          12,
			Title:       "Концерт джазовой музыки",
			ShortTitle:  "Джазовый концерт",
			Description: "Живое исполнение классических джазовых композиций",
			Price:       "от 1200 руб.",
			Place: &model.Place{
				Name:    "Джаз-клуб \"Игорь Бутман\"",
				Address: "Москва, ул. Поварская, 52",
				Lat:     coord(55.7560),
				Lon:     coord(37.5935),
			},
			Categories: tags("концерт"),
		},
		{
			Id:          13,
			Title:       "Экскурсия по историческому центру",
			ShortTitle:  "Экскурсия по центру",
			Description: "Прогулка по самым знаковым местам Москвы",
			Price:       "бесплатно",
			Place: &model.Place{
				Name:    "Площадь Революции",
				Address: "Москва, пл. Революции",
				Lat:     coord(55.7569),
				Lon:     coord(37.6210),
			},
			Categories: tags("экскурсия"),
		},
		{
			Id:          14,
			Title:       "Показ модной коллекции",
			ShortTitle:  "Показ моды",
			Description: "Демонстрация новой коллекции российского дизайнера",
			Price:       "от 1500 руб.",
			Place: &model.Place{
				Name:    "ЦУМ",
				Address: "Москва, ул. Петровка, 2",
				Lat:     coord(55.7615),
				Lon:     coord(37.6175),
			},
			Categories: tags("мода", "шоу"),
		},
		{
			Id:          15,
			Title:       "Кулинарный мастер-класс",
			ShortTitle:  "Кулинария",
			Description: "Учимся готовить блюда итальянской кухни",
			Price:       "от 2500 руб.",
			Place: &model.Place{
				Name:    "Кулинарная студия \"Вкусно\"",
				Address: "Москва, Ленинский пр-т, 37",
				Lat:     coord(55.6975),
				Lon:     coord(37.5732),
			},
			Categories: tags("мастер-класс", "гастрономия"),
		},
		{
			Id:          16,
			Title:       "Рок-фестиваль \"Нашествие\"",
			ShortTitle:  "Рок-фестиваль",
			Description: "Крупнейший рок-фестиваль страны",
			Price:       "от 2000 руб.",
			Place: &model.Place{
				Name:    "Стадион \"Лужники\"",
				Address: "Москва, Лужнецкая наб., 24",
				Lat:     coord(55.7158),
				Lon:     coord(37.5535),
			},
			Categories: tags("фестиваль", "концерт"),
		},
		{
			Id:          17,
			Title:       "Выставка автомобилей ретро-класса",
			ShortTitle:  "Ретро-автомобили",
			Description: "Коллекция редких автомобилей прошлого века",
			Price:       "от 500 руб.",
			Place: &model.Place{
				Name:    "Музей техники",
				Address: "Москва, ул. Болотная, 13",
				Lat:     coord(55.7440),
				Lon:     coord(37.6215),
			},
			Categories: tags("выставка"),
		},
		{
			Id:          18,
			Title:       "Стендап-вечер",
			ShortTitle:  "Стендап",
			Description: "Выступления лучших комиков города",
			Price:       "от 800 руб.",
			Place: &model.Place{
				Name:    "Comedy Club",
				Address: "Москва, ул. Тверская, 18",
				Lat:     coord(55.7630),
				Lon:     coord(37.6080),
			},
			Categories: tags("шоу", "юмор"),
		},
		{
			Id:          19,
			Title:       "Йога в парке",
			ShortTitle:  "Йога",
			Description: "Утренние занятия йогой на свежем воздухе",
			Price:       "бесплатно",
			Place: &model.Place{
				Name:    "Парк \"Сокольники\"",
				Address: "Москва, ул. Сокольнический Вал, 1",
				Lat:     coord(55.7925),
				Lon:     coord(37.6785),
			},
			Categories: tags("спорт", "оздоровление"),
		},
		{
			Id:          20,
			Title:       "Кинофестиваль независимого кино",
			ShortTitle:  "Кинофестиваль",
			Description: "Показы лучших работ независимых режиссеров",
			Price:       "от 400 руб.",
			Place: &model.Place{
				Name:    "Кинотеатр \"Иллюзион\"",
				Address: "Москва, ул. Котельническая наб., 1/15",
				Lat:     coord(55.7470),
				Lon:     coord(37.6420),
			},
			Categories: tags("кино", "фестиваль"),
		},
	}
}
