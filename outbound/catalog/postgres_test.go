package catalog

import (
	"context"
	"event-map/model"
	"event-map/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
	"log/slog"
	"testing"
)

var eventColumns = []string{"id", "title", "short_title", "description", "price", "place_name", "place_address", "place_lat", "place_lon", "categories"}

type PostgresTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface
}

func (s *PostgresTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *PostgresTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestPostgresTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) TestLoad() {
	lat, lon := 55.7312, 37.6055

	tests := []struct {
		name      string
		setupMock func()
		expected  []model.Event
		wantErr   bool
	}{
		{
			name: "database error",
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM events").WillReturnError(fmt.Errorf("database error"))
			},
			wantErr: true,
		},
		{
			name: "empty table",
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM events").WillReturnRows(pgxmock.NewRows(eventColumns))
			},
			expected: []model.Event{},
		},
		{
			name: "rows with and without place",
			setupMock: func() {
				rows := pgxmock.NewRows(eventColumns).
					AddRow(int32(3), "Фестиваль уличной еды", "Фестиваль еды", "Фудтраки", "вход свободный",
						pgtype.Text{String: "Парк Горького", Valid: true}, pgtype.Text{String: "ул. Крымский Вал, 9", Valid: true},
						pgtype.Float8{Float64: lat, Valid: true}, pgtype.Float8{Float64: lon, Valid: true},
						[]string{"фестиваль", "гастрономия"}).
					AddRow(int32(21), "Онлайн-лекция", "Лекция", "", "бесплатно",
						pgtype.Text{}, pgtype.Text{}, pgtype.Float8{}, pgtype.Float8{},
						[]string{})

				s.PgxMock.ExpectQuery("SELECT (.+) FROM events").WillReturnRows(rows)
			},
			expected: []model.Event{
				{
					Id:          3,
					Title:       "Фестиваль уличной еды",
					ShortTitle:  "Фестиваль еды",
					Description: "Фудтраки",
					Price:       "вход свободный",
					Place:       &model.Place{Name: "Парк Горького", Address: "ул. Крымский Вал, 9", Lat: &lat, Lon: &lon},
					Categories:  []model.Category{{Name: "фестиваль"}, {Name: "гастрономия"}},
				},
				{
					Id:         21,
					Title:      "Онлайн-лекция",
					ShortTitle: "Лекция",
					Price:      "бесплатно",
					Categories: []model.Category{},
				},
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			events, err := PostgresSource{Querier: s.Querier}.Load(context.Background())
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
				s.Equal(tc.expected, events)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *PostgresTestSuite) TestSeed() {
	lat, lon := 55.7312, 37.6055
	events := []model.Event{
		{
			Id:         3,
			Title:      "Фестиваль уличной еды",
			Place:      &model.Place{Name: "Парк Горького", Address: "ул. Крымский Вал, 9", Lat: &lat, Lon: &lon},
			Categories: []model.Category{{Name: "фестиваль"}},
		},
		{Id: 21, Title: "Онлайн-лекция"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "begin error",
			setupMock: func() {
				s.PgxMock.ExpectBegin().WillReturnError(fmt.Errorf("begin error"))
			},
			wantErr: true,
		},
		{
			name: "upsert error",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO events").
					WithArgs(int32(3), "Фестиваль уличной еды", "", "", "",
						pgtype.Text{String: "Парк Горького", Valid: true}, pgtype.Text{String: "ул. Крымский Вал, 9", Valid: true},
						pgtype.Float8{Float64: lat, Valid: true}, pgtype.Float8{Float64: lon, Valid: true},
						[]string{"фестиваль"}).
					WillReturnError(fmt.Errorf("upsert error"))
				s.PgxMock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "success",
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("INSERT INTO events").
					WithArgs(int32(3), "Фестиваль уличной еды", "", "", "",
						pgtype.Text{String: "Парк Горького", Valid: true}, pgtype.Text{String: "ул. Крымский Вал, 9", Valid: true},
						pgtype.Float8{Float64: lat, Valid: true}, pgtype.Float8{Float64: lon, Valid: true},
						[]string{"фестиваль"}).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectExec("INSERT INTO events").
					WithArgs(int32(21), "Онлайн-лекция", "", "", "",
						pgtype.Text{}, pgtype.Text{}, pgtype.Float8{}, pgtype.Float8{},
						[]string{}).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				s.PgxMock.ExpectCommit()
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			err := Seeder{Db: s.PgxMock, Querier: s.Querier}.Seed(context.Background(), events)
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
