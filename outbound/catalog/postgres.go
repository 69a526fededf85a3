package catalog

import (
	"context"
	"event-map/common"
	"event-map/common/constant"
	"event-map/common/contract"
	"event-map/common/otel"
	"event-map/model"
	"event-map/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"log/slog"
)

// PostgresSource reads the catalog from the events table.
type PostgresSource struct {
	Querier *sqlgen.Queries
}

func (s PostgresSource) Load(ctx context.Context) ([]model.Event, error) {
	ctx, span := otel.Tracer.Start(ctx, "PostgresSource.Load")
	defer span.End()

	rows, err := s.Querier.FindAllEvents(ctx)
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, fmt.Errorf("find events: %w", err)
	}

	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, eventFromRow(row))
	}

	return events, nil
}

func eventFromRow(row sqlgen.Event) model.Event {
	event := model.Event{
		Id:          int(row.ID),
		Title:       row.Title,
		ShortTitle:  row.ShortTitle,
		Description: row.Description,
		Price:       row.Price,
		Categories:  make([]model.Category, 0, len(row.Categories)),
	}

	if row.PlaceName.Valid {
		event.Place = &model.Place{Name: row.PlaceName.String, Address: row.PlaceAddress.String}
		if row.PlaceLat.Valid {
			lat := row.PlaceLat.Float64
			event.Place.Lat = &lat
		}
		if row.PlaceLon.Valid {
			lon := row.PlaceLon.Float64
			event.Place.Lon = &lon
		}
	}

	for _, name := range row.Categories {
		event.Categories = append(event.Categories, model.Category{Name: name})
	}

	return event
}

func upsertParams(event model.Event) sqlgen.UpsertEventParams {
	params := sqlgen.UpsertEventParams{
		ID:          int32(event.Id),
		Title:       event.Title,
		ShortTitle:  event.ShortTitle,
		Description: event.Description,
		Price:       event.Price,
		Categories:  make([]string, 0, len(event.Categories)),
	}

	if event.Place != nil {
		params.PlaceName = pgtype.Text{String: event.Place.Name, Valid: true}
		params.PlaceAddress = pgtype.Text{String: event.Place.Address, Valid: true}
		if event.Place.Lat != nil {
			params.PlaceLat = pgtype.Float8{Float64: *event.Place.Lat, Valid: true}
		}
		if event.Place.Lon != nil {
			params.PlaceLon = pgtype.Float8{Float64: *event.Place.Lon, Valid: true}
		}
	}

	for _, category := range event.Categories {
		params.Categories = append(params.Categories, category.Name)
	}

	return params
}

// Seeder writes a catalog into the events table in a single transaction.
type Seeder struct {
	Db      contract.DbConn
	Querier *sqlgen.Queries
}

func (s Seeder) Seed(ctx context.Context, events []model.Event) error {
	ctx, span := otel.Tracer.Start(ctx, "Seeder.Seed")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	tx, err := s.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := s.Querier.WithTx(tx)
	for _, event := range events {
		if err := withTx.UpsertEvent(ctx, upsertParams(event)); err != nil {
			slog.ErrorContext(ctx, "failed to upsert event", traceIdAttr, slog.Int("id", event.Id), slog.Any(constant.LogFieldErr, err))
			common.UtilSpanError(span, err)
			return fmt.Errorf("upsert event %d: %w", event.Id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "catalog seeded", traceIdAttr, slog.Int("events", len(events)))
	return nil
}
