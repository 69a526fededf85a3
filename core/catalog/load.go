package catalog

import (
	"context"
	"errors"
	"event-map/model"
	"fmt"
)

var (
	ErrEmptyCatalog = errors.New("catalog is empty")
	ErrDuplicateId  = errors.New("duplicate event id")
)

type Source interface {
	Load(ctx context.Context) ([]model.Event, error)
}

type SourceFunc func(ctx context.Context) ([]model.Event, error)

func (f SourceFunc) Load(ctx context.Context) ([]model.Event, error) {
	return f(ctx)
}

// BuiltinSource serves the compiled-in catalog.
var BuiltinSource Source = SourceFunc(func(ctx context.Context) ([]model.Event, error) {
	return Builtin(), nil
})

// Validate rejects catalogs that are empty or reuse an id.
func Validate(events []model.Event) error {
	if len(events) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[int]struct{}, len(events))
	for _, event := range events {
		if _, ok := seen[event.Id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateId, event.Id)
		}
		seen[event.Id] = struct{}{}
	}

	return nil
}

// LoadWithFallback loads from src and falls back to the built-in catalog when
// the source fails or yields an invalid catalog. The returned events are never
// empty; err reports why the fallback was taken.
func LoadWithFallback(ctx context.Context, src Source) ([]model.Event, error) {
	events, err := src.Load(ctx)
	if err == nil {
		err = Validate(events)
	}

	if err != nil {
		return Builtin(), fmt.Errorf("load catalog: %w", err)
	}

	return events, nil
}
