package contract

import (
	"context"
	"event-map/core/session"
)

type SessionStore interface {
	Get(ctx context.Context, id string) (session.Session, error)
	Save(ctx context.Context, sess session.Session) error
	Delete(ctx context.Context, id string) error
}
