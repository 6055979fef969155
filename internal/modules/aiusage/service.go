package aiusage

import (
	"context"
	"time"
)

type counter interface {
	Increment(ctx context.Context, uid string, day time.Time) (int64, error)
	Used(ctx context.Context, uid string, day time.Time) (int64, error)
}

// Service enforces the daily generation allowance.
type Service struct {
	store counter
	limit int64
	now   func() time.Time
}

// NewService creates a Service; limit <= 0 selects DefaultTokens.
func NewService(store *Store, limit int) *Service {
	return newService(store, limit, time.Now)
}

func newService(store counter, limit int, now func() time.Time) *Service {
	if limit <= 0 {
		limit = DefaultTokens
	}
	return &Service{store: store, limit: int64(limit), now: now}
}

// UseToken consumes one generation for uid.
// Returns ErrInsufficientTokens once today's allowance is exhausted.
func (s *Service) UseToken(ctx context.Context, uid string) error {
	n, err := s.store.Increment(ctx, uid, s.now())
	if err != nil {
		return err
	}
	if n > s.limit {
		return ErrInsufficientTokens
	}
	return nil
}

// Remaining reports how many generations uid has left today.
func (s *Service) Remaining(ctx context.Context, uid string) (int64, error) {
	used, err := s.store.Used(ctx, uid, s.now())
	if err != nil {
		return 0, err
	}
	if used >= s.limit {
		return 0, nil
	}
	return s.limit - used, nil
}
