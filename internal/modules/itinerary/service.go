package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"tripcast/internal/modules/aiusage"
	"tripcast/internal/modules/plan"
	"tripcast/internal/modules/weather"
	"tripcast/internal/types"
)

type WeatherFetcher interface {
	Fetch(ctx context.Context, city string, date types.Date) (weather.Record, error)
}

type PlanGenerator interface {
	Generate(ctx context.Context, destination string, date types.Date, w weather.Record) (plan.Record, error)
}

// Quota guards plan generation per client.
type Quota interface {
	UseToken(ctx context.Context, uid string) error
	Remaining(ctx context.Context, uid string) (int64, error)
}

type Deps struct {
	Weather WeatherFetcher
	Planner PlanGenerator
	Store   Store
	Logger  *slog.Logger

	// Optional.
	Quota    Quota
	Location *time.Location
	Now      func() time.Time
}

type Service struct {
	weather  WeatherFetcher
	planner  PlanGenerator
	store    Store
	quota    Quota
	logger   *slog.Logger
	validate *validator.Validate
	loc      *time.Location
	now      func() time.Time
}

func NewService(d Deps) *Service {
	s := &Service{
		weather:  d.Weather,
		planner:  d.Planner,
		store:    d.Store,
		quota:    d.Quota,
		logger:   d.Logger,
		validate: newValidator(),
		loc:      d.Location,
		now:      d.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "itinerary")
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Today is the current calendar date in the service location.
func (s *Service) Today() types.Date {
	return types.DateOf(s.now().In(s.loc))
}

// Create runs validate, fetch, generate and persist in order. client keys the
// generation quota and may be empty. Nothing is persisted unless every stage succeeds.
func (s *Service) Create(ctx context.Context, client string, cmd CreateCommand) (it *Itinerary, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("pipeline panic", "panic", r, "destination", cmd.Destination)
			it = nil
			err = stageError(ErrUnexpected, fmt.Errorf("%v", r))
		}
	}()

	cmd.Destination = strings.TrimSpace(cmd.Destination)
	cmd.Date = strings.TrimSpace(cmd.Date)
	if err := validateCommand(s.validate, cmd); err != nil {
		return nil, err
	}
	date, err := types.ParseDate(cmd.Date)
	if err != nil {
		return nil, &ValidationError{Reason: ErrInvalidInput, Fields: map[string][]string{"date": {err.Error()}}}
	}
	if date.Before(s.Today()) {
		return nil, &ValidationError{Reason: ErrPastDate}
	}

	log := s.logger.With("destination", cmd.Destination, "date", date.String())

	w, err := s.weather.Fetch(ctx, cmd.Destination, date)
	if errors.Is(err, weather.ErrNoData) {
		return nil, stageError(ErrWeatherNoData, err)
	}
	if err != nil {
		return nil, stageError(ErrWeatherUnavailable, err)
	}

	if s.quota != nil {
		switch err := s.quota.UseToken(ctx, client); {
		case errors.Is(err, aiusage.ErrInsufficientTokens):
			log.Warn("generation quota exhausted", "client", client)
			return nil, stageError(ErrQuotaExceeded, err)
		case err != nil:
			log.Warn("generation quota check failed; continuing", "err", err)
		}
	}

	p, err := s.planner.Generate(ctx, cmd.Destination, date, w)
	if err != nil {
		return nil, stageError(ErrGenerationFailed, err)
	}

	it = &Itinerary{
		Destination: cmd.Destination,
		Date:        date,
		Weather:     w,
		Plan:        p,
	}
	if err := s.store.Create(ctx, it); err != nil {
		log.Error("persist itinerary", "err", err)
		return nil, stageError(ErrPersistence, err)
	}

	log.Info("itinerary created", "id", it.ID, "itinerary", it.String())
	return it, nil
}

// QuotaRemaining reports the generations client has left today.
// It reports false when no quota is configured or the lookup fails.
func (s *Service) QuotaRemaining(ctx context.Context, client string) (int64, bool) {
	if s.quota == nil {
		return 0, false
	}
	n, err := s.quota.Remaining(ctx, client)
	if err != nil {
		s.logger.Warn("quota lookup failed", "client", client, "err", err)
		return 0, false
	}
	return n, true
}

// Get returns ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (*Itinerary, error) {
	it, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, stageError(ErrUnexpected, err)
	}
	return it, nil
}

func (s *Service) List(ctx context.Context) ([]Itinerary, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, stageError(ErrUnexpected, err)
	}
	return items, nil
}
