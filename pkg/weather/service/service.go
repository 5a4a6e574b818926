// Package service wires credential resolution to provider invocation
// for the `get` command: it picks the effective provider, resolves its
// credential, turns the date argument into a concrete day and performs
// the fetch.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/weather"
	"github.com/zoryamba/wezza/pkg/weather/provider"
)

var (
	// ErrNoProviderSpecified means no --provider flag was given and no
	// default provider is configured.
	ErrNoProviderSpecified = errors.New("no provider specified and no default configured")

	// ErrInvalidDate means the date argument is unparseable or in the past.
	ErrInvalidDate = errors.New("invalid date")
)

// Factory builds a provider client for an id. The default is
// provider.New with options from config; tests substitute fakes.
type Factory func(id string) (provider.Provider, error)

type Service struct {
	store   *credentials.Store
	factory Factory
	log     *zap.Logger
}

func New(store *credentials.Store, factory Factory, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		store:   store,
		factory: factory,
		log:     log,
	}
}

// Get resolves and performs one forecast request. override is the
// explicit provider id from the --provider flag ("" means use the
// stored default); dateStr is the optional YYYY-MM-DD argument (""
// means today). Each call is a fresh end-to-end resolution: no retries,
// no caching.
func (s *Service) Get(ctx context.Context, location, dateStr, override string) (weather.Forecast, error) {
	if location == "" {
		return weather.Forecast{}, errors.New("location must not be empty")
	}

	id, err := s.resolveProvider(override)
	if err != nil {
		return weather.Forecast{}, err
	}

	cred, err := s.store.Lookup(id, "")
	if err != nil {
		return weather.Forecast{}, err
	}

	date, err := resolveDate(dateStr)
	if err != nil {
		return weather.Forecast{}, err
	}

	p, err := s.factory(id)
	if err != nil {
		return weather.Forecast{}, err
	}

	s.log.Debug("fetching forecast",
		zap.String("provider", id),
		zap.String("location", location),
		zap.String("date", date.Format(weather.DateLayout)),
	)

	return p.Fetch(ctx, cred, weather.Query{Location: location, Date: date})
}

// resolveProvider applies the precedence rule: an explicit override
// wins over the stored default.
func (s *Service) resolveProvider(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	id, err := s.store.ResolveDefault()
	if errors.Is(err, credentials.ErrNoDefaultConfigured) {
		return "", ErrNoProviderSpecified
	}
	if err != nil {
		return "", err
	}

	return id, nil
}

// resolveDate turns the optional date argument into a concrete calendar
// day. Absence means today, resolved now rather than left symbolic.
func resolveDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return weather.Today(), nil
	}

	date, err := time.ParseInLocation(weather.DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, dateStr)
	}

	if weather.DaysFromToday(date) < 0 {
		return time.Time{}, fmt.Errorf("%w: %q is in the past", ErrInvalidDate, dateStr)
	}

	return date, nil
}
