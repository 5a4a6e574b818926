// Package provider defines the contract every weather provider client
// implements and the registry over the closed set of supported clients.
package provider

import (
	"context"
	"time"

	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/weather"
)

// Provider is a client for one remote weather service.
//
// Fetch performs exactly one outbound request per call (no retries) and
// either fully succeeds or fails with one of the weather package error
// kinds. The credential is supplied per call and must not be retained
// beyond it.
type Provider interface {
	// Name returns the canonical provider id (e.g. "weatherapi").
	Name() string

	// HorizonDays returns how many days ahead of today the provider can
	// forecast, counting today as day one. Queries beyond it fail with
	// weather.ErrUnsupportedDate.
	HorizonDays() int

	Fetch(ctx context.Context, cred credentials.Record, query weather.Query) (weather.Forecast, error)
}

// Options tune how provider clients are constructed.
type Options struct {
	// BaseURL overrides the provider's production endpoint. Empty means
	// the provider default.
	BaseURL string

	// Timeout bounds each outbound request. Zero means the provider
	// default.
	Timeout time.Duration
}
