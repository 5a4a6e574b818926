// Package weather holds the provider-agnostic types exchanged between
// the command layer, the dispatcher and the provider clients: the
// forecast query, the normalized forecast, and the closed set of
// provider failure kinds.
package weather

import "time"

// Unit is the temperature unit a forecast's temperatures are expressed in.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// Symbol returns the display symbol for the unit.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Query describes one forecast request. Date is always a concrete
// calendar day by the time a provider sees it; "today" is resolved by
// the dispatcher, never passed along symbolically.
type Query struct {
	// Location is free-form; each provider geocodes it its own way.
	Location string

	Date time.Time
}

// Forecast is the provider-agnostic result of a query. Temperatures are
// the daily min/max and are always paired with an explicit unit.
type Forecast struct {
	Provider string
	Location string
	Date     time.Time
	Summary  string
	TempMin  float64
	TempMax  float64
	Unit     Unit
}
