// Package schedule holds the service-day configuration and the slot geometry
// used to quantize drag and resize operations.
//
// A Config is an immutable value. It is built once (see FromConfig) and passed
// by value into the engine, so concurrent callers never share mutable state.
package schedule

import (
	"errors"
	"fmt"
	"reservo/config"

	"github.com/rs/zerolog/log"
)

const (
	DefaultOpenHour        = 11
	DefaultCloseHour       = 24
	DefaultSlotMinutes     = 15
	DefaultMinDuration     = 30
	DefaultMaxDuration     = 240
	DefaultDurationMinutes = 90

	hoursPerDay    = 24
	minutesPerHour = 60
)

var (
	ErrInvalidHours    = errors.New("open hour must be before close hour within 0..24")
	ErrInvalidSlot     = errors.New("slot granularity must be positive")
	ErrInvalidDuration = errors.New("durations must satisfy 0 < min <= default <= max")
)

type Config struct {
	OpenHour               int
	CloseHour              int
	SlotMinutes            int
	MinDurationMinutes     int
	MaxDurationMinutes     int
	DefaultDurationMinutes int
}

// Default mirrors a restaurant open from 11:00 until midnight.
func Default() Config {
	return Config{
		OpenHour:               DefaultOpenHour,
		CloseHour:              DefaultCloseHour,
		SlotMinutes:            DefaultSlotMinutes,
		MinDurationMinutes:     DefaultMinDuration,
		MaxDurationMinutes:     DefaultMaxDuration,
		DefaultDurationMinutes: DefaultDurationMinutes,
	}
}

func (c Config) Validate() error {
	if c.OpenHour < 0 || c.CloseHour > hoursPerDay || c.OpenHour >= c.CloseHour {
		return fmt.Errorf("%w: open=%d close=%d", ErrInvalidHours, c.OpenHour, c.CloseHour)
	}

	if c.SlotMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, c.SlotMinutes)
	}

	if c.MinDurationMinutes <= 0 ||
		c.MinDurationMinutes > c.DefaultDurationMinutes ||
		c.DefaultDurationMinutes > c.MaxDurationMinutes {
		return fmt.Errorf("%w: min=%d default=%d max=%d",
			ErrInvalidDuration, c.MinDurationMinutes, c.DefaultDurationMinutes, c.MaxDurationMinutes)
	}

	return nil
}

// FromConfig reads the restaurant section of the application config. Zero
// values take the defaults; an inconsistent section is replaced by Default.
func FromConfig(cfg *config.Config) Config {
	res := Default()
	if cfg == nil {
		return res
	}

	r := cfg.Restaurant

	if r.OpenHour != nil {
		res.OpenHour = *r.OpenHour
	}

	if r.CloseHour > 0 {
		res.CloseHour = r.CloseHour
	}

	if r.SlotMinutes > 0 {
		res.SlotMinutes = r.SlotMinutes
	}

	if r.MinDurationMinutes > 0 {
		res.MinDurationMinutes = r.MinDurationMinutes
	}

	if r.MaxDurationMinutes > 0 {
		res.MaxDurationMinutes = r.MaxDurationMinutes
	}

	if r.DefaultDurationMinutes > 0 {
		res.DefaultDurationMinutes = r.DefaultDurationMinutes
	}

	if err := res.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid restaurant schedule configuration, using defaults")

		return Default()
	}

	return res
}
