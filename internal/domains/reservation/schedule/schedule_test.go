package schedule_test

import (
	"testing"
	"time"

	"reservo/config"
	"reservo/internal/domains/reservation/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := schedule.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 11, cfg.OpenHour)
	assert.Equal(t, 24, cfg.CloseHour)
	assert.Equal(t, 15, cfg.SlotMinutes)
	assert.Equal(t, 52, cfg.SlotCount())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*schedule.Config)
		err    error
	}{
		{name: "open after close", mutate: func(c *schedule.Config) { c.OpenHour = 23; c.CloseHour = 22 }, err: schedule.ErrInvalidHours},
		{name: "close past midnight", mutate: func(c *schedule.Config) { c.CloseHour = 25 }, err: schedule.ErrInvalidHours},
		{name: "zero slot", mutate: func(c *schedule.Config) { c.SlotMinutes = 0 }, err: schedule.ErrInvalidSlot},
		{name: "default above max", mutate: func(c *schedule.Config) { c.DefaultDurationMinutes = 300 }, err: schedule.ErrInvalidDuration},
		{name: "midnight opening", mutate: func(c *schedule.Config) { c.OpenHour = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := schedule.Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Run("nil config gives defaults", func(t *testing.T) {
		assert.Equal(t, schedule.Default(), schedule.FromConfig(nil))
	})

	t.Run("explicit zero opening hour is kept", func(t *testing.T) {
		cfg := &config.Config{}
		open := 0
		cfg.Restaurant.OpenHour = &open
		cfg.Restaurant.CloseHour = 22
		cfg.Restaurant.SlotMinutes = 30

		res := schedule.FromConfig(cfg)

		assert.Equal(t, 0, res.OpenHour)
		assert.Equal(t, 22, res.CloseHour)
		assert.Equal(t, 30, res.SlotMinutes)
		assert.Equal(t, schedule.DefaultDurationMinutes, res.DefaultDurationMinutes)
	})

	t.Run("inconsistent section falls back to defaults", func(t *testing.T) {
		cfg := &config.Config{}
		open := 20
		cfg.Restaurant.OpenHour = &open
		cfg.Restaurant.CloseHour = 18

		assert.Equal(t, schedule.Default(), schedule.FromConfig(cfg))
	})
}

func TestMinutesToSlots(t *testing.T) {
	cfg := schedule.Default()

	tests := []struct {
		minutes int
		slots   int
	}{
		{minutes: 0, slots: 0},
		{minutes: 14, slots: 0},
		{minutes: 15, slots: 1},
		{minutes: 29, slots: 1},
		{minutes: 90, slots: 6},
		{minutes: -1, slots: -1},
		{minutes: -15, slots: -1},
		{minutes: -16, slots: -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.slots, cfg.MinutesToSlots(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestSlotRoundTripFloors(t *testing.T) {
	cfg := schedule.Default()

	for _, minutes := range []int{0, 7, 15, 44, 100, 239} {
		once := cfg.SlotsToMinutes(cfg.MinutesToSlots(minutes))
		twice := cfg.SlotsToMinutes(cfg.MinutesToSlots(once))

		assert.Equal(t, minutes-minutes%15, once)
		assert.Equal(t, once, twice)
	}
}

func TestTimeToSlot(t *testing.T) {
	cfg := schedule.Default()
	anchor := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, cfg.TimeToSlot(time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC), anchor))
	assert.Equal(t, 36, cfg.TimeToSlot(time.Date(2025, 3, 15, 20, 7, 0, 0, time.UTC), anchor))
	assert.Equal(t, -4, cfg.TimeToSlot(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), anchor))

	assert.Equal(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC), cfg.SlotToTime(36, anchor))
	assert.Equal(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC),
		cfg.SnapTime(time.Date(2025, 3, 15, 20, 14, 59, 0, time.UTC), anchor))
}

func TestSnapDuration(t *testing.T) {
	cfg := schedule.Default()

	assert.Equal(t, 90, cfg.SnapDuration(100))
	assert.Equal(t, 30, cfg.SnapDuration(10))
	assert.Equal(t, 240, cfg.SnapDuration(500))
	assert.True(t, cfg.DurationAllowed(90))
	assert.False(t, cfg.DurationAllowed(241))
}
