package schedule

import (
	"math"
	"time"
)

// MinutesToSlots floors minutes to whole slots. It is lossy for values that
// are not a multiple of the slot granularity.
func (c Config) MinutesToSlots(minutes int) int {
	slots := minutes / c.SlotMinutes
	if minutes%c.SlotMinutes != 0 && minutes < 0 {
		slots--
	}

	return slots
}

func (c Config) SlotsToMinutes(slots int) int {
	return slots * c.SlotMinutes
}

// SlotCount is the number of slots between opening and closing.
func (c Config) SlotCount() int {
	return c.MinutesToSlots((c.CloseHour - c.OpenHour) * minutesPerHour)
}

// OpeningTime returns the opening instant of the service day that the anchor
// belongs to, in the anchor's location.
func (c Config) OpeningTime(anchor time.Time) time.Time {
	year, month, day := anchor.Date()

	return time.Date(year, month, day, c.OpenHour, 0, 0, 0, anchor.Location())
}

// TimeToSlot maps t to a slot index relative to the opening hour of the
// anchor's service day. Times before opening give negative indexes.
func (c Config) TimeToSlot(t, anchor time.Time) int {
	minutes := int(math.Floor(t.Sub(c.OpeningTime(anchor)).Minutes()))

	return c.MinutesToSlots(minutes)
}

func (c Config) SlotToTime(slot int, anchor time.Time) time.Time {
	return c.OpeningTime(anchor).Add(time.Duration(c.SlotsToMinutes(slot)) * time.Minute)
}

// SnapTime moves t down to the slot boundary it falls in.
func (c Config) SnapTime(t, anchor time.Time) time.Time {
	return c.SlotToTime(c.TimeToSlot(t, anchor), anchor)
}

// SnapDuration floors a duration to whole slots and clamps it to the
// configured minimum and maximum.
func (c Config) SnapDuration(minutes int) int {
	snapped := c.SlotsToMinutes(c.MinutesToSlots(minutes))

	return min(max(snapped, c.MinDurationMinutes), c.MaxDurationMinutes)
}

// DurationAllowed reports whether minutes lies within the configured bounds.
func (c Config) DurationAllowed(minutes int) bool {
	return minutes >= c.MinDurationMinutes && minutes <= c.MaxDurationMinutes
}
