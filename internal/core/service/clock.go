package service

import (
	"fmt"
	"strconv"
	"time"
	"timebot/internal/core/domain"
	"timebot/internal/core/port"

	"github.com/rs/zerolog/log"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Clock formats the current time for canonical timezone identifiers.
type Clock struct {
	zones port.ZoneDatabase
	now   func() time.Time
}

func NewClock(zones port.ZoneDatabase) *Clock {
	return &Clock{zones: zones, now: time.Now}
}

// NewFixedClock returns a Clock that always reports now.
func NewFixedClock(zones port.ZoneDatabase, now time.Time) *Clock {
	return &Clock{zones: zones, now: func() time.Time { return now }}
}

// FormatNow only accepts identifiers the zone database hands back unchanged.
func (c *Clock) FormatNow(timezone string) (string, error) {
	log.Debug().Str("timezone", timezone).Msg("calculating the time for timezone")

	location, err := c.zones.Lookup(timezone)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", domain.ErrInvalidTimezone, timezone, err)
	}

	if location.String() != timezone {
		return "", fmt.Errorf("%w: %q was accepted as %q", domain.ErrInvalidTimezone, timezone, location.String())
	}

	now := c.now().In(location)
	_, offset := now.Zone()

	return fmt.Sprintf("%s %s; Offset: %s",
		now.Format(dateLayout),
		now.Format(timeLayout),
		formatHours(offset)), nil
}

func formatHours(offsetSeconds int) string {
	return strconv.FormatFloat(float64(offsetSeconds)/float64(time.Hour/time.Second), 'f', -1, 64)
}
