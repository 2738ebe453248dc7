package command

import (
	"timebot/internal/core/domain"
	"timebot/internal/core/port"
)

// NewChain builds the command state table. Start falls through to help and
// getTimeByLocation falls through to get_time_for_timezone; every other state
// is terminal.
func NewChain(resolver port.TimezoneResolver, formatter port.TimeFormatter) *Registry {
	r := &Registry{}

	r.Register(NewStart(domain.CommandStart, domain.CommandHelp))
	r.Register(NewHelp(domain.CommandHelp))
	r.Register(NewLocation(resolver, domain.CommandTimeByLocation, domain.CommandTimeForTimezone))
	r.Register(NewTimezone(formatter, domain.CommandTimeForTimezone))
	r.Register(NewDisplayFormat(domain.CommandSetDisplayFormat))

	return r
}
