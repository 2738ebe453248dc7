package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrGeoLookupFailed    = errors.New("geo lookup failed")
	ErrUnknownTransition  = errors.New("unknown command transition")
)

const (
	CommandStart            = "start"
	CommandHelp             = "help"
	CommandTimeByLocation   = "getTimeByLocation"
	CommandTimeForTimezone  = "get_time_for_timezone"
	CommandSetDisplayFormat = "set_display_format"
)
