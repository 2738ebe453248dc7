package port

import "time"

type ZoneDatabase interface {
	// Lookup returns the location accepted by the timezone database for name, or an error if it is rejected.
	Lookup(name string) (*time.Location, error)
}

type TimeFormatter interface {
	// FormatNow renders the current date, time and UTC offset in the given timezone. It fails with
	// domain.ErrInvalidTimezone if the timezone database does not accept the exact identifier.
	FormatNow(timezone string) (string, error)
}
