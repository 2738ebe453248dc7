package tzdb

import (
	"errors"
	"time"

	// Embed the IANA database so lookups do not depend on the host's zoneinfo.
	_ "time/tzdata"
)

var errLocalZone = errors.New("the local zone is not a timezone identifier")

// IANA looks timezone identifiers up in the IANA timezone database.
type IANA struct{}

func New() *IANA {
	return &IANA{}
}

func (i *IANA) Lookup(name string) (*time.Location, error) {
	if name == "Local" {
		return nil, errLocalZone
	}

	return time.LoadLocation(name)
}
