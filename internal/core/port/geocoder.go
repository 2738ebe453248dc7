package port

import (
	"context"
	"timebot/internal/core/domain"
)

type TimezoneResolver interface {
	// ResolveTimezone returns the timezone identifier covering the given coordinates.
	ResolveTimezone(ctx context.Context, location domain.Location) (string, error)
}
