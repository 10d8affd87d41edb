package interfaces

import (
	"context"

	domaintypes "preptogether/internal/domain/types"
)

// Navigator moves the client to another view.
type Navigator interface {
	Navigate(ctx context.Context, route domaintypes.Route) error
}
