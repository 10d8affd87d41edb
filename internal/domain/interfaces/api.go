package interfaces

import (
	"context"

	domaintypes "preptogether/internal/domain/types"
)

// APIClient is how we talk to the Prepare Together service, all with context.
type APIClient interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
	Register(
		ctx context.Context,
		request domaintypes.RegistrationRequest,
	) (domaintypes.RegistrationResult, error)
	Login(ctx context.Context, email, password string) (string, error)
	FetchProfile(ctx context.Context, token string) (domaintypes.Profile, error)
}
