package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}
