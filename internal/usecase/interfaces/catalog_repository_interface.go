package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for Part.
//
// AdjustStock applies a conditional delta to estoque_atual. For a negative
// delta the update carries a `estoque_atual >= :need` condition so stock can
// never go negative; a failed condition is reported as a zero-value Part with
// a nil error, and the usecase decides between "not found" and "insufficient
// stock".
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	GetByCode(ctx context.Context, code string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (entities.Part, error)
}

// IServiceRepository abstracts DynamoDB persistence for Service.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
