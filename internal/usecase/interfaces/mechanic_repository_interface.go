package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IMechanicRepository abstracts DynamoDB persistence for Mechanic.
type IMechanicRepository interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context) ([]entities.Mechanic, error)
}
