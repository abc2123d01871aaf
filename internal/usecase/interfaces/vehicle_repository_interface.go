package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// ListByCustomerID is backed by the cliente_id-index GSI and also serves the
// dependency check that blocks customer deletion.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
