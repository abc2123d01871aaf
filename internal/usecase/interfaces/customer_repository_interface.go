package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// "Not found" is reported as a zero-value entity with a nil error; usecases
// translate that into their own sentinel errors.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
