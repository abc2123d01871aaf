package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrTaxIDAlreadyExists    = errors.New("cpf/cnpj already registered")
	ErrInvalidCustomerInput  = errors.New("invalid customer input")
	ErrCustomerHasDependents = errors.New("customer has dependent vehicles or orders")
)

// ICustomerUseCase exposes customer (cliente) operations.
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	ListVehicles(ctx context.Context, customerID string) ([]entities.Vehicle, error)
}

type CustomerUseCase struct {
	repo        interfaces.ICustomerRepository
	vehicleRepo interfaces.IVehicleRepository
	orderRepo   interfaces.IWorkOrderRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, vehicleRepo interfaces.IVehicleRepository, orderRepo interfaces.IWorkOrderRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, vehicleRepo: vehicleRepo, orderRepo: orderRepo}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.TrimSpace(c.TaxID)
	if c.Name == "" || c.TaxID == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}

	if existing, err := u.repo.GetByTaxID(ctx, c.TaxID); err != nil {
		return entities.Customer{}, err
	} else if existing.ID != "" {
		return entities.Customer{}, ErrTaxIDAlreadyExists
	}

	c.ID = uuid.NewString()
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if _, err := u.GetByID(ctx, c.ID); err != nil {
		return entities.Customer{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.TrimSpace(c.TaxID)
	if c.Name == "" || c.TaxID == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}
	return u.repo.Update(ctx, c)
}

// Delete removes a customer. It is rejected while any vehicle or work order
// still references the customer; the caller must detach those first.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}

	vehicles, err := u.vehicleRepo.ListByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	if len(vehicles) > 0 {
		return ErrCustomerHasDependents
	}

	orders, err := u.orderRepo.ListByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return ErrCustomerHasDependents
	}

	return u.repo.Delete(ctx, id)
}

func (u *CustomerUseCase) ListVehicles(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	if _, err := u.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return u.vehicleRepo.ListByCustomerID(ctx, customerID)
}
