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
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrPlateAlreadyExists   = errors.New("plate already registered")
	ErrInvalidVehicleInput  = errors.New("invalid vehicle input")
	ErrVehicleHasDependents = errors.New("vehicle has dependent orders")
)

// IVehicleUseCase exposes vehicle (veiculo) operations.
type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo         interfaces.IVehicleRepository
	customerRepo interfaces.ICustomerRepository
	orderRepo    interfaces.IWorkOrderRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customerRepo interfaces.ICustomerRepository, orderRepo interfaces.IWorkOrderRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customerRepo: customerRepo, orderRepo: orderRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" || strings.TrimSpace(v.CustomerID) == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	if existing, err := u.repo.GetByPlate(ctx, v.Plate); err != nil {
		return entities.Vehicle{}, err
	} else if existing.ID != "" {
		return entities.Vehicle{}, ErrPlateAlreadyExists
	}

	owner, err := u.customerRepo.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrCustomerNotFound
	}

	v.ID = uuid.NewString()
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}

	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}
	if v.Plate != current.Plate {
		if existing, err := u.repo.GetByPlate(ctx, v.Plate); err != nil {
			return entities.Vehicle{}, err
		} else if existing.ID != "" {
			return entities.Vehicle{}, ErrPlateAlreadyExists
		}
	}
	if v.CustomerID == "" {
		v.CustomerID = current.CustomerID
	}
	return u.repo.Update(ctx, v)
}

// Delete removes a vehicle unless work orders still reference it.
func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}

	orders, err := u.orderRepo.ListByVehicleID(ctx, id)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return ErrVehicleHasDependents
	}

	return u.repo.Delete(ctx, id)
}
