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
	ErrPartNotFound        = errors.New("part not found")
	ErrPartCodeExists      = errors.New("part code already exists")
	ErrInvalidPartInput    = errors.New("invalid part input")
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceInput = errors.New("invalid service input")
)

// ICatalogUseCase exposes the parts and labor catalogs (estoque & serviços).
type ICatalogUseCase interface {
	CreatePart(ctx context.Context, p entities.Part) (entities.Part, error)
	ListParts(ctx context.Context) ([]entities.Part, error)
	UpdatePart(ctx context.Context, p entities.Part) (entities.Part, error)
	DeletePart(ctx context.Context, id string) error

	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	UpdateService(ctx context.Context, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	partRepo    interfaces.IPartRepository
	serviceRepo interfaces.IServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(partRepo interfaces.IPartRepository, serviceRepo interfaces.IServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{partRepo: partRepo, serviceRepo: serviceRepo}
}

func (u *CatalogUseCase) CreatePart(ctx context.Context, p entities.Part) (entities.Part, error) {
	p.Code = strings.TrimSpace(p.Code)
	p.Name = strings.TrimSpace(p.Name)
	if p.Code == "" || p.Name == "" || p.SalePrice < 0 || p.StockQty < 0 {
		return entities.Part{}, ErrInvalidPartInput
	}

	if existing, err := u.partRepo.GetByCode(ctx, p.Code); err != nil {
		return entities.Part{}, err
	} else if existing.ID != "" {
		return entities.Part{}, ErrPartCodeExists
	}

	p.ID = uuid.NewString()
	return u.partRepo.Create(ctx, p)
}

func (u *CatalogUseCase) ListParts(ctx context.Context) ([]entities.Part, error) {
	return u.partRepo.List(ctx)
}

func (u *CatalogUseCase) UpdatePart(ctx context.Context, p entities.Part) (entities.Part, error) {
	current, err := u.partRepo.GetByID(ctx, strings.TrimSpace(p.ID))
	if err != nil {
		return entities.Part{}, err
	}
	if current.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	if p.SalePrice < 0 || p.StockQty < 0 {
		return entities.Part{}, ErrInvalidPartInput
	}
	return u.partRepo.Update(ctx, p)
}

func (u *CatalogUseCase) DeletePart(ctx context.Context, id string) error {
	current, err := u.partRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrPartNotFound
	}
	return u.partRepo.Delete(ctx, id)
}

func (u *CatalogUseCase) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Description = strings.TrimSpace(s.Description)
	if s.Description == "" || s.LaborPrice < 0 {
		return entities.Service{}, ErrInvalidServiceInput
	}
	s.ID = uuid.NewString()
	return u.serviceRepo.Create(ctx, s)
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.serviceRepo.List(ctx)
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	current, err := u.serviceRepo.GetByID(ctx, strings.TrimSpace(s.ID))
	if err != nil {
		return entities.Service{}, err
	}
	if current.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	if s.LaborPrice < 0 {
		return entities.Service{}, ErrInvalidServiceInput
	}
	return u.serviceRepo.Update(ctx, s)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	current, err := u.serviceRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrServiceNotFound
	}
	return u.serviceRepo.Delete(ctx, id)
}
