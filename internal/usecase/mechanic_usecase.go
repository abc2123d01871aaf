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
	ErrMechanicNotFound     = errors.New("mechanic not found")
	ErrInvalidMechanicInput = errors.New("invalid mechanic input")
)

// IMechanicUseCase exposes mechanic (mecanico) operations.
type IMechanicUseCase interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	List(ctx context.Context) ([]entities.Mechanic, error)
}

type MechanicUseCase struct {
	repo interfaces.IMechanicRepository
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(repo interfaces.IMechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{repo: repo}
}

func (u *MechanicUseCase) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanicInput
	}
	m.ID = uuid.NewString()
	return u.repo.Create(ctx, m)
}

func (u *MechanicUseCase) List(ctx context.Context) ([]entities.Mechanic, error) {
	return u.repo.List(ctx)
}
