package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrInvalidWorkOrderInput = errors.New("invalid work order input")
	ErrInvalidLineInput      = errors.New("invalid line item input")
	ErrLineVariantAmbiguous  = errors.New("exactly one of peca_id or nome_peca must be set")
	ErrLineNotFound          = errors.New("line item not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
)

// OpenWorkOrderInput carries what the reception desk fills in when a vehicle
// arrives. The customer is derived from the vehicle, never sent by clients.
type OpenWorkOrderInput struct {
	VehicleID      string
	MechanicID     string
	Odometer       int
	ReportedDefect string
}

// AddPartLineInput is the tagged-variant add command:
//   - catalog-backed: PartID set, AdHocName and UnitPrice empty (price and
//     name are resolved from the catalog, stock is decremented)
//   - ad-hoc: AdHocName and UnitPrice set, PartID empty (no stock effect)
type AddPartLineInput struct {
	PartID    string
	AdHocName string
	Quantity  int
	UnitPrice *float64
}

type AddServiceLineInput struct {
	ServiceID string
	Quantity  int
	UnitPrice *float64
}

// IWorkOrderUseCase exposes the service-order (OS) lifecycle: open, list,
// detail with server-computed totals, line-item mutations and status
// transitions.
type IWorkOrderUseCase interface {
	Open(ctx context.Context, in OpenWorkOrderInput) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	GetDetail(ctx context.Context, id string) (entities.WorkOrderDetail, error)
	AddPartLine(ctx context.Context, orderID string, in AddPartLineInput) (entities.WorkOrder, error)
	RemovePartLine(ctx context.Context, orderID, lineID string) (entities.WorkOrder, error)
	AddServiceLine(ctx context.Context, orderID string, in AddServiceLineInput) (entities.WorkOrder, error)
	RemoveServiceLine(ctx context.Context, orderID, lineID string) (entities.WorkOrder, error)
	SetStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo         interfaces.IWorkOrderRepository
	vehicleRepo  interfaces.IVehicleRepository
	mechanicRepo interfaces.IMechanicRepository
	partRepo     interfaces.IPartRepository
	serviceRepo  interfaces.IServiceRepository
	paymentRepo  interfaces.IPaymentRepository
	policy       workflow.Policy
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	vehicleRepo interfaces.IVehicleRepository,
	mechanicRepo interfaces.IMechanicRepository,
	partRepo interfaces.IPartRepository,
	serviceRepo interfaces.IServiceRepository,
	paymentRepo interfaces.IPaymentRepository,
	policy workflow.Policy,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:         repo,
		vehicleRepo:  vehicleRepo,
		mechanicRepo: mechanicRepo,
		partRepo:     partRepo,
		serviceRepo:  serviceRepo,
		paymentRepo:  paymentRepo,
		policy:       policy,
	}
}

func (u *WorkOrderUseCase) Open(ctx context.Context, in OpenWorkOrderInput) (entities.WorkOrder, error) {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.MechanicID = strings.TrimSpace(in.MechanicID)
	if in.VehicleID == "" || in.MechanicID == "" || in.Odometer < 0 {
		return entities.WorkOrder{}, ErrInvalidWorkOrderInput
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if vehicle.ID == "" {
		return entities.WorkOrder{}, ErrVehicleNotFound
	}

	mechanic, err := u.mechanicRepo.GetByID(ctx, in.MechanicID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if mechanic.ID == "" {
		return entities.WorkOrder{}, ErrMechanicNotFound
	}

	o := entities.WorkOrder{
		ID:             uuid.NewString(),
		OpenedAt:       time.Now().UTC(),
		Status:         entities.OrderStatusOrcamento,
		Odometer:       in.Odometer,
		ReportedDefect: strings.TrimSpace(in.ReportedDefect),
		CustomerID:     vehicle.CustomerID,
		VehicleID:      vehicle.ID,
		MechanicID:     mechanic.ID,
	}
	return u.repo.Create(ctx, o)
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

// GetDetail returns the order with its payments and the derived money
// aggregates. These fields are the single source of truth for clients; the
// front end renders them as-is.
func (u *WorkOrderUseCase) GetDetail(ctx context.Context, id string) (entities.WorkOrderDetail, error) {
	o, err := u.getOrder(ctx, id)
	if err != nil {
		return entities.WorkOrderDetail{}, err
	}

	payments, err := u.paymentRepo.ListByWorkOrderID(ctx, o.ID)
	if err != nil {
		return entities.WorkOrderDetail{}, err
	}

	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}

	partsTotal := o.PartsTotal()
	servicesTotal := o.ServicesTotal()
	grand := partsTotal + servicesTotal

	return entities.WorkOrderDetail{
		WorkOrder:     o,
		Payments:      payments,
		PartsTotal:    partsTotal,
		ServicesTotal: servicesTotal,
		GrandTotal:    grand,
		PaidTotal:     paid,
		Balance:       grand - paid,
	}, nil
}

func (u *WorkOrderUseCase) AddPartLine(ctx context.Context, orderID string, in AddPartLineInput) (entities.WorkOrder, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if in.Quantity <= 0 {
		return entities.WorkOrder{}, ErrInvalidLineInput
	}

	in.PartID = strings.TrimSpace(in.PartID)
	in.AdHocName = strings.TrimSpace(in.AdHocName)
	catalogBacked := in.PartID != ""
	adHoc := in.AdHocName != ""
	if catalogBacked == adHoc {
		return entities.WorkOrder{}, ErrLineVariantAmbiguous
	}

	line := entities.PartLine{
		LineID:   uuid.NewString(),
		Quantity: in.Quantity,
	}

	if catalogBacked {
		// Conditional decrement enforces stock >= quantity at the storage
		// layer; a rejected condition comes back as a zero-value part.
		part, err := u.partRepo.AdjustStock(ctx, in.PartID, -in.Quantity)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		if part.ID == "" {
			existing, err := u.partRepo.GetByID(ctx, in.PartID)
			if err != nil {
				return entities.WorkOrder{}, err
			}
			if existing.ID == "" {
				return entities.WorkOrder{}, ErrPartNotFound
			}
			return entities.WorkOrder{}, ErrInsufficientStock
		}
		line.PartID = part.ID
		line.Name = part.Name
		line.UnitPrice = part.SalePrice
	} else {
		if in.UnitPrice == nil || *in.UnitPrice < 0 {
			return entities.WorkOrder{}, ErrInvalidLineInput
		}
		line.Name = in.AdHocName
		line.UnitPrice = *in.UnitPrice
	}

	updated, err := u.repo.SavePartLines(ctx, o.ID, append(o.PartLines, line))
	if err != nil {
		if catalogBacked {
			// Compensate the decrement so stock is not leaked on failure.
			if _, restoreErr := u.partRepo.AdjustStock(ctx, line.PartID, in.Quantity); restoreErr != nil {
				log.Printf("[os][usecase] stock compensation failed part_id=%s qty=%d err=%v", line.PartID, in.Quantity, restoreErr)
			}
		}
		return entities.WorkOrder{}, err
	}
	return updated, nil
}

// RemovePartLine drops a line item; for catalog-backed lines the reserved
// quantity goes back to stock.
func (u *WorkOrderUseCase) RemovePartLine(ctx context.Context, orderID, lineID string) (entities.WorkOrder, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	idx := -1
	for i, l := range o.PartLines {
		if l.LineID == lineID || (l.PartID != "" && l.PartID == lineID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.WorkOrder{}, ErrLineNotFound
	}
	removed := o.PartLines[idx]

	remaining := make([]entities.PartLine, 0, len(o.PartLines)-1)
	remaining = append(remaining, o.PartLines[:idx]...)
	remaining = append(remaining, o.PartLines[idx+1:]...)

	updated, err := u.repo.SavePartLines(ctx, o.ID, remaining)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if removed.Kind() == entities.PartLineCatalogBacked {
		if _, err := u.partRepo.AdjustStock(ctx, removed.PartID, removed.Quantity); err != nil {
			log.Printf("[os][usecase] stock restore failed part_id=%s qty=%d err=%v", removed.PartID, removed.Quantity, err)
		}
	}
	return updated, nil
}

func (u *WorkOrderUseCase) AddServiceLine(ctx context.Context, orderID string, in AddServiceLineInput) (entities.WorkOrder, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	in.ServiceID = strings.TrimSpace(in.ServiceID)
	if in.ServiceID == "" {
		return entities.WorkOrder{}, ErrInvalidLineInput
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return entities.WorkOrder{}, ErrInvalidLineInput
	}

	svc, err := u.serviceRepo.GetByID(ctx, in.ServiceID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if svc.ID == "" {
		return entities.WorkOrder{}, ErrServiceNotFound
	}

	// A manager may override the catalog labor price (e.g. a discount).
	price := svc.LaborPrice
	if in.UnitPrice != nil {
		if *in.UnitPrice < 0 {
			return entities.WorkOrder{}, ErrInvalidLineInput
		}
		price = *in.UnitPrice
	}

	line := entities.ServiceLine{
		LineID:      uuid.NewString(),
		ServiceID:   svc.ID,
		Description: svc.Description,
		Quantity:    in.Quantity,
		UnitPrice:   price,
	}
	return u.repo.SaveServiceLines(ctx, o.ID, append(o.ServiceLines, line))
}

func (u *WorkOrderUseCase) RemoveServiceLine(ctx context.Context, orderID, lineID string) (entities.WorkOrder, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	idx := -1
	for i, l := range o.ServiceLines {
		if l.LineID == lineID || l.ServiceID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.WorkOrder{}, ErrLineNotFound
	}

	remaining := make([]entities.ServiceLine, 0, len(o.ServiceLines)-1)
	remaining = append(remaining, o.ServiceLines[:idx]...)
	remaining = append(remaining, o.ServiceLines[idx+1:]...)

	return u.repo.SaveServiceLines(ctx, o.ID, remaining)
}

// SetStatus moves the order through the lifecycle. The transition is checked
// against the configured policy; entering FINALIZADO stamps the close date.
func (u *WorkOrderUseCase) SetStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.WorkOrder, error) {
	o, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if err := u.policy.Validate(o.Status, status); err != nil {
		return entities.WorkOrder{}, err
	}

	var closedAt *time.Time
	if status == entities.OrderStatusFinalizado {
		now := time.Now().UTC()
		closedAt = &now
	}
	return u.repo.SetStatus(ctx, o.ID, status, closedAt)
}

func (u *WorkOrderUseCase) getOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderInput
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return o, nil
}
