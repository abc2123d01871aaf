package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Line mutations replace the embedded line collections wholesale; the
// usecase owns the merge logic (append/remove) and the client serializes
// mutations per open order, so last-writer-wins on the document is
// acceptable here.
type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.WorkOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkOrder, error)
	SetStatus(ctx context.Context, id string, status entities.OrderStatus, closedAt *time.Time) (entities.WorkOrder, error)
	SavePartLines(ctx context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error)
	SaveServiceLines(ctx context.Context, id string, lines []entities.ServiceLine) (entities.WorkOrder, error)
}
