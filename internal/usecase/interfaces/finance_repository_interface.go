package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// ListByWorkOrderID is backed by the os_id-index GSI.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error)
	SumAmounts(ctx context.Context) (float64, error)
}

// IExpenseRepository abstracts DynamoDB persistence for Expense.
type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	Delete(ctx context.Context, id string) error
	SumAmounts(ctx context.Context) (float64, error)
}
