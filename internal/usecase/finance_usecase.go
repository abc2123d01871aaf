package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentInput = errors.New("invalid payment input")
	ErrPaymentDeclined     = errors.New("payment declined by provider")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidExpenseInput = errors.New("invalid expense input")
)

// Settlement tolerance for float money comparison, matching how the ledger
// has always treated "fully paid".
const paidEpsilon = 0.01

type RegisterPaymentInput struct {
	WorkOrderID    string
	Amount         float64
	Method         string
	Installment    int
	Note           string
	GatewayPayload json.RawMessage
}

// IFinanceUseCase exposes the financial ledger: payments against orders, the
// authoritative receipts/expenses summary and the expense log.
type IFinanceUseCase interface {
	RegisterPayment(ctx context.Context, in RegisterPaymentInput) (entities.Payment, error)
	ListPayments(ctx context.Context) ([]entities.Payment, error)
	Summary(ctx context.Context) (entities.FinanceSummary, error)

	RegisterExpense(ctx context.Context, e entities.Expense) (entities.Expense, error)
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type FinanceUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	expenseRepo interfaces.IExpenseRepository
	orderRepo   interfaces.IWorkOrderRepository
	gateway     interfaces.IPaymentGateway
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(
	paymentRepo interfaces.IPaymentRepository,
	expenseRepo interfaces.IExpenseRepository,
	orderRepo interfaces.IWorkOrderRepository,
	gateway interfaces.IPaymentGateway,
) *FinanceUseCase {
	return &FinanceUseCase{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
	}
}

// RegisterPayment records a payment against a work order. When a gateway
// payload is supplied and the gateway is configured, the payment is first
// processed through Mercado Pago; a non-approved provider status rejects the
// whole registration. Once the order is fully paid it is finalized
// automatically.
func (u *FinanceUseCase) RegisterPayment(ctx context.Context, in RegisterPaymentInput) (entities.Payment, error) {
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	if in.WorkOrderID == "" || in.Amount <= 0 || strings.TrimSpace(in.Method) == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if in.Installment <= 0 {
		in.Installment = 1
	}

	order, err := u.orderRepo.GetByID(ctx, in.WorkOrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrWorkOrderNotFound
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		WorkOrderID: order.ID,
		PaidAt:      time.Now().UTC(),
		Amount:      in.Amount,
		Method:      strings.TrimSpace(in.Method),
		Installment: in.Installment,
		Note:        strings.TrimSpace(in.Note),
	}

	if len(in.GatewayPayload) > 0 && u.gateway != nil {
		providerID, providerStatus, raw, err := u.gateway.CreatePayment(ctx, in.GatewayPayload)
		if err != nil {
			return entities.Payment{}, err
		}
		if providerStatus != "approved" {
			return entities.Payment{}, ErrPaymentDeclined
		}
		p.ProviderPaymentID = providerID
		p.ProviderStatus = providerStatus
		p.ProviderPayloadRaw = raw
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	u.maybeFinalize(ctx, order, created.Amount)
	return created, nil
}

// maybeFinalize closes the order when payments cover the grand total. This
// bypasses the transition policy on purpose: full settlement always closes
// the order, whatever column it sits in.
func (u *FinanceUseCase) maybeFinalize(ctx context.Context, order entities.WorkOrder, justPaid float64) {
	if order.Status == entities.OrderStatusFinalizado {
		return
	}

	payments, err := u.paymentRepo.ListByWorkOrderID(ctx, order.ID)
	if err != nil {
		log.Printf("[finance][usecase] auto-finalize check failed os_id=%s err=%v", order.ID, err)
		return
	}
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}
	if paid == 0 {
		// The freshly created payment may not be visible on the GSI yet.
		paid = justPaid
	}

	grand := order.PartsTotal() + order.ServicesTotal()
	if grand <= 0 || paid < grand-paidEpsilon {
		return
	}

	now := time.Now().UTC()
	if _, err := u.orderRepo.SetStatus(ctx, order.ID, entities.OrderStatusFinalizado, &now); err != nil {
		log.Printf("[finance][usecase] auto-finalize failed os_id=%s err=%v", order.ID, err)
	}
}

func (u *FinanceUseCase) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	return u.paymentRepo.List(ctx)
}

func (u *FinanceUseCase) Summary(ctx context.Context) (entities.FinanceSummary, error) {
	receipts, err := u.paymentRepo.SumAmounts(ctx)
	if err != nil {
		return entities.FinanceSummary{}, err
	}
	expenses, err := u.expenseRepo.SumAmounts(ctx)
	if err != nil {
		return entities.FinanceSummary{}, err
	}
	return entities.FinanceSummary{
		ReceiptsTotal: receipts,
		ExpensesTotal: expenses,
		Balance:       receipts - expenses,
	}, nil
}

func (u *FinanceUseCase) RegisterExpense(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" || e.Amount <= 0 {
		return entities.Expense{}, ErrInvalidExpenseInput
	}
	switch e.Category {
	case entities.ExpenseCategoryFixed, entities.ExpenseCategoryVariable, entities.ExpenseCategoryPersonnel:
	default:
		return entities.Expense{}, ErrInvalidExpenseInput
	}
	if e.Status == "" {
		e.Status = entities.ExpenseStatusPending
	}
	if e.Status == entities.ExpenseStatusPaid {
		now := time.Now().UTC()
		e.PaidAt = &now
	}

	e.ID = uuid.NewString()
	return u.expenseRepo.Create(ctx, e)
}

func (u *FinanceUseCase) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	return u.expenseRepo.List(ctx)
}

func (u *FinanceUseCase) DeleteExpense(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseInput
	}
	e, err := u.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrExpenseNotFound
	}
	return u.expenseRepo.Delete(ctx, id)
}
