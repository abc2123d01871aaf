package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/pkg/client"
)

var ErrCardNotFound = errors.New("order not on the board")

// Board is the kanban view-model: one column per order status.
//
// MoveCard is the single optimistic mutation in the client: the card moves
// immediately, the PATCH goes out, and a rejection snaps the card back with
// a notification. The same transition policy the server enforces filters
// moves before they are attempted.
type Board struct {
	api      *client.Client
	policy   workflow.Policy
	notifier Notifier

	mu      sync.RWMutex
	columns map[string][]client.WorkOrder
}

func NewBoard(api *client.Client, policy workflow.Policy, notifier Notifier) *Board {
	return &Board{
		api:      api,
		policy:   policy,
		notifier: notifier,
		columns:  emptyColumns(),
	}
}

func (b *Board) Load(ctx context.Context) error {
	orders, err := b.api.ListWorkOrders(ctx)
	if err != nil {
		return err
	}

	columns := emptyColumns()
	for _, o := range orders {
		columns[o.Status] = append(columns[o.Status], o)
	}

	b.mu.Lock()
	b.columns = columns
	b.mu.Unlock()
	return nil
}

// Column returns the cards currently in the given status column.
func (b *Board) Column(status string) []client.WorkOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]client.WorkOrder, len(b.columns[status]))
	copy(out, b.columns[status])
	return out
}

// MoveCard moves the order to the target column optimistically and issues
// the status change. On failure the move is reverted and the notifier told.
func (b *Board) MoveCard(ctx context.Context, orderID, toStatus string) error {
	b.mu.Lock()
	card, fromStatus, ok := b.findLocked(orderID)
	if !ok {
		b.mu.Unlock()
		return ErrCardNotFound
	}

	if err := b.policy.Validate(entities.OrderStatus(fromStatus), entities.OrderStatus(toStatus)); err != nil {
		b.mu.Unlock()
		if b.notifier != nil {
			b.notifier.Notify(fmt.Sprintf("transição %s → %s não permitida", fromStatus, toStatus))
		}
		return err
	}

	b.removeLocked(orderID, fromStatus)
	card.Status = toStatus
	b.columns[toStatus] = append(b.columns[toStatus], card)
	b.mu.Unlock()

	updated, err := b.api.SetWorkOrderStatus(ctx, orderID, toStatus)
	if err != nil {
		b.mu.Lock()
		b.removeLocked(orderID, toStatus)
		card.Status = fromStatus
		b.columns[fromStatus] = append(b.columns[fromStatus], card)
		b.mu.Unlock()
		if b.notifier != nil {
			b.notifier.Notify(fmt.Sprintf("não foi possível mover a OS %s: %v", orderID, err))
		}
		return err
	}

	b.mu.Lock()
	b.removeLocked(orderID, toStatus)
	b.columns[updated.Status] = append(b.columns[updated.Status], updated)
	b.mu.Unlock()
	return nil
}

func (b *Board) findLocked(orderID string) (client.WorkOrder, string, bool) {
	for status, cards := range b.columns {
		for _, c := range cards {
			if c.ID == orderID {
				return c, status, true
			}
		}
	}
	return client.WorkOrder{}, "", false
}

func (b *Board) removeLocked(orderID, status string) {
	cards := b.columns[status]
	for i, c := range cards {
		if c.ID == orderID {
			b.columns[status] = append(cards[:i:i], cards[i+1:]...)
			return
		}
	}
}

func emptyColumns() map[string][]client.WorkOrder {
	return map[string][]client.WorkOrder{
		client.StatusOrcamento:  {},
		client.StatusExecucao:   {},
		client.StatusFinalizado: {},
	}
}
