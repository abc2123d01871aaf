package viewmodel

import (
	"context"
	"errors"
	"sync"

	"oficina_xpto/pkg/client"
)

var (
	// ErrBusy is returned when a mutation is requested while another one is
	// still in flight for the same order session.
	ErrBusy = errors.New("another change is still being saved")

	// ErrSessionClosed is returned after Close; late responses are discarded.
	ErrSessionClosed = errors.New("order session closed")
)

// OrderSession is the view-model of one open order-detail screen.
//
// Discipline:
//   - At most one mutation in flight; concurrent requests get ErrBusy.
//   - Every successful mutation refetches the detail, so displayed totals
//     are always the server's, never locally recomputed.
//   - A failed mutation leaves the cached detail untouched.
//   - Close cancels the session context; responses that arrive after Close
//     are not committed.
type OrderSession struct {
	api      *client.Client
	orderID  string
	notifier Notifier

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	busy   bool
	closed bool
	loaded bool
	detail client.WorkOrderDetail
}

func NewOrderSession(api *client.Client, orderID string, notifier Notifier) *OrderSession {
	ctx, cancel := context.WithCancel(context.Background())
	return &OrderSession{
		api:      api,
		orderID:  orderID,
		notifier: notifier,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *OrderSession) OrderID() string {
	return s.orderID
}

// Detail returns the last fetched detail and whether one is available.
func (s *OrderSession) Detail() (client.WorkOrderDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail, s.loaded
}

func (s *OrderSession) Load() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.mu.Unlock()

	detail, err := s.api.GetWorkOrderDetail(s.ctx, s.orderID)
	if err != nil {
		return err
	}
	s.commit(detail)
	return nil
}

func (s *OrderSession) AddPartLine(in client.AddPartLineInput) error {
	return s.mutate(func(ctx context.Context) error {
		_, err := s.api.AddPartLine(ctx, s.orderID, in)
		return err
	})
}

func (s *OrderSession) RemovePartLine(lineID string) error {
	return s.mutate(func(ctx context.Context) error {
		_, err := s.api.RemovePartLine(ctx, s.orderID, lineID)
		return err
	})
}

func (s *OrderSession) AddServiceLine(in client.AddServiceLineInput) error {
	return s.mutate(func(ctx context.Context) error {
		_, err := s.api.AddServiceLine(ctx, s.orderID, in)
		return err
	})
}

func (s *OrderSession) RemoveServiceLine(lineID string) error {
	return s.mutate(func(ctx context.Context) error {
		_, err := s.api.RemoveServiceLine(ctx, s.orderID, lineID)
		return err
	})
}

func (s *OrderSession) SetStatus(status string) error {
	return s.mutate(func(ctx context.Context) error {
		_, err := s.api.SetWorkOrderStatus(ctx, s.orderID, status)
		return err
	})
}

// Close cancels any in-flight request. Safe to call more than once.
func (s *OrderSession) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

func (s *OrderSession) mutate(op func(ctx context.Context) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if err := op(s.ctx); err != nil {
		if s.notifier != nil && !errors.Is(err, context.Canceled) {
			s.notifier.Notify(err.Error())
		}
		return err
	}

	// The mutation response carries the order without payments or totals;
	// refetch the full detail instead of merging.
	detail, err := s.api.GetWorkOrderDetail(s.ctx, s.orderID)
	if err != nil {
		return err
	}
	s.commit(detail)
	return nil
}

func (s *OrderSession) commit(detail client.WorkOrderDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.detail = detail
	s.loaded = true
}
