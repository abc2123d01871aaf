package viewmodel

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"oficina_xpto/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifyRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (n *notifyRecorder) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, message)
}

func (n *notifyRecorder) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.msgs))
	copy(out, n.msgs)
	return out
}

func newViewClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, NewSession(nil))
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"code": code, "message": message})
}

func orderDetailBody(balance float64, parts int) client.WorkOrderDetail {
	d := client.WorkOrderDetail{
		PartsTotal:    100,
		ServicesTotal: 120,
		GrandTotal:    220,
		PaidTotal:     220 - balance,
		Balance:       balance,
	}
	d.ID = "os-1"
	d.Status = client.StatusExecucao
	for i := 0; i < parts; i++ {
		d.PartLines = append(d.PartLines, client.PartLine{LineID: "item-1", Name: "filtro de óleo", Quantity: 2, UnitPrice: 50, Subtotal: 100})
	}
	return d
}

func TestOrderSession_MutationRefetchesDetail(t *testing.T) {
	var (
		mu           sync.Mutex
		detailCalls  int
		mutateCalled bool
	)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /os/os-1/detalhes", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		detailCalls++
		calls := detailCalls
		mu.Unlock()
		balance := 120.0
		if calls > 1 {
			balance = 170.0
		}
		json.NewEncoder(w).Encode(orderDetailBody(balance, 1))
	})
	mux.HandleFunc("POST /os/os-1/adicionar-peca", func(w http.ResponseWriter, r *http.Request) {
		var in client.AddPartLineInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "p-1", in.PartID)
		mu.Lock()
		mutateCalled = true
		mu.Unlock()
		json.NewEncoder(w).Encode(client.WorkOrder{ID: "os-1", Status: client.StatusExecucao})
	})

	notifier := &notifyRecorder{}
	s := NewOrderSession(newViewClient(t, mux), "os-1", notifier)

	require.NoError(t, s.Load())
	detail, ok := s.Detail()
	require.True(t, ok)
	assert.Equal(t, 220.0, detail.GrandTotal)
	assert.Equal(t, 120.0, detail.Balance)

	require.NoError(t, s.AddPartLine(client.AddPartLineInput{PartID: "p-1", Quantity: 1}))

	mu.Lock()
	assert.True(t, mutateCalled)
	assert.Equal(t, 2, detailCalls)
	mu.Unlock()

	detail, ok = s.Detail()
	require.True(t, ok)
	assert.Equal(t, 170.0, detail.Balance, "totals must come from the refetched detail")
	assert.Empty(t, notifier.messages())
}

func TestOrderSession_FailedMutationKeepsDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /os/os-1/detalhes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(orderDetailBody(120, 1))
	})
	mux.HandleFunc("POST /os/os-1/adicionar-peca", func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusConflict, "INSUFFICIENT_STOCK", "estoque insuficiente")
	})

	notifier := &notifyRecorder{}
	s := NewOrderSession(newViewClient(t, mux), "os-1", notifier)
	require.NoError(t, s.Load())

	err := s.AddPartLine(client.AddPartLineInput{PartID: "p-1", Quantity: 99})
	require.ErrorIs(t, err, client.ErrInsufficientStock)

	detail, ok := s.Detail()
	require.True(t, ok)
	assert.Equal(t, 120.0, detail.Balance)
	require.Len(t, notifier.messages(), 1)
}

func TestOrderSession_SecondMutationWhileBusy(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /os/os-1/detalhes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(orderDetailBody(120, 1))
	})
	mux.HandleFunc("POST /os/os-1/adicionar-servico/", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		json.NewEncoder(w).Encode(client.WorkOrder{ID: "os-1", Status: client.StatusExecucao})
	})

	s := NewOrderSession(newViewClient(t, mux), "os-1", &notifyRecorder{})

	done := make(chan error, 1)
	go func() {
		done <- s.AddServiceLine(client.AddServiceLineInput{ServiceID: "s-1"})
	}()

	<-entered
	err := s.RemovePartLine("item-1")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
}

func TestOrderSession_Closed(t *testing.T) {
	s := NewOrderSession(newViewClient(t, http.NewServeMux()), "os-1", &notifyRecorder{})
	s.Close()
	s.Close()

	assert.ErrorIs(t, s.Load(), ErrSessionClosed)
	assert.ErrorIs(t, s.SetStatus(client.StatusExecucao), ErrSessionClosed)

	_, ok := s.Detail()
	assert.False(t, ok)
}

func TestOrderSession_CloseCancelsInFlightMutation(t *testing.T) {
	entered := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /os/os-1/status", func(w http.ResponseWriter, r *http.Request) {
		// The server only notices the client going away once the request
		// body has been drained; without this the context is never
		// cancelled and the httptest server deadlocks in Close.
		io.Copy(io.Discard, r.Body)
		close(entered)
		<-r.Context().Done()
	})

	notifier := &notifyRecorder{}
	s := NewOrderSession(newViewClient(t, mux), "os-1", notifier)

	done := make(chan error, 1)
	go func() {
		done <- s.SetStatus(client.StatusFinalizado)
	}()

	<-entered
	s.Close()

	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, notifier.messages(), "cancellation is not a user-facing failure")

	_, ok := s.Detail()
	assert.False(t, ok)
}

func TestOrderSession_LateResponseNotCommitted(t *testing.T) {
	// The detail endpoint answers normally, but the session closes before
	// Load is issued a second time; the commit must be discarded.
	var calls int
	var mu sync.Mutex
	mux := http.NewServeMux()
	mux.HandleFunc("GET /os/os-1/detalhes", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		json.NewEncoder(w).Encode(orderDetailBody(120, 1))
	})

	s := NewOrderSession(newViewClient(t, mux), "os-1", &notifyRecorder{})
	require.NoError(t, s.Load())
	s.Close()

	err := s.Load()
	assert.True(t, errors.Is(err, ErrSessionClosed))
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}
