package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"oficina_xpto/pkg/client"
)

// FinanceView holds the receipts/expenses summary for the finance screen.
//
// The authoritative numbers come from GET /pagamentos/resumo. When that
// endpoint fails, Refresh falls back to summing payments and expenses
// locally and flags the result as degraded so the UI can label it. A
// previously fetched authoritative summary is never overwritten by a local
// sum.
type FinanceView struct {
	api      *client.Client
	notifier Notifier

	mu       sync.RWMutex
	summary  client.FinanceSummary
	loaded   bool
	degraded bool
}

func NewFinanceView(api *client.Client, notifier Notifier) *FinanceView {
	return &FinanceView{api: api, notifier: notifier}
}

func (v *FinanceView) Refresh(ctx context.Context) error {
	summary, err := v.api.FinanceSummary(ctx)
	if err == nil {
		v.mu.Lock()
		v.summary = summary
		v.loaded = true
		v.degraded = false
		v.mu.Unlock()
		return nil
	}

	v.mu.RLock()
	haveAuthoritative := v.loaded && !v.degraded
	v.mu.RUnlock()
	if haveAuthoritative {
		if v.notifier != nil {
			v.notifier.Notify(fmt.Sprintf("resumo financeiro indisponível, mantendo valores anteriores: %v", err))
		}
		return err
	}

	payments, pErr := v.api.ListPayments(ctx)
	if pErr != nil {
		return err
	}
	expenses, eErr := v.api.ListExpenses(ctx)
	if eErr != nil {
		return err
	}

	local := client.FinanceSummary{}
	for _, p := range payments {
		local.ReceiptsTotal += p.Amount
	}
	for _, e := range expenses {
		local.ExpensesTotal += e.Amount
	}
	local.Balance = local.ReceiptsTotal - local.ExpensesTotal

	v.mu.Lock()
	v.summary = local
	v.loaded = true
	v.degraded = true
	v.mu.Unlock()

	if v.notifier != nil {
		v.notifier.Notify("resumo financeiro calculado localmente (servidor indisponível)")
	}
	return nil
}

// Summary returns the current numbers and whether they were computed
// locally instead of by the server.
func (v *FinanceView) Summary() (client.FinanceSummary, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.summary, v.degraded
}

func (v *FinanceView) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}
