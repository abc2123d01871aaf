package workflow

import (
	"errors"
	"fmt"

	"oficina_xpto/internal/domain/entities"
)

var (
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

type transition struct {
	from, to entities.OrderStatus
}

// Policy is the set of allowed directed transitions between order statuses.
// Keeping it as data lets the transition rules be tightened by configuration
// without touching handler or UI code.
type Policy struct {
	name    string
	allowed map[transition]bool
}

// Permissive allows all six directed transitions between the three statuses.
// This matches the historically observed behavior, where the board let an
// order jump between any two columns.
func Permissive() Policy {
	p := Policy{name: "permissive", allowed: map[transition]bool{}}
	all := []entities.OrderStatus{
		entities.OrderStatusOrcamento,
		entities.OrderStatusExecucao,
		entities.OrderStatusFinalizado,
	}
	for _, from := range all {
		for _, to := range all {
			if from != to {
				p.allowed[transition{from, to}] = true
			}
		}
	}
	return p
}

// Strict forbids skipping EXECUCAO and reopening a finalized order:
// ORCAMENTO → EXECUCAO → FINALIZADO, with EXECUCAO → ORCAMENTO as the only
// backwards step.
func Strict() Policy {
	return Policy{name: "strict", allowed: map[transition]bool{
		{entities.OrderStatusOrcamento, entities.OrderStatusExecucao}:  true,
		{entities.OrderStatusExecucao, entities.OrderStatusOrcamento}:  true,
		{entities.OrderStatusExecucao, entities.OrderStatusFinalizado}: true,
	}}
}

// FromName resolves a policy by its configuration name. Unknown names fall
// back to permissive so a typo in the environment never bricks the API.
func FromName(name string) Policy {
	if name == "strict" {
		return Strict()
	}
	return Permissive()
}

func (p Policy) Name() string { return p.name }

// Validate checks a proposed transition. A no-op transition (same status) is
// always accepted.
func (p Policy) Validate(from, to entities.OrderStatus) error {
	if !IsValidStatus(to) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if from == to {
		return nil
	}
	if !p.allowed[transition{from, to}] {
		return fmt.Errorf("%w: %s -> %s (%s policy)", ErrTransitionNotAllowed, from, to, p.name)
	}
	return nil
}

// Next returns the statuses reachable from the given one under this policy.
func (p Policy) Next(from entities.OrderStatus) []entities.OrderStatus {
	var out []entities.OrderStatus
	for _, to := range []entities.OrderStatus{
		entities.OrderStatusOrcamento,
		entities.OrderStatusExecucao,
		entities.OrderStatusFinalizado,
	} {
		if p.allowed[transition{from, to}] {
			out = append(out, to)
		}
	}
	return out
}

func IsValidStatus(s entities.OrderStatus) bool {
	switch s {
	case entities.OrderStatusOrcamento, entities.OrderStatusExecucao, entities.OrderStatusFinalizado:
		return true
	}
	return false
}
