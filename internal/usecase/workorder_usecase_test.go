package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	repo     *mock_interfaces.MockIWorkOrderRepository
	vehicles *mock_interfaces.MockIVehicleRepository
	mechs    *mock_interfaces.MockIMechanicRepository
	parts    *mock_interfaces.MockIPartRepository
	services *mock_interfaces.MockIServiceRepository
	payments *mock_interfaces.MockIPaymentRepository
}

func newWorkOrderUseCaseForTest(ctrl *gomock.Controller, policy workflow.Policy) (*WorkOrderUseCase, workOrderMocks) {
	m := workOrderMocks{
		repo:     mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		mechs:    mock_interfaces.NewMockIMechanicRepository(ctrl),
		parts:    mock_interfaces.NewMockIPartRepository(ctrl),
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
	}
	uc := NewWorkOrderUseCase(m.repo, m.vehicles, m.mechs, m.parts, m.services, m.payments, policy)
	return uc, m
}

func TestWorkOrderUseCase_Open(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		_, err := uc.Open(context.Background(), OpenWorkOrderInput{VehicleID: "  ", MechanicID: "m-1"})
		if !errors.Is(err, ErrInvalidWorkOrderInput) {
			t.Fatalf("expected ErrInvalidWorkOrderInput, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{}, nil)

		_, err := uc.Open(context.Background(), OpenWorkOrderInput{VehicleID: "v-1", MechanicID: "m-1"})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("customer derived from vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", CustomerID: "c-9"}, nil)
		m.mechs.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Mechanic{ID: "m-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
				if o.ID == "" || o.CustomerID != "c-9" || o.VehicleID != "v-1" || o.MechanicID != "m-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusOrcamento || o.OpenedAt.IsZero() {
					t.Fatalf("expected new order in ORCAMENTO with opened_at set: %+v", o)
				}
				return o, nil
			},
		)

		res, err := uc.Open(context.Background(), OpenWorkOrderInput{
			VehicleID:      " v-1 ",
			MechanicID:     "m-1",
			Odometer:       123456,
			ReportedDefect: " motor falhando ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ReportedDefect != "motor falhando" || res.Odometer != 123456 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestWorkOrderUseCase_GetDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

	order := entities.WorkOrder{
		ID: "os-1",
		PartLines: []entities.PartLine{
			{LineID: "l-1", PartID: "p-1", Name: "pastilha de freio", Quantity: 2, UnitPrice: 50},
		},
		ServiceLines: []entities.ServiceLine{
			{LineID: "l-2", ServiceID: "s-1", Description: "troca de freio", Quantity: 1, UnitPrice: 120},
		},
	}
	m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
	m.payments.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Payment{
		{ID: "pay-1", WorkOrderID: "os-1", Amount: 100},
	}, nil)

	d, err := uc.GetDetail(context.Background(), "os-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.PartsTotal != 100 || d.ServicesTotal != 120 || d.GrandTotal != 220 {
		t.Fatalf("unexpected totals: %+v", d)
	}
	if d.PaidTotal != 100 || d.Balance != 120 {
		t.Fatalf("unexpected paid/balance: %+v", d)
	}
}

func TestWorkOrderUseCase_AddPartLine(t *testing.T) {
	order := entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusOrcamento}

	t.Run("both variants set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{PartID: "p-1", AdHocName: "avulsa", Quantity: 1})
		if !errors.Is(err, ErrLineVariantAmbiguous) {
			t.Fatalf("expected ErrLineVariantAmbiguous, got %v", err)
		}
	})

	t.Run("neither variant set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{Quantity: 1})
		if !errors.Is(err, ErrLineVariantAmbiguous) {
			t.Fatalf("expected ErrLineVariantAmbiguous, got %v", err)
		}
	})

	t.Run("catalog line snapshots price and decrements stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-1", -2).Return(entities.Part{ID: "p-1", Name: "pastilha", SalePrice: 50, StockQty: 8}, nil)
		m.repo.EXPECT().SavePartLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error) {
				if len(lines) != 1 {
					t.Fatalf("expected 1 line, got %d", len(lines))
				}
				l := lines[0]
				if l.LineID == "" || l.PartID != "p-1" || l.Name != "pastilha" || l.Quantity != 2 || l.UnitPrice != 50 {
					t.Fatalf("unexpected line: %+v", l)
				}
				updated := order
				updated.PartLines = lines
				return updated, nil
			},
		)

		res, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{PartID: "p-1", Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PartsTotal() != 100 {
			t.Fatalf("expected parts total 100, got %v", res.PartsTotal())
		}
	})

	t.Run("insufficient stock leaves lines untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-1", -5).Return(entities.Part{}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1", StockQty: 2}, nil)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{PartID: "p-1", Quantity: 5})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("unknown part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-x", -1).Return(entities.Part{}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p-x").Return(entities.Part{}, nil)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{PartID: "p-x", Quantity: 1})
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("ad-hoc line needs a price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{AdHocName: "mangueira avulsa", Quantity: 1})
		if !errors.Is(err, ErrInvalidLineInput) {
			t.Fatalf("expected ErrInvalidLineInput, got %v", err)
		}
	})

	t.Run("ad-hoc line keeps catalog stock out of it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		price := 35.5
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.repo.EXPECT().SavePartLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error) {
				l := lines[0]
				if l.PartID != "" || l.Name != "mangueira avulsa" || l.UnitPrice != 35.5 {
					t.Fatalf("unexpected line: %+v", l)
				}
				if l.Kind() != entities.PartLineAdHoc {
					t.Fatalf("expected ad-hoc line, got %s", l.Kind())
				}
				updated := order
				updated.PartLines = lines
				return updated, nil
			},
		)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{AdHocName: "mangueira avulsa", Quantity: 1, UnitPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save failure compensates the stock decrement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-1", -2).Return(entities.Part{ID: "p-1", Name: "pastilha", SalePrice: 50}, nil)
		m.repo.EXPECT().SavePartLines(gomock.Any(), "os-1", gomock.Any()).Return(entities.WorkOrder{}, errors.New("db"))
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-1", 2).Return(entities.Part{ID: "p-1"}, nil)

		_, err := uc.AddPartLine(context.Background(), "os-1", AddPartLineInput{PartID: "p-1", Quantity: 2})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RemovePartLine(t *testing.T) {
	order := entities.WorkOrder{
		ID:     "os-1",
		Status: entities.OrderStatusOrcamento,
		PartLines: []entities.PartLine{
			{LineID: "l-1", PartID: "p-1", Name: "pastilha", Quantity: 2, UnitPrice: 50},
			{LineID: "l-2", Name: "mangueira avulsa", Quantity: 1, UnitPrice: 35.5},
		},
	}

	t.Run("line not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)

		_, err := uc.RemovePartLine(context.Background(), "os-1", "l-unknown")
		if !errors.Is(err, ErrLineNotFound) {
			t.Fatalf("expected ErrLineNotFound, got %v", err)
		}
	})

	t.Run("catalog line restores stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.repo.EXPECT().SavePartLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error) {
				if len(lines) != 1 || lines[0].LineID != "l-2" {
					t.Fatalf("unexpected remaining lines: %+v", lines)
				}
				updated := order
				updated.PartLines = lines
				return updated, nil
			},
		)
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-1", 2).Return(entities.Part{ID: "p-1", StockQty: 10}, nil)

		if _, err := uc.RemovePartLine(context.Background(), "os-1", "l-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ad-hoc line has no stock effect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.repo.EXPECT().SavePartLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error) {
				updated := order
				updated.PartLines = lines
				return updated, nil
			},
		)

		if _, err := uc.RemovePartLine(context.Background(), "os-1", "l-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("legacy part id also matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.repo.EXPECT().SavePartLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error) {
				if len(lines) != 1 || lines[0].LineID != "l-2" {
					t.Fatalf("unexpected remaining lines: %+v", lines)
				}
				updated := order
				updated.PartLines = lines
				return updated, nil
			},
		)
		m.parts.EXPECT().AdjustStock(gomock.Any(), "p-1", 2).Return(entities.Part{ID: "p-1"}, nil)

		if _, err := uc.RemovePartLine(context.Background(), "os-1", "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_AddServiceLine(t *testing.T) {
	order := entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusOrcamento}

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-x").Return(entities.Service{}, nil)

		_, err := uc.AddServiceLine(context.Background(), "os-1", AddServiceLineInput{ServiceID: "s-x"})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("defaults quantity and snapshots labor price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Description: "troca de freio", LaborPrice: 120}, nil)
		m.repo.EXPECT().SaveServiceLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.ServiceLine) (entities.WorkOrder, error) {
				l := lines[0]
				if l.ServiceID != "s-1" || l.Description != "troca de freio" || l.Quantity != 1 || l.UnitPrice != 120 {
					t.Fatalf("unexpected line: %+v", l)
				}
				updated := order
				updated.ServiceLines = lines
				return updated, nil
			},
		)

		if _, err := uc.AddServiceLine(context.Background(), "os-1", AddServiceLineInput{ServiceID: "s-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("price override wins over catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		override := 90.0
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Description: "troca de freio", LaborPrice: 120}, nil)
		m.repo.EXPECT().SaveServiceLines(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, lines []entities.ServiceLine) (entities.WorkOrder, error) {
				if lines[0].UnitPrice != 90 {
					t.Fatalf("expected override price 90, got %v", lines[0].UnitPrice)
				}
				updated := order
				updated.ServiceLines = lines
				return updated, nil
			},
		)

		if _, err := uc.AddServiceLine(context.Background(), "os-1", AddServiceLineInput{ServiceID: "s-1", UnitPrice: &override}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_SetStatus(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())
		m.repo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.WorkOrder{}, nil)

		_, err := uc.SetStatus(context.Background(), "os-x", entities.OrderStatusExecucao)
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("strict policy rejects skipping execution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Strict())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusOrcamento}, nil)

		_, err := uc.SetStatus(context.Background(), "os-1", entities.OrderStatusFinalizado)
		if !errors.Is(err, workflow.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("finalizing stamps the close date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusExecucao}, nil)
		m.repo.EXPECT().SetStatus(gomock.Any(), "os-1", entities.OrderStatusFinalizado, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, closedAt *time.Time) (entities.WorkOrder, error) {
				if closedAt == nil || closedAt.IsZero() {
					t.Fatalf("expected closedAt to be stamped")
				}
				return entities.WorkOrder{ID: id, Status: status, ClosedAt: closedAt}, nil
			},
		)

		res, err := uc.SetStatus(context.Background(), "os-1", entities.OrderStatusFinalizado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClosedAt == nil {
			t.Fatalf("expected closed order")
		}
	})

	t.Run("reopening clears nothing but the transition is checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCaseForTest(ctrl, workflow.Permissive())

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusFinalizado}, nil)
		m.repo.EXPECT().SetStatus(gomock.Any(), "os-1", entities.OrderStatusExecucao, nil).Return(entities.WorkOrder{ID: "os-1", Status: entities.OrderStatusExecucao}, nil)

		if _, err := uc.SetStatus(context.Background(), "os-1", entities.OrderStatusExecucao); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
