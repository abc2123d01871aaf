package client

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) Register(ctx context.Context, username, password, role string) (User, error) {
	var user User
	payload := map[string]string{"username": username, "password": password, "role": role}
	err := c.do(ctx, http.MethodPost, "/auth/registrar", payload, &user)
	return user, err
}

func (c *Client) CreateCustomer(ctx context.Context, in CustomerInput) (Customer, error) {
	var out Customer
	err := c.do(ctx, http.MethodPost, "/clientes/", in, &out)
	return out, err
}

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	err := c.do(ctx, http.MethodGet, "/clientes/", nil, &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (Customer, error) {
	var out Customer
	err := c.do(ctx, http.MethodPut, "/clientes/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clientes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListCustomerVehicles(ctx context.Context, customerID string) ([]Vehicle, error) {
	var out []Vehicle
	err := c.do(ctx, http.MethodGet, "/clientes/"+url.PathEscape(customerID)+"/veiculos", nil, &out)
	return out, err
}

func (c *Client) CreateVehicle(ctx context.Context, in VehicleInput) (Vehicle, error) {
	var out Vehicle
	err := c.do(ctx, http.MethodPost, "/veiculos/", in, &out)
	return out, err
}

func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	err := c.do(ctx, http.MethodGet, "/veiculos/", nil, &out)
	return out, err
}

func (c *Client) UpdateVehicle(ctx context.Context, id string, in VehicleInput) (Vehicle, error) {
	var out Vehicle
	err := c.do(ctx, http.MethodPut, "/veiculos/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/veiculos/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateMechanic(ctx context.Context, in MechanicInput) (Mechanic, error) {
	var out Mechanic
	err := c.do(ctx, http.MethodPost, "/mecanicos/", in, &out)
	return out, err
}

func (c *Client) ListMechanics(ctx context.Context) ([]Mechanic, error) {
	var out []Mechanic
	err := c.do(ctx, http.MethodGet, "/mecanicos/", nil, &out)
	return out, err
}

func (c *Client) CreatePart(ctx context.Context, in PartInput) (Part, error) {
	var out Part
	err := c.do(ctx, http.MethodPost, "/pecas/", in, &out)
	return out, err
}

func (c *Client) ListParts(ctx context.Context) ([]Part, error) {
	var out []Part
	err := c.do(ctx, http.MethodGet, "/pecas/", nil, &out)
	return out, err
}

func (c *Client) UpdatePart(ctx context.Context, id string, in PartInput) (Part, error) {
	var out Part
	err := c.do(ctx, http.MethodPut, "/pecas/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeletePart(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pecas/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (Service, error) {
	var out Service
	err := c.do(ctx, http.MethodPost, "/servicos/", in, &out)
	return out, err
}

func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out []Service
	err := c.do(ctx, http.MethodGet, "/servicos/", nil, &out)
	return out, err
}

func (c *Client) UpdateService(ctx context.Context, id string, in ServiceInput) (Service, error) {
	var out Service
	err := c.do(ctx, http.MethodPut, "/servicos/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/servicos/"+url.PathEscape(id), nil, nil)
}

func (c *Client) OpenWorkOrder(ctx context.Context, in OpenWorkOrderInput) (WorkOrder, error) {
	var out WorkOrder
	err := c.do(ctx, http.MethodPost, "/os/", in, &out)
	return out, err
}

func (c *Client) ListWorkOrders(ctx context.Context) ([]WorkOrder, error) {
	var out []WorkOrder
	err := c.do(ctx, http.MethodGet, "/os/", nil, &out)
	return out, err
}

func (c *Client) GetWorkOrderDetail(ctx context.Context, id string) (WorkOrderDetail, error) {
	var out WorkOrderDetail
	err := c.do(ctx, http.MethodGet, "/os/"+url.PathEscape(id)+"/detalhes", nil, &out)
	return out, err
}

func (c *Client) AddPartLine(ctx context.Context, orderID string, in AddPartLineInput) (WorkOrder, error) {
	var out WorkOrder
	err := c.do(ctx, http.MethodPost, "/os/"+url.PathEscape(orderID)+"/adicionar-peca", in, &out)
	return out, err
}

func (c *Client) RemovePartLine(ctx context.Context, orderID, lineID string) (WorkOrder, error) {
	var out WorkOrder
	err := c.do(ctx, http.MethodDelete, "/os/"+url.PathEscape(orderID)+"/pecas/"+url.PathEscape(lineID), nil, &out)
	return out, err
}

func (c *Client) AddServiceLine(ctx context.Context, orderID string, in AddServiceLineInput) (WorkOrder, error) {
	var out WorkOrder
	err := c.do(ctx, http.MethodPost, "/os/"+url.PathEscape(orderID)+"/adicionar-servico/", in, &out)
	return out, err
}

func (c *Client) RemoveServiceLine(ctx context.Context, orderID, lineID string) (WorkOrder, error) {
	var out WorkOrder
	err := c.do(ctx, http.MethodDelete, "/os/"+url.PathEscape(orderID)+"/servicos/"+url.PathEscape(lineID), nil, &out)
	return out, err
}

func (c *Client) SetWorkOrderStatus(ctx context.Context, orderID, status string) (WorkOrder, error) {
	var out WorkOrder
	err := c.do(ctx, http.MethodPatch, "/os/"+url.PathEscape(orderID)+"/status", map[string]string{"status": status}, &out)
	return out, err
}

func (c *Client) RegisterPayment(ctx context.Context, in PaymentInput) (Payment, error) {
	var out Payment
	err := c.do(ctx, http.MethodPost, "/pagamentos/", in, &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	err := c.do(ctx, http.MethodGet, "/pagamentos/", nil, &out)
	return out, err
}

func (c *Client) FinanceSummary(ctx context.Context) (FinanceSummary, error) {
	var out FinanceSummary
	err := c.do(ctx, http.MethodGet, "/pagamentos/resumo", nil, &out)
	return out, err
}

func (c *Client) RegisterExpense(ctx context.Context, in ExpenseInput) (Expense, error) {
	var out Expense
	err := c.do(ctx, http.MethodPost, "/pagamentos/despesas/", in, &out)
	return out, err
}

func (c *Client) ListExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	err := c.do(ctx, http.MethodGet, "/pagamentos/despesas/", nil, &out)
	return out, err
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pagamentos/despesas/"+url.PathEscape(id), nil, nil)
}
