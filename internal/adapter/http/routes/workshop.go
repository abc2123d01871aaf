package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/clientes"
	PathVehicles   = "/veiculos"
	PathMechanics  = "/mecanicos"
	PathParts      = "/pecas"
	PathServices   = "/servicos"
	PathWorkOrders = "/os"
	PathPayments   = "/pagamentos"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	vehicleHandler *handlers.VehicleHandler,
	mechanicHandler *handlers.MechanicHandler,
	catalogHandler *handlers.CatalogHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	financeHandler *handlers.FinanceHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("/", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
		customers.GET("/:id/veiculos", customerHandler.ListVehicles)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("/", vehicleHandler.Create)
		vehicles.GET("/", vehicleHandler.List)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("/", mechanicHandler.Create)
		mechanics.GET("/", mechanicHandler.List)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("/", catalogHandler.CreatePart)
		parts.GET("/", catalogHandler.ListParts)
		parts.PUT("/:id", catalogHandler.UpdatePart)
		parts.DELETE("/:id", catalogHandler.DeletePart)
	}

	services := rg.Group(PathServices)
	{
		services.POST("/", catalogHandler.CreateService)
		services.GET("/", catalogHandler.ListServices)
		services.PUT("/:id", catalogHandler.UpdateService)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}

	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("/", workOrderHandler.Open)
		orders.GET("/", workOrderHandler.List)
		orders.GET("/:id/detalhes", workOrderHandler.GetDetail)
		orders.POST("/:id/adicionar-peca", workOrderHandler.AddPartLine)
		orders.DELETE("/:id/pecas/:lineID", workOrderHandler.RemovePartLine)
		orders.POST("/:id/adicionar-servico/", workOrderHandler.AddServiceLine)
		orders.DELETE("/:id/servicos/:lineID", workOrderHandler.RemoveServiceLine)
		orders.PATCH("/:id/status", workOrderHandler.SetStatus)
	}

	finance := rg.Group(PathPayments)
	{
		finance.POST("/", financeHandler.RegisterPayment)
		finance.GET("/", financeHandler.ListPayments)
		finance.GET("/resumo", financeHandler.Summary)
		finance.POST("/despesas/", financeHandler.RegisterExpense)
		finance.GET("/despesas/", financeHandler.ListExpenses)
		finance.DELETE("/despesas/:id", financeHandler.DeleteExpense)
	}
}
