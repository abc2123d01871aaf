package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(r gin.IRouter, authHandler *handlers.AuthHandler) {
	auth := r.Group(PathAuth)
	{
		auth.POST("/token", authHandler.Token)
		auth.POST("/registrar", authHandler.Register)
	}
}
