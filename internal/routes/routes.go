package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/handlers"
	"taskhub_backend/internal/middleware"
)

// SetupRoutes wires every handler group onto the engine. The API is
// mounted at the root, without a version prefix, matching the paths the
// existing front end calls.
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("")
	authn := middleware.AuthMiddleware(tokens)

	h.Auth.RegisterRoutes(api)

	// The historical API also accepts registration at POST /users; keep
	// the alias for clients that still call it.
	api.POST("/users", h.Auth.Register)

	h.Users.RegisterRoutes(api, authn)
	h.Tasks.RegisterRoutes(api, authn)
	h.Reports.RegisterRoutes(api, authn)
}
