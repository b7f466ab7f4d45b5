package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minimarket/user-service/internal/container"
	handlers "github.com/minimarket/user-service/internal/interface/http"
	"github.com/minimarket/user-service/internal/interface/middleware"
)

// UserModule wires the user CRUD handlers into routes under the given
// RouterGroup (usually /api).
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	readLimiter := middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.GET("/all", readLimiter, m.Handler.GetAll)
		users.GET("/byEmail", readLimiter, m.Handler.GetByEmail)
		users.GET("/:id", readLimiter, m.Handler.GetByID)
		users.POST("", writeLimiter, m.Handler.Create)
		users.PUT("/:id", writeLimiter, m.Handler.Update)
		users.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
