package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/minimarket/user-service/internal/interface/http"
)

// VersionModule exposes the operational version endpoint.
type VersionModule struct {
	Handler *handlers.VersionHandler
}

func NewVersionModule(h *handlers.VersionHandler) *VersionModule {
	return &VersionModule{Handler: h}
}

func (m *VersionModule) Register(rg *gin.RouterGroup) {
	rg.GET("/version", m.Handler.Get)
}
